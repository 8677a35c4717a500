package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	dbtypes "github.com/marketrow/storefront-backend/pkg/db/types"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:catalog_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	ddl := `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		base_price NUMERIC NOT NULL,
		sale_price NUMERIC,
		sale_starts_at DATETIME,
		sale_ends_at DATETIME,
		quantity INTEGER NOT NULL DEFAULT 0,
		low_stock_threshold INTEGER NOT NULL DEFAULT 0,
		inventory_status TEXT NOT NULL DEFAULT 'in_stock',
		allow_backorder BOOLEAN NOT NULL DEFAULT false,
		manage_stock BOOLEAN NOT NULL DEFAULT true,
		tags TEXT NOT NULL DEFAULT '{}',
		category_id TEXT NOT NULL,
		extra_category_ids TEXT NOT NULL DEFAULT '{}',
		requires_b2b BOOLEAN NOT NULL DEFAULT false,
		restocked_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, quantity int, createdAt time.Time) models.Product {
	t.Helper()
	p := models.Product{
		ID:               uuid.New(),
		Name:             name,
		BasePrice:        decimal.NewFromInt(10),
		Quantity:         quantity,
		InventoryStatus:  enums.InventoryStatusInStock,
		ManageStock:      true,
		Tags:             pq.StringArray{},
		CategoryID:       uuid.New(),
		ExtraCategoryIDs: dbtypes.UUIDArray{},
		CreatedAt:        createdAt,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return p
}

func TestFindByIDsReturnsOnlyMatches(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	a := seedProduct(t, db, "a", 5, now)
	b := seedProduct(t, db, "b", 5, now)
	seedProduct(t, db, "c", 5, now)

	found, err := repo.FindByIDs(ctx, []uuid.UUID{a.ID, b.ID, uuid.New()})
	if err != nil {
		t.Fatalf("find by ids: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("found %d products, want 2", len(found))
	}

	empty, err := repo.FindByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("empty ids: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no products for empty ids, got %d", len(empty))
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seedProduct(t, db, "oldest", 5, base)
	seedProduct(t, db, "middle", 5, base.Add(time.Hour))
	seedProduct(t, db, "newest", 5, base.Add(2*time.Hour))

	page, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].Name != "newest" || page[1].Name != "middle" {
		t.Fatalf("page = %+v", page)
	}

	rest, err := repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}
	if len(rest) != 1 || rest[0].Name != "oldest" {
		t.Fatalf("rest = %+v", rest)
	}
}

func TestCommitStock(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "widget", 5, time.Now())

	ok, err := repo.CommitStock(ctx, p.ID, 3)
	if err != nil {
		t.Fatalf("commit stock: %v", err)
	}
	if !ok {
		t.Fatal("expected commit to succeed")
	}

	// Only 2 left; committing 3 must not win.
	ok, err = repo.CommitStock(ctx, p.ID, 3)
	if err != nil {
		t.Fatalf("over-commit: %v", err)
	}
	if ok {
		t.Fatal("expected over-commit to fail")
	}

	var reloaded models.Product
	if err := db.First(&reloaded, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", reloaded.Quantity)
	}
}

func TestDeductStockMayGoNegative(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "backorderable", 1, time.Now())

	if err := repo.DeductStock(ctx, p.ID, 4); err != nil {
		t.Fatalf("deduct stock: %v", err)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.Quantity != -3 {
		t.Fatalf("quantity = %d, want -3", reloaded.Quantity)
	}
}
