package coupons

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	dbtypes "github.com/marketrow/storefront-backend/pkg/db/types"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:coupons_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	ddl := `CREATE TABLE coupons (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		discount_type TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		active BOOLEAN NOT NULL DEFAULT true,
		category_ids TEXT NOT NULL DEFAULT '{}',
		product_ids TEXT NOT NULL DEFAULT '{}',
		expires_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func seedCoupon(t *testing.T, db *gorm.DB, coupon models.Coupon) models.Coupon {
	t.Helper()
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	if coupon.CategoryIDs == nil {
		coupon.CategoryIDs = dbtypes.UUIDArray{}
	}
	if coupon.ProductIDs == nil {
		coupon.ProductIDs = dbtypes.UUIDArray{}
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seed coupon %s: %v", coupon.Code, err)
	}
	return coupon
}

func TestFindByCodeIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedCoupon(t, db, models.Coupon{
		Code:         "Summer10",
		DiscountType: enums.DiscountTypePercentage,
		Amount:       decimal.NewFromInt(10),
		Active:       true,
	})

	found, err := repo.FindByCode(ctx, "SUMMER10")
	if err != nil {
		t.Fatalf("find by code: %v", err)
	}
	if found == nil || found.Code != "Summer10" {
		t.Fatalf("found = %+v", found)
	}

	missing, err := repo.FindByCode(ctx, "NOPE")
	if err != nil {
		t.Fatalf("unknown code: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown code, got %+v", missing)
	}
}

func TestDeactivateExpired(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	expired := seedCoupon(t, db, models.Coupon{Code: "OLD", DiscountType: enums.DiscountTypeFixed, Amount: decimal.NewFromInt(5), Active: true, ExpiresAt: &past})
	alive := seedCoupon(t, db, models.Coupon{Code: "LIVE", DiscountType: enums.DiscountTypeFixed, Amount: decimal.NewFromInt(5), Active: true, ExpiresAt: &future})
	open := seedCoupon(t, db, models.Coupon{Code: "OPEN", DiscountType: enums.DiscountTypeFixed, Amount: decimal.NewFromInt(5), Active: true})

	touched, err := repo.DeactivateExpired(ctx, now)
	if err != nil {
		t.Fatalf("deactivate expired: %v", err)
	}
	if touched != 1 {
		t.Fatalf("touched = %d, want 1", touched)
	}

	for _, tc := range []struct {
		id   uuid.UUID
		want bool
	}{
		{expired.ID, false},
		{alive.ID, true},
		{open.ID, true},
	} {
		var c models.Coupon
		if err := db.First(&c, "id = ?", tc.id).Error; err != nil {
			t.Fatalf("reload coupon: %v", err)
		}
		if c.Active != tc.want {
			t.Fatalf("coupon %s active = %v, want %v", c.Code, c.Active, tc.want)
		}
	}
}
