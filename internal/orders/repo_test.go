package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:orders_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ordersDDL := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  subtotal NUMERIC NOT NULL,
  discount_amount NUMERIC NOT NULL,
  coupon_code TEXT,
  coupon_detail TEXT,
  tax_rate NUMERIC,
  tax_amount NUMERIC NOT NULL,
  tax_country TEXT,
  tax_state TEXT,
  shipping_label TEXT NOT NULL,
  shipping_cost NUMERIC NOT NULL,
  carrier_rate TEXT,
  shipping_address TEXT,
  total NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'placed',
  created_at DATETIME,
  updated_at DATETIME
);`
	lineItemsDDL := `
CREATE TABLE IF NOT EXISTS order_line_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  tags TEXT NOT NULL DEFAULT '{}',
  line_total NUMERIC NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ordersDDL).Error)
	require.NoError(t, db.Exec(lineItemsDDL).Error)
	return db
}

func placedOrder(customerID uuid.UUID, total int64, createdAt time.Time) *models.Order {
	return &models.Order{
		ID:             uuid.New(),
		CustomerID:     customerID,
		Subtotal:       decimal.NewFromInt(total),
		DiscountAmount: decimal.Zero,
		TaxAmount:      decimal.Zero,
		ShippingLabel:  "standard",
		ShippingCost:   decimal.Zero,
		Total:          decimal.NewFromInt(total),
		Status:         enums.OrderStatusPlaced,
		CreatedAt:      createdAt,
	}
}

func TestCreateAndFindOrder(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	customerID := uuid.New()

	order, err := repo.CreateOrder(ctx, placedOrder(customerID, 42, time.Now()))
	require.NoError(t, err)

	items := []models.OrderLineItem{{
		ID:        uuid.New(),
		OrderID:   order.ID,
		ProductID: uuid.New(),
		Name:      "widget",
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(21),
		Tags:      pq.StringArray{"in_stock"},
		LineTotal: decimal.NewFromInt(42),
	}}
	require.NoError(t, repo.CreateOrderLineItems(ctx, items))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, customerID, found.CustomerID)
	require.Len(t, found.LineItems, 1)
	assert.Equal(t, "widget", found.LineItems[0].Name)
	assert.True(t, found.Total.Equal(decimal.NewFromInt(42)))
}

func TestListByCustomerOrdersAndPages(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	customerID := uuid.New()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for i := int64(0); i < 3; i++ {
		_, err := repo.CreateOrder(ctx, placedOrder(customerID, 10+i, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	_, err := repo.CreateOrder(ctx, placedOrder(uuid.New(), 99, base))
	require.NoError(t, err)

	page, err := repo.ListByCustomer(ctx, customerID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.True(t, page[0].Total.Equal(decimal.NewFromInt(12)), "newest first")

	rest, err := repo.ListByCustomer(ctx, customerID, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.True(t, rest[0].Total.Equal(decimal.NewFromInt(10)))
}
