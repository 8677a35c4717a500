package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

// Order is the persisted form of a priced order draft. Every monetary field
// is the already-rounded value the engine produced; nothing is recomputed at
// read time.
type Order struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index" json:"customer_id"`

	Subtotal       decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(12,2);not null" json:"discount_amount"`
	CouponCode     *string         `gorm:"column:coupon_code" json:"coupon_code,omitempty"`
	CouponDetail   json.RawMessage `gorm:"column:coupon_detail;type:jsonb" json:"coupon_detail,omitempty"`

	TaxRate    *decimal.Decimal `gorm:"column:tax_rate;type:numeric(7,4)" json:"tax_rate,omitempty"`
	TaxAmount  decimal.Decimal  `gorm:"column:tax_amount;type:numeric(12,2);not null" json:"tax_amount"`
	TaxCountry *string          `gorm:"column:tax_country" json:"tax_country,omitempty"`
	TaxState   *string          `gorm:"column:tax_state" json:"tax_state,omitempty"`

	ShippingLabel   string          `gorm:"column:shipping_label;not null" json:"shipping_label"`
	ShippingCost    decimal.Decimal `gorm:"column:shipping_cost;type:numeric(12,2);not null" json:"shipping_cost"`
	CarrierRate     json.RawMessage `gorm:"column:carrier_rate;type:jsonb" json:"carrier_rate,omitempty"`
	ShippingAddress json.RawMessage `gorm:"column:shipping_address;type:jsonb" json:"shipping_address,omitempty"`

	Total  decimal.Decimal   `gorm:"column:total;type:numeric(12,2);not null" json:"total"`
	Status enums.OrderStatus `gorm:"column:status;not null;default:placed" json:"status"`

	LineItems []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"line_items,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// OrderLineItem snapshots one priced cart line at the moment the order was
// assembled. Name, unit price and tags are frozen copies, deliberately
// decoupled from later catalog edits.
type OrderLineItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	Name      string          `gorm:"column:name;not null" json:"name"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	Tags      pq.StringArray  `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]" json:"tags"`
	LineTotal decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null" json:"line_total"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
