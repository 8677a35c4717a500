package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

// Purchaser is the fully hydrated account snapshot the caller supplies.
// The engine never loads account data itself.
type Purchaser struct {
	ID                   uuid.UUID         `json:"id"`
	AccountType          enums.AccountType `json:"account_type"`
	TaxExempt            bool              `json:"tax_exempt"`
	VerificationApproved bool              `json:"verification_approved"`
	Company              *Company          `json:"company,omitempty"`
	BillingAddress       *BillingAddress   `json:"billing_address,omitempty"`
	ShippingAddresses    []ShippingAddress `json:"shipping_addresses,omitempty"`
}

// Company carries the B2B jurisdiction source. Country/State take priority;
// Address is free text used only as a parsing fallback.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
}

// BillingAddress is the structured C2B billing address.
type BillingAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// ShippingAddress is one of the purchaser's saved delivery addresses.
type ShippingAddress struct {
	ID         uuid.UUID `json:"id"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	Default    bool      `json:"default"`
}

// RequestedLine is one raw cart line. Duplicate product ids are allowed;
// their quantities are summed before validation.
type RequestedLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CarrierRate is a caller-supplied carrier quote. When present it wins over
// the flat-rate table unconditionally and is retained verbatim on the draft.
type CarrierRate struct {
	ID               string          `json:"id"`
	Carrier          string          `json:"carrier"`
	Service          string          `json:"service"`
	Price            decimal.Decimal `json:"price"`
	DeliveryEstimate string          `json:"delivery_estimate,omitempty"`
}

// Options carries the optional knobs of a pricing attempt.
type Options struct {
	CouponCode        string               `json:"coupon_code,omitempty"`
	ShippingMethod    enums.ShippingMethod `json:"shipping_method,omitempty"`
	CarrierRate       *CarrierRate         `json:"carrier_rate,omitempty"`
	ShippingAddressID *uuid.UUID           `json:"shipping_address_id,omitempty"`
}

// DraftLine is one priced order line. Unit price and tags are captured once
// at assembly time and never recomputed.
type DraftLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Tags      []string        `json:"tags"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// AppliedCoupon records how a coupon priced the cart, for audit display.
type AppliedCoupon struct {
	Code             string             `json:"code"`
	DiscountType     enums.DiscountType `json:"discount_type"`
	Amount           decimal.Decimal    `json:"amount"`
	Discount         decimal.Decimal    `json:"discount"`
	EligibleSubtotal decimal.Decimal    `json:"eligible_subtotal"`
}

// OrderDraft is the immutable priced result of a checkout attempt. A new
// submission produces a new draft; nothing mutates an existing one.
type OrderDraft struct {
	Lines              []DraftLine      `json:"lines"`
	Subtotal           decimal.Decimal  `json:"subtotal"`
	Coupon             *AppliedCoupon   `json:"coupon,omitempty"`
	DiscountAmount     decimal.Decimal  `json:"discount_amount"`
	DiscountedSubtotal decimal.Decimal  `json:"discounted_subtotal"`
	TaxRate            *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxAmount          decimal.Decimal  `json:"tax_amount"`
	TaxCountry         *string          `json:"tax_country,omitempty"`
	TaxState           *string          `json:"tax_state,omitempty"`
	ShippingLabel      string           `json:"shipping_label"`
	ShippingCost       decimal.Decimal  `json:"shipping_cost"`
	CarrierRate        *CarrierRate     `json:"carrier_rate,omitempty"`
	ShippingAddress    *ShippingAddress `json:"shipping_address,omitempty"`
	Total              decimal.Decimal  `json:"total"`
}
