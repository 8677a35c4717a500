package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/marketrow/storefront-backend/pkg/db/types"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

// Coupon is a storefront discount code. Empty scoping arrays mean the coupon
// applies to the entire eligible cart.
type Coupon struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code         string             `gorm:"column:code;not null;uniqueIndex" json:"code"`
	DiscountType enums.DiscountType `gorm:"column:discount_type;not null" json:"discount_type"`
	Amount       decimal.Decimal    `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Active       bool               `gorm:"column:active;not null;default:true" json:"active"`
	CategoryIDs  dbtypes.UUIDArray  `gorm:"column:category_ids;type:uuid[];not null;default:ARRAY[]::uuid[]" json:"category_ids"`
	ProductIDs   dbtypes.UUIDArray  `gorm:"column:product_ids;type:uuid[];not null;default:ARRAY[]::uuid[]" json:"product_ids"`
	ExpiresAt    *time.Time         `gorm:"column:expires_at" json:"expires_at,omitempty"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// AppliesToAll reports whether the coupon has no category or product scoping.
func (c *Coupon) AppliesToAll() bool {
	return len(c.CategoryIDs) == 0 && len(c.ProductIDs) == 0
}

// Usable reports whether the coupon may price a cart at the given instant.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.Active {
		return false
	}
	return c.ExpiresAt == nil || now.Before(*c.ExpiresAt)
}
