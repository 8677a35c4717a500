package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate maps a jurisdiction to a percentage rate. Country and State are
// matched case-insensitively; either may be null for the country-only and
// state-only fallback tiers.
type TaxRate struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Country   *string         `gorm:"column:country" json:"country,omitempty"`
	State     *string         `gorm:"column:state" json:"state,omitempty"`
	Rate      decimal.Decimal `gorm:"column:rate;type:numeric(7,4);not null" json:"rate"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
