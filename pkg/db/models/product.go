package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	dbtypes "github.com/marketrow/storefront-backend/pkg/db/types"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

// Product is the canonical catalog listing. The pricing engine only reads
// it; all writes happen through the back-office surfaces.
type Product struct {
	ID   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null" json:"name"`

	BasePrice    decimal.Decimal  `gorm:"column:base_price;type:numeric(12,2);not null" json:"base_price"`
	SalePrice    *decimal.Decimal `gorm:"column:sale_price;type:numeric(12,2)" json:"sale_price,omitempty"`
	SaleStartsAt *time.Time       `gorm:"column:sale_starts_at" json:"sale_starts_at,omitempty"`
	SaleEndsAt   *time.Time       `gorm:"column:sale_ends_at" json:"sale_ends_at,omitempty"`

	// Quantity may go negative transiently when backorders are allowed.
	Quantity          int                   `gorm:"column:quantity;not null;default:0" json:"quantity"`
	LowStockThreshold int                   `gorm:"column:low_stock_threshold;not null;default:0" json:"low_stock_threshold"`
	InventoryStatus   enums.InventoryStatus `gorm:"column:inventory_status;not null;default:in_stock" json:"inventory_status"`
	AllowBackorder    bool                  `gorm:"column:allow_backorder;not null;default:false" json:"allow_backorder"`
	ManageStock       bool                  `gorm:"column:manage_stock;not null;default:true" json:"manage_stock"`

	Tags             pq.StringArray    `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]" json:"tags"`
	CategoryID       uuid.UUID         `gorm:"column:category_id;type:uuid;not null" json:"category_id"`
	ExtraCategoryIDs dbtypes.UUIDArray `gorm:"column:extra_category_ids;type:uuid[];not null;default:ARRAY[]::uuid[]" json:"extra_category_ids"`
	RequiresB2B      bool              `gorm:"column:requires_b2b;not null;default:false" json:"requires_b2b"`

	RestockedAt *time.Time `gorm:"column:restocked_at" json:"restocked_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// CategoryIDs returns the primary category followed by any additional
// category associations.
func (p *Product) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, 1+len(p.ExtraCategoryIDs))
	if p.CategoryID != uuid.Nil {
		ids = append(ids, p.CategoryID)
	}
	return append(ids, p.ExtraCategoryIDs...)
}

// HasTag reports whether the product carries the given free-form tag.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
