package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

// Customer is the purchaser account record. The pricing engine never loads
// it directly; the HTTP layer hydrates a snapshot from it.
type Customer struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email       string            `gorm:"column:email;not null;uniqueIndex" json:"email"`
	AccountType enums.AccountType `gorm:"column:account_type;not null;default:standard" json:"account_type"`
	TaxExempt   bool              `gorm:"column:tax_exempt;not null;default:false" json:"tax_exempt"`

	// VerificationApproved is true when an uploaded verification document
	// has been reviewed and approved by staff.
	VerificationApproved bool `gorm:"column:verification_approved;not null;default:false" json:"verification_approved"`

	// Company fields are only populated for B2B accounts. CompanyAddress is
	// free text; CompanyCountry/CompanyState take priority over parsing it.
	CompanyName    *string `gorm:"column:company_name" json:"company_name,omitempty"`
	CompanyAddress *string `gorm:"column:company_address" json:"company_address,omitempty"`
	CompanyCountry *string `gorm:"column:company_country" json:"company_country,omitempty"`
	CompanyState   *string `gorm:"column:company_state" json:"company_state,omitempty"`

	// Billing fields are required for C2B accounts before checkout.
	BillingLine1   *string `gorm:"column:billing_line1" json:"billing_line1,omitempty"`
	BillingCity    *string `gorm:"column:billing_city" json:"billing_city,omitempty"`
	BillingState   *string `gorm:"column:billing_state" json:"billing_state,omitempty"`
	BillingCountry *string `gorm:"column:billing_country" json:"billing_country,omitempty"`

	Addresses []CustomerAddress `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// CustomerAddress is a saved shipping address.
type CustomerAddress struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index" json:"customer_id"`
	Line1      string    `gorm:"column:line1;not null" json:"line1"`
	Line2      *string   `gorm:"column:line2" json:"line2,omitempty"`
	City       string    `gorm:"column:city;not null" json:"city"`
	State      string    `gorm:"column:state;not null" json:"state"`
	PostalCode string    `gorm:"column:postal_code;not null" json:"postal_code"`
	Country    string    `gorm:"column:country;not null" json:"country"`
	IsDefault  bool      `gorm:"column:is_default;not null;default:false" json:"is_default"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
