package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/internal/pricing"
	"github.com/marketrow/storefront-backend/pkg/db/models"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
)

type customerLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// Service hydrates purchaser snapshots for the pricing engine.
type Service interface {
	Snapshot(ctx context.Context, id uuid.UUID) (pricing.Purchaser, error)
}

type service struct {
	repo customerLoader
}

// NewService builds the customer service.
func NewService(repo customerLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

// Snapshot loads the account and flattens it into the immutable purchaser
// view the pricing engine consumes.
func (s *service) Snapshot(ctx context.Context, id uuid.UUID) (pricing.Purchaser, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pricing.Purchaser{}, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
	}
	if err != nil {
		return pricing.Purchaser{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
	}
	return SnapshotFromModel(customer), nil
}

// SnapshotFromModel flattens a loaded customer record.
func SnapshotFromModel(c *models.Customer) pricing.Purchaser {
	p := pricing.Purchaser{
		ID:                   c.ID,
		AccountType:          c.AccountType,
		TaxExempt:            c.TaxExempt,
		VerificationApproved: c.VerificationApproved,
	}

	if c.CompanyName != nil {
		p.Company = &pricing.Company{
			Name:    *c.CompanyName,
			Address: deref(c.CompanyAddress),
			Country: deref(c.CompanyCountry),
			State:   deref(c.CompanyState),
		}
	}

	if c.BillingLine1 != nil || c.BillingCity != nil || c.BillingState != nil || c.BillingCountry != nil {
		p.BillingAddress = &pricing.BillingAddress{
			Line1:   deref(c.BillingLine1),
			City:    deref(c.BillingCity),
			State:   deref(c.BillingState),
			Country: deref(c.BillingCountry),
		}
	}

	for _, addr := range c.Addresses {
		p.ShippingAddresses = append(p.ShippingAddresses, pricing.ShippingAddress{
			ID:         addr.ID,
			Line1:      addr.Line1,
			Line2:      deref(addr.Line2),
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
			Default:    addr.IsDefault,
		})
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
