package taxrates

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/internal/repo"
	"github.com/marketrow/storefront-backend/pkg/db/models"
)

// Repository resolves jurisdiction keys against the tax rate table.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(tx)}
}

// Resolve finds the best rate for a (country, state) pair. Precedence is
// exact match, then country-only, then state-only; (nil, nil) means the
// jurisdiction is untaxed. Keys are matched case-insensitively, so callers
// may pass them in any casing.
func (r *Repository) Resolve(ctx context.Context, country, state string) (*models.TaxRate, error) {
	type lookup struct {
		country *string
		state   *string
	}
	tiers := make([]lookup, 0, 3)
	if country != "" && state != "" {
		tiers = append(tiers, lookup{country: &country, state: &state})
	}
	if country != "" {
		tiers = append(tiers, lookup{country: &country})
	}
	if state != "" {
		tiers = append(tiers, lookup{state: &state})
	}

	for _, tier := range tiers {
		rate, err := r.findTier(ctx, tier.country, tier.state)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			return rate, nil
		}
	}
	return nil, nil
}

func (r *Repository) findTier(ctx context.Context, country, state *string) (*models.TaxRate, error) {
	q := r.DB(ctx).Model(&models.TaxRate{})
	if country != nil {
		q = q.Where("LOWER(country) = LOWER(?)", *country)
	} else {
		q = q.Where("country IS NULL")
	}
	if state != nil {
		q = q.Where("LOWER(state) = LOWER(?)", *state)
	} else {
		q = q.Where("state IS NULL")
	}

	var rate models.TaxRate
	err := q.First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
