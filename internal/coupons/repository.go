package coupons

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/internal/repo"
	"github.com/marketrow/storefront-backend/pkg/db/models"
)

// Repository exposes coupon persistence.
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

// FindByCode looks a coupon up case-insensitively. Unknown codes return
// (nil, nil); the pricing engine reports them as invalid rather than
// surfacing a storage error.
func (r *Repository) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.DB(ctx).
		Where("LOWER(code) = LOWER(?)", code).
		First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// DeactivateExpired flips off every active coupon whose expiry has passed
// and returns how many were touched. Invoked by the cron worker.
func (r *Repository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB(ctx).
		Model(&models.Coupon{}).
		Where("active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		UpdateColumn("active", false)
	return res.RowsAffected, res.Error
}
