package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/internal/repo"
	"github.com/marketrow/storefront-backend/pkg/db/models"
)

// Repository exposes catalog persistence for the storefront read paths and
// the checkout stock commitment.
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

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs loads every product matching the given ids in one query.
// Missing ids are simply absent from the result; callers decide whether
// that is an error.
func (r *Repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := r.DB(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// List returns a page of the catalog ordered by creation time, newest first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.DB(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CommitStock decrements tracked stock for a placed order line. It only
// succeeds when enough quantity remains, so two concurrent checkouts cannot
// both take the last unit; the boolean reports whether the decrement won.
func (r *Repository) CommitStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	res := r.DB(ctx).
		Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeductStock decrements stock unconditionally. Used for backorderable
// lines, where quantity is allowed to go negative until the next restock.
func (r *Repository) DeductStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.DB(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity)).Error
}

// ClearStaleRestockMarkers drops restock timestamps older than the cutoff so
// products stop advertising "back in stock" indefinitely. Returns how many
// rows were touched.
func (r *Repository) ClearStaleRestockMarkers(ctx context.Context, before time.Time) (int64, error) {
	res := r.DB(ctx).
		Model(&models.Product{}).
		Where("restocked_at IS NOT NULL AND restocked_at < ?", before).
		UpdateColumn("restocked_at", nil)
	return res.RowsAffected, res.Error
}
