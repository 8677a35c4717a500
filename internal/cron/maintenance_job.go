package cron

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/marketrow/storefront-backend/pkg/logger"
)

// Restock markers older than this stop producing the "back in stock" tag.
const restockMarkerTTL = 30 * 24 * time.Hour

type couponDeactivator interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type restockMarkerCleaner interface {
	ClearStaleRestockMarkers(ctx context.Context, before time.Time) (int64, error)
}

// StorefrontMaintenanceJobParams configure the scheduled storefront upkeep.
type StorefrontMaintenanceJobParams struct {
	Logger      *logger.Logger
	CouponRepo  couponDeactivator
	CatalogRepo restockMarkerCleaner
}

type storefrontMaintenanceJob struct {
	logg    *logger.Logger
	coupons couponDeactivator
	catalog restockMarkerCleaner
	now     func() time.Time
}

// NewStorefrontMaintenanceJob constructs the daily storefront upkeep job:
// it deactivates expired coupons and retires stale restock markers. Both
// steps always run; their failures are aggregated.
func NewStorefrontMaintenanceJob(params StorefrontMaintenanceJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.CouponRepo == nil {
		return nil, fmt.Errorf("coupon repository required")
	}
	if params.CatalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &storefrontMaintenanceJob{
		logg:    params.Logger,
		coupons: params.CouponRepo,
		catalog: params.CatalogRepo,
		now:     time.Now,
	}, nil
}

func (j *storefrontMaintenanceJob) Name() string {
	return "storefront_maintenance"
}

func (j *storefrontMaintenanceJob) Run(ctx context.Context) error {
	now := j.now()
	var errs error

	expired, err := j.coupons.DeactivateExpired(ctx, now)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("deactivate expired coupons: %w", err))
	} else if expired > 0 {
		j.logg.Info(j.logg.WithField(ctx, "coupons_deactivated", expired), "expired coupons deactivated")
	}

	cleared, err := j.catalog.ClearStaleRestockMarkers(ctx, now.Add(-restockMarkerTTL))
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("clear stale restock markers: %w", err))
	} else if cleared > 0 {
		j.logg.Info(j.logg.WithField(ctx, "restock_markers_cleared", cleared), "stale restock markers cleared")
	}

	return errs
}
