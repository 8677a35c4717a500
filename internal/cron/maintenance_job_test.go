package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/marketrow/storefront-backend/pkg/logger"
)

type fakeCouponRepo struct {
	deactivated int64
	lastNow     time.Time
	called      int
	err         error
}

func (f *fakeCouponRepo) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	f.called++
	f.lastNow = now
	return f.deactivated, f.err
}

type fakeCatalogRepo struct {
	cleared    int64
	lastCutoff time.Time
	called     int
	err        error
}

func (f *fakeCatalogRepo) ClearStaleRestockMarkers(_ context.Context, before time.Time) (int64, error) {
	f.called++
	f.lastCutoff = before
	return f.cleared, f.err
}

func newMaintenanceJob(t *testing.T, coupons *fakeCouponRepo, catalog *fakeCatalogRepo) *storefrontMaintenanceJob {
	t.Helper()
	jobIface, err := NewStorefrontMaintenanceJob(StorefrontMaintenanceJobParams{
		Logger:      logger.New(logger.Options{ServiceName: "test"}),
		CouponRepo:  coupons,
		CatalogRepo: catalog,
	})
	if err != nil {
		t.Fatalf("NewStorefrontMaintenanceJob: %v", err)
	}
	job, ok := jobIface.(*storefrontMaintenanceJob)
	if !ok {
		t.Fatalf("expected storefrontMaintenanceJob, got %T", jobIface)
	}
	return job
}

func TestMaintenanceJobRunsBothSteps(t *testing.T) {
	now := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	coupons := &fakeCouponRepo{deactivated: 3}
	catalog := &fakeCatalogRepo{cleared: 7}
	job := newMaintenanceJob(t, coupons, catalog)
	job.now = func() time.Time { return now }

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if coupons.called != 1 || !coupons.lastNow.Equal(now) {
		t.Fatalf("coupon step: called=%d now=%s", coupons.called, coupons.lastNow)
	}
	expectedCutoff := now.Add(-restockMarkerTTL)
	if catalog.called != 1 || !catalog.lastCutoff.Equal(expectedCutoff) {
		t.Fatalf("catalog step: called=%d cutoff=%s", catalog.called, catalog.lastCutoff)
	}
}

func TestMaintenanceJobAggregatesFailures(t *testing.T) {
	coupons := &fakeCouponRepo{err: errors.New("coupon boom")}
	catalog := &fakeCatalogRepo{err: errors.New("catalog boom")}
	job := newMaintenanceJob(t, coupons, catalog)

	err := job.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("expected 2 aggregated errors, got %d: %v", got, err)
	}
	if catalog.called != 1 {
		t.Fatal("catalog step must still run after coupon failure")
	}
}
