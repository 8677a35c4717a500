package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	dbtypes "github.com/marketrow/storefront-backend/pkg/db/types"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

func draftLine(p *models.Product, qty int, unit string) DraftLine {
	price := decimal.RequireFromString(unit)
	return DraftLine{
		ProductID: p.ID,
		Quantity:  qty,
		UnitPrice: price,
		LineTotal: price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestApplyCouponPercentage(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	coupon := &models.Coupon{Code: "SAVE10", DiscountType: enums.DiscountTypePercentage, Amount: decimal.NewFromInt(10), Active: true}

	applied, issue := applyCoupon(coupon, []DraftLine{draftLine(p, 3, "19.99")}, productMap(p), now)
	if issue != nil {
		t.Fatalf("unexpected issue: %+v", issue)
	}
	if got := applied.EligibleSubtotal.StringFixed(2); got != "59.97" {
		t.Fatalf("eligible subtotal = %s", got)
	}
	if got := applied.Discount.StringFixed(2); got != "6.00" {
		t.Fatalf("discount = %s, want 6.00", got)
	}
}

func TestApplyCouponFixedNeverExceedsEligible(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	coupon := &models.Coupon{Code: "TAKE50", DiscountType: enums.DiscountTypeFixed, Amount: decimal.NewFromInt(50), Active: true}

	applied, issue := applyCoupon(coupon, []DraftLine{draftLine(p, 1, "30.00")}, productMap(p), now)
	if issue != nil {
		t.Fatalf("unexpected issue: %+v", issue)
	}
	if got := applied.Discount.StringFixed(2); got != "30.00" {
		t.Fatalf("discount = %s, want 30.00", got)
	}
}

func TestApplyCouponPercentageNeverExceedsEligible(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	coupon := &models.Coupon{Code: "MEGA150", DiscountType: enums.DiscountTypePercentage, Amount: decimal.NewFromInt(150), Active: true}

	applied, issue := applyCoupon(coupon, []DraftLine{draftLine(p, 1, "100.00")}, productMap(p), now)
	if issue != nil {
		t.Fatalf("unexpected issue: %+v", issue)
	}
	if got := applied.Discount.StringFixed(2); got != "100.00" {
		t.Fatalf("discount = %s, want 100.00", got)
	}
	if applied.Discount.GreaterThan(applied.EligibleSubtotal) {
		t.Fatalf("discount %s exceeds eligible subtotal %s", applied.Discount, applied.EligibleSubtotal)
	}
}

func TestApplyCouponScope(t *testing.T) {
	t.Parallel()

	now := time.Now()
	categoryID := uuid.New()
	inCategory := trackedProduct(10)
	inCategory.CategoryID = categoryID
	byProduct := trackedProduct(10)
	outside := trackedProduct(10)
	outside.CategoryID = uuid.New()
	products := productMap(inCategory, byProduct, outside)

	coupon := &models.Coupon{
		Code:         "SCOPED",
		DiscountType: enums.DiscountTypePercentage,
		Amount:       decimal.NewFromInt(50),
		Active:       true,
		CategoryIDs:  dbtypes.UUIDArray{categoryID},
		ProductIDs:   dbtypes.UUIDArray{byProduct.ID},
	}

	lines := []DraftLine{
		draftLine(inCategory, 1, "10.00"),
		draftLine(byProduct, 1, "20.00"),
		draftLine(outside, 1, "40.00"),
	}
	applied, issue := applyCoupon(coupon, lines, products, now)
	if issue != nil {
		t.Fatalf("unexpected issue: %+v", issue)
	}
	if got := applied.EligibleSubtotal.StringFixed(2); got != "30.00" {
		t.Fatalf("eligible subtotal = %s, want 30.00 (out-of-scope line included?)", got)
	}
	if got := applied.Discount.StringFixed(2); got != "15.00" {
		t.Fatalf("discount = %s", got)
	}
}

func TestApplyCouponNotApplicable(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	p.CategoryID = uuid.New()
	coupon := &models.Coupon{
		Code:         "ELSEWHERE",
		DiscountType: enums.DiscountTypeFixed,
		Amount:       decimal.NewFromInt(5),
		Active:       true,
		CategoryIDs:  dbtypes.UUIDArray{uuid.New()},
	}

	applied, issue := applyCoupon(coupon, []DraftLine{draftLine(p, 1, "10.00")}, productMap(p), now)
	if applied != nil {
		t.Fatalf("expected nil application, got %+v", applied)
	}
	if issue == nil || issue.Problem != enums.CouponProblemNotApplicable {
		t.Fatalf("issue = %+v, want coupon_not_applicable", issue)
	}
}

func TestApplyCouponInvalid(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	lines := []DraftLine{draftLine(p, 1, "10.00")}

	if _, issue := applyCoupon(nil, lines, productMap(p), now); issue == nil || issue.Problem != enums.CouponProblemInvalid {
		t.Fatalf("missing coupon issue = %+v", issue)
	}

	inactive := &models.Coupon{Code: "OLD", DiscountType: enums.DiscountTypeFixed, Amount: decimal.NewFromInt(5), Active: false}
	if _, issue := applyCoupon(inactive, lines, productMap(p), now); issue == nil || issue.Problem != enums.CouponProblemInvalid {
		t.Fatalf("inactive coupon issue = %+v", issue)
	}

	expiry := now.Add(-time.Hour)
	expired := &models.Coupon{Code: "GONE", DiscountType: enums.DiscountTypeFixed, Amount: decimal.NewFromInt(5), Active: true, ExpiresAt: &expiry}
	if _, issue := applyCoupon(expired, lines, productMap(p), now); issue == nil || issue.Problem != enums.CouponProblemInvalid {
		t.Fatalf("expired coupon issue = %+v", issue)
	}
}
