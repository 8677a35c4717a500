package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	"github.com/marketrow/storefront-backend/pkg/enums"
	"github.com/marketrow/storefront-backend/pkg/money"
)

// applyCoupon prices a coupon against the already-priced lines. The discount
// is computed over the eligible subtotal only (the lines the coupon scopes
// to), never over shipping or tax. A coupon that exists but matches nothing
// in the cart is reported as coupon_not_applicable rather than silently
// discounting zero.
func applyCoupon(coupon *models.Coupon, lines []DraftLine, products map[uuid.UUID]*models.Product, now time.Time) (*AppliedCoupon, *CouponIssue) {
	if coupon == nil || !coupon.Usable(now) {
		code := ""
		if coupon != nil {
			code = coupon.Code
		}
		return nil, &CouponIssue{Code: code, Problem: enums.CouponProblemInvalid}
	}

	eligible := decimal.Zero
	for _, line := range lines {
		if couponCovers(coupon, products[line.ProductID]) {
			eligible = eligible.Add(line.LineTotal)
		}
	}
	eligible = money.Round2(eligible)
	if eligible.IsZero() {
		return nil, &CouponIssue{Code: coupon.Code, Problem: enums.CouponProblemNotApplicable}
	}

	var discount decimal.Decimal
	switch coupon.DiscountType {
	case enums.DiscountTypePercentage:
		// Rates past 100% never discount more than the covered lines.
		discount = money.Min(money.Percent(eligible, coupon.Amount), eligible)
	case enums.DiscountTypeFixed:
		discount = money.Min(money.Round2(coupon.Amount), eligible)
	default:
		return nil, &CouponIssue{Code: coupon.Code, Problem: enums.CouponProblemInvalid}
	}

	return &AppliedCoupon{
		Code:             coupon.Code,
		DiscountType:     coupon.DiscountType,
		Amount:           coupon.Amount,
		Discount:         discount,
		EligibleSubtotal: eligible,
	}, nil
}

// couponCovers reports whether a scoped coupon reaches the given product,
// either by product id or by any shared category.
func couponCovers(coupon *models.Coupon, product *models.Product) bool {
	if product == nil {
		return false
	}
	if coupon.AppliesToAll() {
		return true
	}
	for _, id := range coupon.ProductIDs {
		if id == product.ID {
			return true
		}
	}
	for _, categoryID := range product.CategoryIDs() {
		for _, id := range coupon.CategoryIDs {
			if id == categoryID {
				return true
			}
		}
	}
	return false
}
