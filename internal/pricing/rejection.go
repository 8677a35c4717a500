package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

// Violation is one machine-readable eligibility failure. Account-level
// violations list every offending product id (or none for
// billing_address_required); per-line violations carry a single ProductID
// and, for insufficient_stock, the available vs requested quantities.
type Violation struct {
	Type       enums.ViolationType `json:"type"`
	ProductIDs []uuid.UUID         `json:"product_ids,omitempty"`
	ProductID  *uuid.UUID          `json:"product_id,omitempty"`
	Available  *int                `json:"available,omitempty"`
	Requested  *int                `json:"requested,omitempty"`
}

// CouponIssue explains why the supplied coupon could not price the cart.
// It is reported separately from Violations because the remedy is removing
// the coupon rather than changing the cart.
type CouponIssue struct {
	Code    string              `json:"code"`
	Problem enums.CouponProblem `json:"problem"`
}

// Rejection is the structured all-or-nothing failure of a pricing attempt.
// It implements error so it can flow through ordinary return paths; callers
// recover the report with errors.As.
type Rejection struct {
	Violations []Violation  `json:"violations,omitempty"`
	Coupon     *CouponIssue `json:"coupon,omitempty"`
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	if r == nil {
		return "order request rejected"
	}
	if r.Coupon != nil && len(r.Violations) == 0 {
		return fmt.Sprintf("order request rejected: coupon %s", r.Coupon.Problem)
	}
	return fmt.Sprintf("order request rejected: %d violation(s)", len(r.Violations))
}

// Empty reports whether the rejection carries no failures at all.
func (r *Rejection) Empty() bool {
	return r == nil || (len(r.Violations) == 0 && r.Coupon == nil)
}

func accountViolation(vt enums.ViolationType, productIDs []uuid.UUID) Violation {
	return Violation{Type: vt, ProductIDs: productIDs}
}

func lineViolation(vt enums.ViolationType, productID uuid.UUID) Violation {
	id := productID
	return Violation{Type: vt, ProductID: &id}
}

func stockViolation(productID uuid.UUID, available, requested int) Violation {
	v := lineViolation(enums.ViolationInsufficientStock, productID)
	v.Available = &available
	v.Requested = &requested
	return v
}
