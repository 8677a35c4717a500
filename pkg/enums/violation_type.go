package enums

// ViolationType identifies a single eligibility rule broken by a cart
// submission. Account-level types apply to the purchaser as a whole;
// the remaining types are reported per line.
type ViolationType string

const (
	ViolationB2BRequired            ViolationType = "b2b_required"
	ViolationVerificationRequired   ViolationType = "verification_required"
	ViolationBillingAddressRequired ViolationType = "billing_address_required"
	ViolationComingSoon             ViolationType = "coming_soon"
	ViolationOutOfStock             ViolationType = "out_of_stock"
	ViolationInsufficientStock      ViolationType = "insufficient_stock"
)

var validViolationTypes = []ViolationType{
	ViolationB2BRequired,
	ViolationVerificationRequired,
	ViolationBillingAddressRequired,
	ViolationComingSoon,
	ViolationOutOfStock,
	ViolationInsufficientStock,
}

// String implements fmt.Stringer.
func (v ViolationType) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ViolationType.
func (v ViolationType) IsValid() bool {
	for _, candidate := range validViolationTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// CouponProblem identifies why a coupon could not price a cart. It is kept
// separate from ViolationType because the remedy is removing the coupon,
// not changing the cart.
type CouponProblem string

const (
	CouponProblemInvalid       CouponProblem = "invalid_coupon"
	CouponProblemNotApplicable CouponProblem = "coupon_not_applicable"
)

// String implements fmt.Stringer.
func (p CouponProblem) String() string {
	return string(p)
}
