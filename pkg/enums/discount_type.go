package enums

// DiscountType describes how a coupon amount is interpreted.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var validDiscountTypes = []DiscountType{
	DiscountTypePercentage,
	DiscountTypeFixed,
}

// String implements fmt.Stringer.
func (t DiscountType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known DiscountType.
func (t DiscountType) IsValid() bool {
	for _, candidate := range validDiscountTypes {
		if candidate == t {
			return true
		}
	}
	return false
}
