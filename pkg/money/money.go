// Package money centralizes the rounding rules for every monetary value the
// pricing engine produces. All amounts are rounded to 2 decimal places,
// half away from zero, before they feed the next pricing stage, so repeated
// arithmetic cannot accumulate floating-point drift.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds to 2 decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns base * pct / 100, rounded.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(pct).Div(hundred))
}

// ClampZero floors negative amounts at zero.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
