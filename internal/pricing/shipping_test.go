package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

func TestResolveShippingFlatRates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		method enums.ShippingMethod
		label  string
		cost   string
	}{
		{enums.ShippingMethodStandard, "standard", "0.00"},
		{enums.ShippingMethodExpress, "express", "15.00"},
		{enums.ShippingMethodOvernight, "overnight", "30.00"},
		{enums.ShippingMethod("drone"), "standard", "0.00"},
		{enums.ShippingMethod(""), "standard", "0.00"},
	}

	for _, tc := range cases {
		label, cost, rate := resolveShipping(Options{ShippingMethod: tc.method})
		if rate != nil {
			t.Fatalf("%s: unexpected carrier rate", tc.method)
		}
		if label != tc.label || cost.StringFixed(2) != tc.cost {
			t.Fatalf("%s: got (%s, %s), want (%s, %s)", tc.method, label, cost.StringFixed(2), tc.label, tc.cost)
		}
	}
}

func TestResolveShippingCarrierRateWins(t *testing.T) {
	t.Parallel()

	opts := Options{
		ShippingMethod: enums.ShippingMethodOvernight,
		CarrierRate: &CarrierRate{
			ID:      "rate_123",
			Carrier: "UPS",
			Service: "Ground",
			Price:   decimal.RequireFromString("12.345"),
		},
	}
	label, cost, rate := resolveShipping(opts)
	if label != "UPS - Ground" {
		t.Fatalf("label = %q", label)
	}
	if cost.StringFixed(2) != "12.35" {
		t.Fatalf("cost = %s, want 12.35", cost.StringFixed(2))
	}
	if rate == nil || rate.ID != "rate_123" {
		t.Fatalf("carrier rate not retained: %+v", rate)
	}
}

func TestResolveShippingClampsNegativeQuotes(t *testing.T) {
	t.Parallel()

	opts := Options{CarrierRate: &CarrierRate{Carrier: "USPS", Service: "Priority", Price: decimal.NewFromInt(-4)}}
	_, cost, _ := resolveShipping(opts)
	if !cost.IsZero() {
		t.Fatalf("cost = %s, want 0", cost)
	}
}
