package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/enums"
	"github.com/marketrow/storefront-backend/pkg/money"
)

var flatShippingRates = map[enums.ShippingMethod]decimal.Decimal{
	enums.ShippingMethodStandard:  decimal.Zero,
	enums.ShippingMethodExpress:   decimal.NewFromInt(15),
	enums.ShippingMethodOvernight: decimal.NewFromInt(30),
}

// resolveShipping picks the shipping cost and display label. A carrier rate,
// when supplied, wins over the flat-rate table unconditionally; its price is
// clamped at zero so a malformed negative quote cannot reduce the total.
// Without one, the chosen method maps to a flat rate, and an unknown or
// empty method falls back to free standard shipping.
func resolveShipping(opts Options) (label string, cost decimal.Decimal, rate *CarrierRate) {
	if opts.CarrierRate != nil {
		r := *opts.CarrierRate
		r.Price = money.Round2(money.ClampZero(r.Price))
		return fmt.Sprintf("%s - %s", r.Carrier, r.Service), r.Price, &r
	}

	method := opts.ShippingMethod
	flat, ok := flatShippingRates[method]
	if !ok {
		method = enums.ShippingMethodStandard
		flat = decimal.Zero
	}
	return method.String(), money.Round2(flat), nil
}
