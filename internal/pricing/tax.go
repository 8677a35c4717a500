package pricing

import (
	"strings"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

// taxJurisdiction derives the (country, state) pair used for rate lookup.
// Keys are lowercased and trimmed so "US" and " us " resolve identically.
//
// Standard accounts are never taxed. B2B accounts tax at the company
// jurisdiction: explicit country/state fields win, and only when both are
// absent is the free-text company address parsed. C2B accounts tax at the
// billing address, which eligibility has already required to be complete.
func taxJurisdiction(p Purchaser) (country, state string, taxable bool) {
	switch p.AccountType {
	case enums.AccountTypeB2B:
		if p.Company == nil {
			return "", "", false
		}
		country = normalizeJurisdictionKey(p.Company.Country)
		state = normalizeJurisdictionKey(p.Company.State)
		if country == "" && state == "" {
			country, state = parseAddressJurisdiction(p.Company.Address)
		}
	case enums.AccountTypeC2B:
		if p.BillingAddress == nil {
			return "", "", false
		}
		country = normalizeJurisdictionKey(p.BillingAddress.Country)
		state = normalizeJurisdictionKey(p.BillingAddress.State)
	default:
		return "", "", false
	}
	return country, state, country != "" || state != ""
}

// parseAddressJurisdiction reads a free-text address of the common
// "street, city, state, country" shape: the last comma-separated token is
// the country and the one before it the state.
func parseAddressJurisdiction(address string) (country, state string) {
	tokens := make([]string, 0, 4)
	for _, raw := range strings.Split(address, ",") {
		if token := normalizeJurisdictionKey(raw); token != "" {
			tokens = append(tokens, token)
		}
	}
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	default:
		return tokens[len(tokens)-1], tokens[len(tokens)-2]
	}
}

func normalizeJurisdictionKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
