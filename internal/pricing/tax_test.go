package pricing

import (
	"testing"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

func TestTaxJurisdictionStandardNeverTaxed(t *testing.T) {
	t.Parallel()

	_, _, taxable := taxJurisdiction(Purchaser{AccountType: enums.AccountTypeStandard})
	if taxable {
		t.Fatal("standard accounts must not be taxable")
	}
}

func TestTaxJurisdictionB2BExplicitFieldsWin(t *testing.T) {
	t.Parallel()

	p := Purchaser{
		AccountType: enums.AccountTypeB2B,
		Company: &Company{
			Name:    "Acme",
			Country: " US ",
			State:   "CA",
			Address: "1 Elsewhere Rd, Berlin, BE, DE",
		},
	}
	country, state, taxable := taxJurisdiction(p)
	if !taxable || country != "us" || state != "ca" {
		t.Fatalf("got (%q, %q, %v)", country, state, taxable)
	}
}

func TestTaxJurisdictionB2BAddressFallback(t *testing.T) {
	t.Parallel()

	p := Purchaser{
		AccountType: enums.AccountTypeB2B,
		Company:     &Company{Name: "Acme", Address: "500 Commerce Way, Austin, TX, US"},
	}
	country, state, taxable := taxJurisdiction(p)
	if !taxable || country != "us" || state != "tx" {
		t.Fatalf("got (%q, %q, %v)", country, state, taxable)
	}

	// A single token is treated as the country.
	p.Company.Address = "Portugal"
	country, state, taxable = taxJurisdiction(p)
	if !taxable || country != "portugal" || state != "" {
		t.Fatalf("single token got (%q, %q, %v)", country, state, taxable)
	}

	p.Company.Address = "   "
	if _, _, taxable := taxJurisdiction(p); taxable {
		t.Fatal("blank address must not be taxable")
	}
}

func TestTaxJurisdictionC2BUsesBillingAddress(t *testing.T) {
	t.Parallel()

	p := Purchaser{
		AccountType:    enums.AccountTypeC2B,
		BillingAddress: &BillingAddress{Line1: "1 Main St", City: "Austin", State: "TX", Country: "US"},
	}
	country, state, taxable := taxJurisdiction(p)
	if !taxable || country != "us" || state != "tx" {
		t.Fatalf("got (%q, %q, %v)", country, state, taxable)
	}

	if _, _, taxable := taxJurisdiction(Purchaser{AccountType: enums.AccountTypeC2B}); taxable {
		t.Fatal("c2b without billing address must not be taxable")
	}
}
