package pricing

import (
	"strings"

	"github.com/google/uuid"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

// validateEligibility runs every account and per-line gate over the resolved
// cart and returns a Rejection carrying the full violation set, or nil when
// the cart may be priced. Placement is all-or-nothing: one violating line
// rejects the whole request, and every violating line is reported.
func validateEligibility(purchaser Purchaser, lines []RequestedLine, products map[uuid.UUID]*models.Product) *Rejection {
	rejection := &Rejection{}

	if restricted := b2bRestrictedProducts(lines, products); len(restricted) > 0 {
		switch {
		case purchaser.AccountType != enums.AccountTypeB2B:
			rejection.Violations = append(rejection.Violations, accountViolation(enums.ViolationB2BRequired, restricted))
		case !purchaser.VerificationApproved:
			rejection.Violations = append(rejection.Violations, accountViolation(enums.ViolationVerificationRequired, restricted))
		}
	}

	if purchaser.AccountType == enums.AccountTypeC2B && !hasCompleteBillingAddress(purchaser.BillingAddress) {
		rejection.Violations = append(rejection.Violations, accountViolation(enums.ViolationBillingAddressRequired, nil))
	}

	for _, line := range lines {
		product := products[line.ProductID]
		if product == nil {
			continue
		}

		if product.HasTag(enums.ProductTagComingSoon) {
			rejection.Violations = append(rejection.Violations, lineViolation(enums.ViolationComingSoon, product.ID))
			continue
		}

		stock := ResolveStock(StockInfoFor(product))
		if stock.Unavailable() {
			rejection.Violations = append(rejection.Violations, lineViolation(enums.ViolationOutOfStock, product.ID))
			continue
		}
		if stock.ManageStock && !stock.AllowBackorder && stock.Quantity < line.Quantity {
			rejection.Violations = append(rejection.Violations, stockViolation(product.ID, stock.Quantity, line.Quantity))
		}
	}

	if rejection.Empty() {
		return nil
	}
	return rejection
}

func b2bRestrictedProducts(lines []RequestedLine, products map[uuid.UUID]*models.Product) []uuid.UUID {
	restricted := make([]uuid.UUID, 0)
	for _, line := range lines {
		if product := products[line.ProductID]; product != nil && product.RequiresB2B {
			restricted = append(restricted, product.ID)
		}
	}
	return restricted
}

func hasCompleteBillingAddress(addr *BillingAddress) bool {
	if addr == nil {
		return false
	}
	for _, field := range []string{addr.Line1, addr.City, addr.State, addr.Country} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
