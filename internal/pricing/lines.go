package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	"github.com/marketrow/storefront-backend/pkg/enums"
	"github.com/marketrow/storefront-backend/pkg/money"
)

const newArrivalWindow = 30 * 24 * time.Hour

// unitPrice captures the price a line sells at right now: the sale price
// while the sale window covers the instant, the base price otherwise.
// Drafts snapshot this value; a sale ending later never reprices them.
func unitPrice(p *models.Product, now time.Time) decimal.Decimal {
	if saleActive(p, now) {
		return money.Round2(*p.SalePrice)
	}
	return money.Round2(p.BasePrice)
}

func saleActive(p *models.Product, now time.Time) bool {
	if p.SalePrice == nil {
		return false
	}
	if p.SaleStartsAt != nil && now.Before(*p.SaleStartsAt) {
		return false
	}
	if p.SaleEndsAt != nil && !now.Before(*p.SaleEndsAt) {
		return false
	}
	return true
}

// displayTags derives the descriptive tag snapshot stored on a draft line.
// "coming soon" suppresses everything else; otherwise tags accumulate in a
// fixed order and close with exactly one availability tag.
func displayTags(p *models.Product, now time.Time) []string {
	if p.HasTag(enums.ProductTagComingSoon) {
		return []string{enums.ProductTagComingSoon}
	}

	stock := ResolveStock(StockInfoFor(p))
	available := !stock.Unavailable()

	tags := make([]string, 0, 4)
	if saleActive(p, now) {
		tags = append(tags, enums.ProductTagOnSale)
	}
	if p.ManageStock && p.RestockedAt != nil && available {
		tags = append(tags, enums.ProductTagBackInStock)
	}
	if p.RestockedAt == nil && now.Sub(p.CreatedAt) <= newArrivalWindow {
		tags = append(tags, enums.ProductTagNewArrival)
	}
	if available {
		tags = append(tags, enums.ProductTagInStock)
	} else {
		tags = append(tags, enums.ProductTagOutOfStock)
	}
	return tags
}
