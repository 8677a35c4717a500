package pricing

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

func TestUnitPriceSaleWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	p := trackedProduct(10)
	p.BasePrice = decimal.NewFromInt(100)

	if got := unitPrice(p, now).StringFixed(2); got != "100.00" {
		t.Fatalf("no sale price = %s", got)
	}

	sale := decimal.NewFromInt(80)
	p.SalePrice = &sale
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)
	p.SaleStartsAt = &start
	p.SaleEndsAt = &end
	if got := unitPrice(p, now).StringFixed(2); got != "80.00" {
		t.Fatalf("active sale price = %s", got)
	}

	if got := unitPrice(p, end.Add(time.Minute)).StringFixed(2); got != "100.00" {
		t.Fatalf("expired sale price = %s", got)
	}
	if got := unitPrice(p, start.Add(-time.Minute)).StringFixed(2); got != "100.00" {
		t.Fatalf("future sale price = %s", got)
	}

	// An open-ended sale applies whenever a sale price is set.
	p.SaleStartsAt = nil
	p.SaleEndsAt = nil
	if got := unitPrice(p, now).StringFixed(2); got != "80.00" {
		t.Fatalf("open-ended sale price = %s", got)
	}
}

func TestDisplayTagsComingSoonIsExclusive(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	sale := decimal.NewFromInt(5)
	p.SalePrice = &sale
	p.Tags = pq.StringArray{enums.ProductTagComingSoon, "featured"}

	tags := displayTags(p, now)
	if len(tags) != 1 || tags[0] != enums.ProductTagComingSoon {
		t.Fatalf("tags = %v", tags)
	}
}

func TestDisplayTagsAccumulateInOrder(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	sale := decimal.NewFromInt(5)
	p.SalePrice = &sale
	restocked := now.Add(-48 * time.Hour)
	p.RestockedAt = &restocked
	p.CreatedAt = now.Add(-24 * time.Hour)

	// Restocked products never count as new arrivals.
	tags := displayTags(p, now)
	want := []string{enums.ProductTagOnSale, enums.ProductTagBackInStock, enums.ProductTagInStock}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", tags, want)
		}
	}
}

func TestDisplayTagsNewArrival(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := trackedProduct(10)
	p.CreatedAt = now.Add(-10 * 24 * time.Hour)

	tags := displayTags(p, now)
	if len(tags) != 2 || tags[0] != enums.ProductTagNewArrival || tags[1] != enums.ProductTagInStock {
		t.Fatalf("tags = %v", tags)
	}

	p.CreatedAt = now.Add(-40 * 24 * time.Hour)
	tags = displayTags(p, now)
	if len(tags) != 1 || tags[0] != enums.ProductTagInStock {
		t.Fatalf("aged product tags = %v", tags)
	}
}

func TestDisplayTagsAvailability(t *testing.T) {
	t.Parallel()

	now := time.Now()
	sold := trackedProduct(0)
	sold.CreatedAt = now.Add(-365 * 24 * time.Hour)
	tags := displayTags(sold, now)
	if len(tags) != 1 || tags[0] != enums.ProductTagOutOfStock {
		t.Fatalf("sold-out tags = %v", tags)
	}

	untracked := trackedProduct(0)
	untracked.ManageStock = false
	untracked.CreatedAt = sold.CreatedAt
	tags = displayTags(untracked, now)
	if len(tags) != 1 || tags[0] != enums.ProductTagInStock {
		t.Fatalf("untracked tags = %v", tags)
	}
}
