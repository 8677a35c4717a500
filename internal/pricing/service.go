package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/pkg/db/models"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
	"github.com/marketrow/storefront-backend/pkg/money"
)

type catalogLoader interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

type couponLoader interface {
	// FindByCode returns (nil, nil) when no coupon matches the code.
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type taxRateResolver interface {
	// Resolve returns (nil, nil) when no rate matches the jurisdiction.
	Resolve(ctx context.Context, country, state string) (*models.TaxRate, error)
}

// Service validates and prices a cart submission in one shot. The result is
// either a complete OrderDraft or an error; a *Rejection error carries the
// structured violation report, anything else is an infrastructure failure.
type Service interface {
	ValidateAndPrice(ctx context.Context, purchaser Purchaser, lines []RequestedLine, opts Options) (*OrderDraft, error)
}

type service struct {
	catalog  catalogLoader
	coupons  couponLoader
	taxRates taxRateResolver
	now      func() time.Time
}

// NewService builds the pricing service.
func NewService(catalog catalogLoader, coupons couponLoader, taxRates taxRateResolver) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if coupons == nil {
		return nil, fmt.Errorf("coupon repository required")
	}
	if taxRates == nil {
		return nil, fmt.Errorf("tax rate repository required")
	}
	return &service{catalog: catalog, coupons: coupons, taxRates: taxRates, now: time.Now}, nil
}

func (s *service) ValidateAndPrice(ctx context.Context, purchaser Purchaser, requested []RequestedLine, opts Options) (*OrderDraft, error) {
	now := s.now()

	lines, err := normalizeLines(requested)
	if err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, lines)
	if err != nil {
		return nil, err
	}

	if rejection := validateEligibility(purchaser, lines, products); rejection != nil {
		return nil, rejection
	}

	draft := &OrderDraft{Lines: make([]DraftLine, 0, len(lines))}
	subtotal := decimal.Zero
	for _, line := range lines {
		product := products[line.ProductID]
		price := unitPrice(product, now)
		lineTotal := money.Round2(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		draft.Lines = append(draft.Lines, DraftLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: price,
			Tags:      displayTags(product, now),
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	draft.Subtotal = money.Round2(subtotal)

	draft.DiscountAmount = decimal.Zero
	if code := strings.TrimSpace(opts.CouponCode); code != "" {
		coupon, err := s.coupons.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		applied, issue := applyCoupon(coupon, draft.Lines, products, now)
		if issue != nil {
			if issue.Code == "" {
				issue.Code = code
			}
			return nil, &Rejection{Coupon: issue}
		}
		draft.Coupon = applied
		draft.DiscountAmount = applied.Discount
	}
	draft.DiscountedSubtotal = money.Round2(money.ClampZero(draft.Subtotal.Sub(draft.DiscountAmount)))

	if err := s.resolveTax(ctx, purchaser, draft); err != nil {
		return nil, err
	}

	draft.ShippingLabel, draft.ShippingCost, draft.CarrierRate = resolveShipping(opts)

	draft.ShippingAddress = pickShippingAddress(purchaser, opts)

	draft.Total = money.Round2(draft.DiscountedSubtotal.Add(draft.TaxAmount).Add(draft.ShippingCost))
	return draft, nil
}

// normalizeLines merges duplicate product ids, preserving first-seen order,
// and rejects non-positive quantities before any lookup happens.
func normalizeLines(requested []RequestedLine) ([]RequestedLine, error) {
	if len(requested) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one line item is required")
	}

	merged := make([]RequestedLine, 0, len(requested))
	index := make(map[uuid.UUID]int, len(requested))
	for _, line := range requested {
		if line.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be positive").
				WithDetails(map[string]any{"product_id": line.ProductID, "quantity": line.Quantity})
		}
		if at, ok := index[line.ProductID]; ok {
			merged[at].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged, nil
}

func (s *service) loadProducts(ctx context.Context, lines []RequestedLine) (map[uuid.UUID]*models.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	found, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[uuid.UUID]*models.Product, len(found))
	for i := range found {
		products[found[i].ID] = &found[i]
	}

	missing := make([]uuid.UUID, 0)
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "one or more products do not exist").
			WithDetails(map[string]any{"missing_product_ids": missing})
	}
	return products, nil
}

func (s *service) resolveTax(ctx context.Context, purchaser Purchaser, draft *OrderDraft) error {
	draft.TaxAmount = decimal.Zero
	if purchaser.TaxExempt {
		return nil
	}

	country, state, taxable := taxJurisdiction(purchaser)
	if !taxable {
		return nil
	}

	rate, err := s.taxRates.Resolve(ctx, country, state)
	if err != nil {
		return err
	}
	if rate == nil {
		return nil
	}

	r := rate.Rate
	draft.TaxRate = &r
	draft.TaxAmount = money.Percent(draft.DiscountedSubtotal, r)
	if country != "" {
		draft.TaxCountry = &country
	}
	if state != "" {
		draft.TaxState = &state
	}
	return nil
}

// pickShippingAddress resolves the delivery address snapshot: a requested id
// that matches a saved address wins; otherwise the flagged default, then the
// first saved address, then none. A stale requested id is not an error.
func pickShippingAddress(purchaser Purchaser, opts Options) *ShippingAddress {
	if opts.ShippingAddressID != nil {
		for _, addr := range purchaser.ShippingAddresses {
			if addr.ID == *opts.ShippingAddressID {
				a := addr
				return &a
			}
		}
	}
	for _, addr := range purchaser.ShippingAddresses {
		if addr.Default {
			a := addr
			return &a
		}
	}
	if len(purchaser.ShippingAddresses) > 0 {
		a := purchaser.ShippingAddresses[0]
		return &a
	}
	return nil
}
