package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/internal/catalog"
	"github.com/marketrow/storefront-backend/internal/orders"
	"github.com/marketrow/storefront-backend/internal/pricing"
	"github.com/marketrow/storefront-backend/pkg/db/models"
	"github.com/marketrow/storefront-backend/pkg/enums"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type purchaserLoader interface {
	Snapshot(ctx context.Context, id uuid.UUID) (pricing.Purchaser, error)
}

type stockCommitter interface {
	WithTx(tx *gorm.DB) *catalog.Repository
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

// Input is one checkout submission.
type Input struct {
	Lines   []pricing.RequestedLine
	Options pricing.Options
}

// Service prices a cart and, when it survives validation, persists the
// order and commits stock in a single transaction.
type Service interface {
	Execute(ctx context.Context, customerID uuid.UUID, input Input) (*models.Order, error)
	Quote(ctx context.Context, customerID uuid.UUID, input Input) (*pricing.OrderDraft, error)
}

type service struct {
	tx        txRunner
	customers purchaserLoader
	pricing   pricing.Service
	catalog   stockCommitter
	orders    orders.Repository
}

// NewService builds the checkout service.
func NewService(
	tx txRunner,
	customers purchaserLoader,
	pricingSvc pricing.Service,
	catalogRepo stockCommitter,
	ordersRepo orders.Repository,
) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer service required")
	}
	if pricingSvc == nil {
		return nil, fmt.Errorf("pricing service required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{tx: tx, customers: customers, pricing: pricingSvc, catalog: catalogRepo, orders: ordersRepo}, nil
}

// Quote prices the cart without persisting anything.
func (s *service) Quote(ctx context.Context, customerID uuid.UUID, input Input) (*pricing.OrderDraft, error) {
	purchaser, err := s.customers.Snapshot(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.pricing.ValidateAndPrice(ctx, purchaser, input.Lines, input.Options)
}

// Execute prices the cart and places the order. Stock is committed inside
// the same transaction as the order rows, with a conditional decrement for
// non-backorderable lines, so a concurrent checkout that loses the race is
// rejected instead of driving tracked stock negative.
func (s *service) Execute(ctx context.Context, customerID uuid.UUID, input Input) (*models.Order, error) {
	purchaser, err := s.customers.Snapshot(ctx, customerID)
	if err != nil {
		return nil, err
	}

	draft, err := s.pricing.ValidateAndPrice(ctx, purchaser, input.Lines, input.Options)
	if err != nil {
		return nil, err
	}

	order, err := buildOrder(customerID, draft)
	if err != nil {
		return nil, err
	}

	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.commitStock(ctx, tx, draft); err != nil {
			return err
		}

		txOrders := s.orders.WithTx(tx)
		created, err := txOrders.CreateOrder(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
		}

		items := make([]models.OrderLineItem, 0, len(draft.Lines))
		for _, line := range draft.Lines {
			items = append(items, models.OrderLineItem{
				OrderID:   created.ID,
				ProductID: line.ProductID,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Tags:      line.Tags,
				LineTotal: line.LineTotal,
			})
		}
		if err := txOrders.CreateOrderLineItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order line items")
		}
		order = created
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.orders.FindByID(ctx, order.ID)
}

// commitStock decrements inventory for every tracked line. Backorderable
// lines deduct unconditionally and may leave quantity negative; everything
// else requires enough stock to remain, and a lost race surfaces as an
// insufficient_stock rejection.
func (s *service) commitStock(ctx context.Context, tx *gorm.DB, draft *pricing.OrderDraft) error {
	ids := make([]uuid.UUID, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		ids = append(ids, line.ProductID)
	}

	txCatalog := s.catalog.WithTx(tx)
	products, err := txCatalog.FindByIDs(ctx, ids)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload products for stock commit")
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, line := range draft.Lines {
		product := byID[line.ProductID]
		if product == nil {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "product removed during checkout").
				WithDetails(map[string]any{"product_id": line.ProductID})
		}
		if !product.ManageStock {
			continue
		}

		stock := pricing.ResolveStock(pricing.StockInfoFor(product))
		if stock.AllowBackorder {
			if err := txCatalog.DeductStock(ctx, product.ID, line.Quantity); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deduct stock")
			}
			continue
		}

		ok, err := txCatalog.CommitStock(ctx, product.ID, line.Quantity)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "commit stock")
		}
		if !ok {
			id := product.ID
			available := product.Quantity
			requested := line.Quantity
			return &pricing.Rejection{Violations: []pricing.Violation{{
				Type:      enums.ViolationInsufficientStock,
				ProductID: &id,
				Available: &available,
				Requested: &requested,
			}}}
		}
	}
	return nil
}

func buildOrder(customerID uuid.UUID, draft *pricing.OrderDraft) (*models.Order, error) {
	order := &models.Order{
		CustomerID:     customerID,
		Subtotal:       draft.Subtotal,
		DiscountAmount: draft.DiscountAmount,
		TaxRate:        draft.TaxRate,
		TaxAmount:      draft.TaxAmount,
		TaxCountry:     draft.TaxCountry,
		TaxState:       draft.TaxState,
		ShippingLabel:  draft.ShippingLabel,
		ShippingCost:   draft.ShippingCost,
		Total:          draft.Total,
		Status:         enums.OrderStatusPlaced,
	}

	if draft.Coupon != nil {
		code := draft.Coupon.Code
		order.CouponCode = &code
		detail, err := json.Marshal(draft.Coupon)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode coupon detail")
		}
		order.CouponDetail = detail
	}
	if draft.CarrierRate != nil {
		rate, err := json.Marshal(draft.CarrierRate)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode carrier rate")
		}
		order.CarrierRate = rate
	}
	if draft.ShippingAddress != nil {
		addr, err := json.Marshal(draft.ShippingAddress)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode shipping address")
		}
		order.ShippingAddress = addr
	}
	return order, nil
}
