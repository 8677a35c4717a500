package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketrow/storefront-backend/api/responses"
	"github.com/marketrow/storefront-backend/api/validators"
	checkoutsvc "github.com/marketrow/storefront-backend/internal/checkout"
	"github.com/marketrow/storefront-backend/internal/pricing"
	"github.com/marketrow/storefront-backend/pkg/enums"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
	"github.com/marketrow/storefront-backend/pkg/logger"
	"github.com/marketrow/storefront-backend/pkg/metrics"
)

// Quote prices a cart without persisting anything. The response body is the
// full order draft, so clients can render totals before checkout.
func Quote(svc checkoutsvc.Service, checkoutMetrics *metrics.CheckoutMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		customerID, err := customerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start := time.Now()
		draft, err := svc.Quote(r.Context(), customerID, payload.toInput())
		checkoutMetrics.ObserveDuration(metrics.OperationQuote, time.Since(start))
		if err != nil {
			checkoutMetrics.IncOutcome(metrics.OperationQuote, rejectionOutcome(err))
			writeDraftError(w, r, logg, err)
			return
		}
		checkoutMetrics.IncOutcome(metrics.OperationQuote, metrics.OutcomePriced)

		responses.WriteSuccess(w, draft)
	}
}

// Checkout prices the cart and, when it survives validation, persists the
// order and commits stock atomically.
func Checkout(svc checkoutsvc.Service, checkoutMetrics *metrics.CheckoutMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		customerID, err := customerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start := time.Now()
		order, err := svc.Execute(r.Context(), customerID, payload.toInput())
		checkoutMetrics.ObserveDuration(metrics.OperationCheckout, time.Since(start))
		if err != nil {
			checkoutMetrics.IncOutcome(metrics.OperationCheckout, rejectionOutcome(err))
			writeDraftError(w, r, logg, err)
			return
		}
		checkoutMetrics.IncOutcome(metrics.OperationCheckout, metrics.OutcomePriced)

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

type checkoutRequest struct {
	Lines             []checkoutLineRequest `json:"lines" validate:"required,min=1,dive"`
	CouponCode        string                `json:"coupon_code,omitempty"`
	ShippingMethod    string                `json:"shipping_method,omitempty"`
	CarrierRate       *carrierRateRequest   `json:"carrier_rate,omitempty"`
	ShippingAddressID *uuid.UUID            `json:"shipping_address_id,omitempty" validate:"omitempty,uuid4"`
}

type checkoutLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type carrierRateRequest struct {
	ID               string          `json:"id"`
	Carrier          string          `json:"carrier" validate:"required"`
	Service          string          `json:"service" validate:"required"`
	Price            decimal.Decimal `json:"price"`
	DeliveryEstimate string          `json:"delivery_estimate,omitempty"`
}

func (req checkoutRequest) toInput() checkoutsvc.Input {
	lines := make([]pricing.RequestedLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, pricing.RequestedLine{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	opts := pricing.Options{
		CouponCode:        validators.SanitizeString(req.CouponCode, 64),
		ShippingMethod:    enums.ShippingMethod(validators.SanitizeString(req.ShippingMethod, 32)),
		ShippingAddressID: req.ShippingAddressID,
	}
	if req.CarrierRate != nil {
		opts.CarrierRate = &pricing.CarrierRate{
			ID:               req.CarrierRate.ID,
			Carrier:          req.CarrierRate.Carrier,
			Service:          req.CarrierRate.Service,
			Price:            req.CarrierRate.Price,
			DeliveryEstimate: req.CarrierRate.DeliveryEstimate,
		}
	}

	return checkoutsvc.Input{Lines: lines, Options: opts}
}

// writeDraftError renders pricing rejections as validation errors whose
// details carry the typed violation report, and defers everything else to
// the shared error writer.
func writeDraftError(w http.ResponseWriter, r *http.Request, logg *logger.Logger, err error) {
	var rejection *pricing.Rejection
	if errors.As(err, &rejection) {
		details := map[string]any{}
		if len(rejection.Violations) > 0 {
			details["violations"] = rejection.Violations
		}
		if rejection.Coupon != nil {
			details["coupon"] = rejection.Coupon
		}
		typed := pkgerrors.New(pkgerrors.CodeValidation, "order request rejected").WithDetails(details)
		responses.WriteError(r.Context(), logg, w, typed)
		return
	}
	responses.WriteError(r.Context(), logg, w, err)
}

func rejectionOutcome(err error) string {
	var rejection *pricing.Rejection
	if errors.As(err, &rejection) {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeError
}
