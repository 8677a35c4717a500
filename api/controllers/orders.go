package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/api/responses"
	"github.com/marketrow/storefront-backend/api/validators"
	internalorders "github.com/marketrow/storefront-backend/internal/orders"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
	"github.com/marketrow/storefront-backend/pkg/logger"
)

// ListOrders returns the authenticated customer's orders, newest first.
func ListOrders(repo internalorders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders repository unavailable"))
			return
		}

		customerID, err := customerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultPageLimit, 1, maxPageLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<20)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orders, err := repo.ListByCustomer(r.Context(), customerID, limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"orders": orders,
			"limit":  limit,
			"offset": offset,
		})
	}
}

// GetOrder returns one order after verifying the authenticated customer owns it.
func GetOrder(repo internalorders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders repository unavailable"))
			return
		}

		customerID, err := customerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		order, err := repo.FindByID(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				err = pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			} else {
				err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// Cross-customer ids read as missing, never as forbidden.
		if order.CustomerID != customerID {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}

		responses.WriteSuccess(w, order)
	}
}
