package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketrow/storefront-backend/api/responses"
	"github.com/marketrow/storefront-backend/api/validators"
	"github.com/marketrow/storefront-backend/internal/catalog"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
	"github.com/marketrow/storefront-backend/pkg/logger"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListProducts returns a storefront catalog page, newest first.
func ListProducts(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog repository unavailable"))
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

		products, err := repo.List(r.Context(), limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"limit":    limit,
			"offset":   offset,
		})
	}
}

// GetProduct returns a single product by id.
func GetProduct(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog repository unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := repo.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				err = pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			} else {
				err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
