package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marketrow/storefront-backend/api/middleware"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
)

func customerIDFromContext(r *http.Request) (uuid.UUID, error) {
	raw := middleware.CustomerIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer id")
	}
	return id, nil
}
