package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/marketrow/storefront-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	CustomerID  uuid.UUID
	AccountType enums.AccountType
	JTI         string
}

// AccessTokenClaims represents the typed JWT issued to storefront clients.
type AccessTokenClaims struct {
	CustomerID  uuid.UUID         `json:"customer_id"`
	AccountType enums.AccountType `json:"account_type"`
	jwt.RegisteredClaims
}
