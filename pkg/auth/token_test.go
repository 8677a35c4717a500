package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/marketrow/storefront-backend/pkg/config"
	"github.com/marketrow/storefront-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "storefront-test",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	customerID := uuid.New()

	signed, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		CustomerID:  customerID,
		AccountType: enums.AccountTypeB2B,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.CustomerID != customerID {
		t.Fatalf("customer id mismatch: %s", claims.CustomerID)
	}
	if claims.AccountType != enums.AccountTypeB2B {
		t.Fatalf("account type mismatch: %s", claims.AccountType)
	}
	if claims.ID == "" {
		t.Fatal("expected a JTI")
	}
}

func TestMintRejectsInvalidAccountType(t *testing.T) {
	t.Parallel()

	_, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{
		CustomerID:  uuid.New(),
		AccountType: enums.AccountType("vendor"),
	})
	if err == nil {
		t.Fatal("expected error for unknown account type")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), AccessTokenPayload{
		CustomerID:  uuid.New(),
		AccountType: enums.AccountTypeStandard,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		CustomerID:  uuid.New(),
		AccountType: enums.AccountTypeC2B,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, signed); err == nil {
		t.Fatal("expected issuer mismatch to fail validation")
	}
}
