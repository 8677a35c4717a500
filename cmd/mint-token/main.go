package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/marketrow/storefront-backend/pkg/auth"
	"github.com/marketrow/storefront-backend/pkg/config"
	"github.com/marketrow/storefront-backend/pkg/enums"
	"github.com/marketrow/storefront-backend/pkg/logger"
)

// mint-token issues a signed access token for local development and API
// exploration. It never touches the database; the customer id is taken at
// face value.
func main() {
	logg := logger.New(logger.Options{ServiceName: "mint-token"})

	_ = godotenv.Load()

	customerID := flag.String("customer-id", "", "customer uuid (random when empty)")
	accountType := flag.String("account-type", string(enums.AccountTypeStandard), "account type: standard|b2b|c2b")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	id := uuid.New()
	if *customerID != "" {
		id, err = uuid.Parse(*customerID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -customer-id: %v\n", err)
			os.Exit(1)
		}
	}

	at := enums.AccountType(*accountType)
	if !at.IsValid() {
		fmt.Fprintf(os.Stderr, "invalid -account-type %q\n", *accountType)
		os.Exit(1)
	}

	token, err := auth.MintAccessToken(cfg.JWT, time.Now(), auth.AccessTokenPayload{
		CustomerID:  id,
		AccountType: at,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to mint token", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
