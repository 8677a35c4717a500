package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/marketrow/storefront-backend/api/responses"
	"github.com/marketrow/storefront-backend/pkg/config"
	"github.com/marketrow/storefront-backend/pkg/db"
	pkgerrors "github.com/marketrow/storefront-backend/pkg/errors"
	"github.com/marketrow/storefront-backend/pkg/logger"
)

const readinessProbeTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies every hard dependency before reporting ready. A nil
// pinger is treated as "not wired" and skipped rather than failed.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessProbeTimeout)
		defer cancel()

		checks := map[string]string{}
		failed := false

		probe := func(name string, p db.Pinger) {
			if p == nil {
				checks[name] = "skipped"
				return
			}
			if err := p.Ping(ctx); err != nil {
				checks[name] = "down"
				failed = true
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "readiness probe failed", err)
				}
				return
			}
			checks[name] = "up"
		}

		probe("postgres", dbP)
		probe("redis", redisP)

		if failed {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "dependency not ready").WithDetails(map[string]any{"checks": checks}))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
