package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketrow/storefront-backend/api/controllers"
	"github.com/marketrow/storefront-backend/api/middleware"
	"github.com/marketrow/storefront-backend/internal/catalog"
	checkoutsvc "github.com/marketrow/storefront-backend/internal/checkout"
	"github.com/marketrow/storefront-backend/internal/orders"
	"github.com/marketrow/storefront-backend/pkg/config"
	"github.com/marketrow/storefront-backend/pkg/db"
	"github.com/marketrow/storefront-backend/pkg/logger"
	"github.com/marketrow/storefront-backend/pkg/metrics"
	"github.com/marketrow/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	catalogRepo *catalog.Repository,
	ordersRepo orders.Repository,
	checkoutService checkoutsvc.Service,
	checkoutMetrics *metrics.CheckoutMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
		r.Route("/v1/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogRepo, logg))
			r.Get("/{productId}", controllers.GetProduct(catalogRepo, logg))
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RateLimit(cfg.RateLimit, redisClient, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/v1/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(ordersRepo, logg))
			r.Get("/{orderId}", controllers.GetOrder(ordersRepo, logg))
		})

		r.Post("/v1/quotes", controllers.Quote(checkoutService, checkoutMetrics, logg))
		r.Post("/v1/checkout", controllers.Checkout(checkoutService, checkoutMetrics, logg))
	})

	return r
}
