package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/applestore-backend/api/controllers"
	"github.com/angelmondragon/applestore-backend/api/middleware"
	"github.com/angelmondragon/applestore-backend/internal/catalog"
	"github.com/angelmondragon/applestore-backend/internal/store"
	"github.com/angelmondragon/applestore-backend/pkg/config"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/redis"
)

// NewRouter wires the storefront API. backend, idempotency and gatherer
// may be nil: readiness then always passes, purchases are not deduplicated
// and /metrics is not mounted.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	st *store.Store,
	products catalog.Service,
	backend controllers.Pinger,
	idempotency redis.IdempotencyStore,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, backend))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing(st))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(st, logg))
			r.Put("/", controllers.ReplaceUsers(st, logg))
			r.Post("/", controllers.CreateUser(st, logg))
			r.Patch("/{userId}", controllers.UpdateUser(st, logg))
			r.Delete("/{userId}", controllers.DeleteUser(st, logg))
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", controllers.ListInvoices(st, logg))
			r.Put("/", controllers.ReplaceInvoices(st, logg))
			r.Post("/", controllers.CreateInvoice(st, time.Now, logg))
		})

		r.With(middleware.Idempotency(idempotency, cfg.Idempotency, logg)).
			Post("/purchases", controllers.CreatePurchase(st, products, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(products))
			r.Get("/{productId}", controllers.GetProduct(products, logg))
		})

		r.Route("/store/errors", func(r chi.Router) {
			r.Get("/", controllers.StoreErrors(st))
			r.Delete("/", controllers.ClearStoreErrors(st))
		})
	})

	return r
}
