package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promoshopcl/promoshop-backend/api/controllers"
	"github.com/promoshopcl/promoshop-backend/api/middleware"
	"github.com/promoshopcl/promoshop-backend/internal/cart"
	"github.com/promoshopcl/promoshop-backend/internal/quote"
	"github.com/promoshopcl/promoshop-backend/pkg/config"
	"github.com/promoshopcl/promoshop-backend/pkg/logger"
	"github.com/promoshopcl/promoshop-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogService controllers.CatalogService,
	cartService cart.Service,
	quoteService quote.Service,
	httpMetrics *metrics.HTTPMetrics,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogProducts(catalogService, logg))
		r.Get("/categories", controllers.CatalogCategories(catalogService, logg))
		r.Get("/suppliers", controllers.CatalogSuppliers(catalogService, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", controllers.CartFetch(cartService, logg))
		r.Post("/items", controllers.CartAddItem(cartService, logg))
		r.Patch("/items/quantity", controllers.CartUpdateQuantity(cartService, logg))
		r.Delete("/items", controllers.CartRemoveItem(cartService, logg))
		r.Delete("/", controllers.CartClear(cartService, logg))
	})

	r.Route("/api/v1/quote", func(r chi.Router) {
		r.Get("/", controllers.QuoteFetch(quoteService, logg))
		r.Post("/items", controllers.QuoteAddItem(quoteService, logg))
		r.Patch("/items/quantity", controllers.QuoteUpdateQuantity(quoteService, logg))
		r.Delete("/items", controllers.QuoteRemoveItem(quoteService, logg))
		r.Delete("/", controllers.QuoteClear(quoteService, logg))
		r.Patch("/company", controllers.QuoteSetCompanyField(quoteService, logg))
		r.Get("/document", controllers.QuoteDocument(quoteService, logg))
	})

	return r
}
