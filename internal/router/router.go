package router

import (
	"net/http"

	"catalog-service/internal/handler"
	"catalog-service/internal/metrics"
	"catalog-service/internal/middleware"
	"catalog-service/internal/model"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Review   *handler.ReviewHandler
	Health   *handler.HealthHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// When m is nil the /metrics route and request instrumentation are left out.
func New(h Handlers, m *metrics.Metrics, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// RequestID before Logging; Recovery inside Logging.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.CORS)
	r.Use(chimiddleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handler.WriteError(w, model.ErrRouteNotFound, "Route not found", logger)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		handler.WriteError(w, model.ErrMethodNotAllowed, "Method not allowed", logger)
	})

	r.Get("/health", h.Health.Check)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Category.List)
		r.Post("/", h.Category.Create)
		r.Get("/{id}", h.Category.GetByID)
		r.Put("/{id}", h.Category.Update)
		r.Delete("/{id}", h.Category.Delete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.Product.List)
		r.Post("/", h.Product.Create)
		r.Get("/{id}", h.Product.GetByID)
		r.Put("/{id}", h.Product.Update)
		r.Delete("/{id}", h.Product.Delete)
		r.Post("/{id}/review", h.Review.Create)
	})

	return r
}
