package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/DanielPopoola/northborne-storefront/internal/interfaces/rest/middleware"
)

type RouteOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Routes builds the full HTTP handler, middleware included.
func (h *Handlers) Routes(opts RouteOptions, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	if len(h.openAPIDoc) > 0 {
		r.Get("/openapi.json", h.OpenAPI)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(opts.RequestTimeout))
		r.Post("/create-checkout-session", h.CreateCheckoutSession)
		r.Post("/create-cimb-payment", h.CreateCimbPayment)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return otelhttp.NewHandler(r, "storefront")
}
