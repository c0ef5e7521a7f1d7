package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/openbooks/openbooks/internal/adapter/http/handler"
	"github.com/openbooks/openbooks/internal/adapter/http/middleware"
	"github.com/openbooks/openbooks/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	StatementHandler *handler.StatementHandler
	EntryHandler     *handler.EntryHandler
	InvoiceHandler   *handler.InvoiceHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
	IdempotencyStore usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Customers
		r.Route("/customers/{id}", func(r chi.Router) {
			r.Get("/statement", cfg.StatementHandler.Get)
			r.Post("/entries", cfg.EntryHandler.Create)
			r.Post("/entries/bulk", cfg.EntryHandler.CreateBulk)
		})

		// Entries
		r.Route("/entries", func(r chi.Router) {
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Patch("/{id}", cfg.EntryHandler.Update)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
		})

		// Invoices
		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", cfg.InvoiceHandler.Create)
			r.Get("/", cfg.InvoiceHandler.ListByCustomer)
			r.Get("/{id}", cfg.InvoiceHandler.Get)
		})

		// PO invoices
		r.Route("/po-invoices", func(r chi.Router) {
			r.Post("/", cfg.InvoiceHandler.CreatePO)
			r.Get("/", cfg.InvoiceHandler.ListPOByCustomer)
			r.Get("/{id}", cfg.InvoiceHandler.GetPO)
		})
	})

	return r
}
