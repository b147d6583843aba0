package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"promo-boost/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc      port.CampaignUseCase
	logger   *slog.Logger
	validate *validator.Validate
	metrics  *metrics
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Metrics are
// registered on a registry owned by the handler and exposed at /metrics.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	reg := prometheus.NewRegistry()
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: newValidator(),
		metrics:  newMetrics(reg),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.middleware)

	r.Handle("/metrics", h.metrics.handler(reg))
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/quotes", h.handleQuote)
		r.Get("/targeting/options", h.handleTargetingOptions)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Post("/{id}/review", h.handleReviewCampaign)
			r.Post("/{id}/payment", h.handleRecordPayment)
			r.Post("/{id}/activate", h.handleActivateCampaign)
		})

		r.Get("/ads/active", h.handleActiveAds)
		r.Post("/ads/{id}/impression", h.handleImpression)
		r.Post("/ads/{id}/click", h.handleClick)

		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/admin/campaigns/export", h.handleExportCampaigns)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
