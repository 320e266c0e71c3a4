package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sestevao/marketing-analytics/internal/core/port"
	"github.com/sestevao/marketing-analytics/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecases, a logger for structured logging and the
// request metrics. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	accounts port.AccountUseCase
	auth     port.AuthUseCase
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Auth endpoints,
// the health check and the prometheus endpoint are public; everything else
// requires a bearer token.
func NewHandler(accounts port.AccountUseCase, auth port.AuthUseCase, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{accounts: accounts, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(m.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/dashboard", h.handleDashboard)
			r.Route("/ad-accounts", func(r chi.Router) {
				r.Get("/", h.handleListAccounts)
				r.Post("/", h.handleCreateAccount)
				r.Delete("/{id}", h.handleDeleteAccount)
				r.Get("/{id}/analytics", h.handleAccountAnalytics)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
