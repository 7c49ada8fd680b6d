// Package httptransport assembles the HTTP surface: middleware stack, public
// read endpoints, authenticated mutation endpoints, and operational routes.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"attestry/internal/platform/health"
	"attestry/internal/platform/middleware"
	"attestry/internal/registry/handler"
)

// NewRouter wires all endpoints with middleware. Mutations sit behind bearer
// token auth so the acting address is always in the request context; reads
// and operational probes stay public.
func NewRouter(
	h *handler.Handler,
	healthHandler *health.Handler,
	validator middleware.TokenValidator,
	latency middleware.LatencyObserver,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(latency))

	healthHandler.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		h.RegisterPublic(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, logger))
		r.Use(middleware.ContentTypeJSON)
		h.RegisterProtected(r)
	})

	return r
}
