// Package httptransport assembles the HTTP surface: shared middleware,
// operational endpoints, and the mounted wizard routes.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nocflow/internal/platform/metrics"
	"nocflow/internal/platform/middleware"
	wizardhandler "nocflow/internal/wizard/handler"
	"nocflow/pkg/platform/httputil"
)

// requestTimeout bounds every request, sized to outlive the submission
// client's own 60s deadline.
const requestTimeout = 90 * time.Second

// Deps carries everything the router mounts.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Wizard  *wizardhandler.Handler

	// HealthCheck pings backing stores; nil means process liveness only.
	HealthCheck func(ctx context.Context) error
}

// NewRouter wires the middleware chain and all endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Latency(d.Metrics))

	r.Get("/healthz", healthHandler(d.HealthCheck))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	d.Wizard.Register(r)
	return r
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
