package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the transport-level Prometheus metrics for the application.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all transport metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nocflow_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// ObserveRequest records one served request. Nil-safe so tests can run
// without registering collectors.
func (m *Metrics) ObserveRequest(route, method, status string, seconds float64) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, method, status).Observe(seconds)
	}
}
