// Package metrics holds the Prometheus instruments for the wizard domain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the wizard counters. A nil *Metrics disables recording,
// so tests can run without touching the global registry.
type Metrics struct {
	DraftsSaved        prometheus.Counter
	ValidationFailures prometheus.Counter
	Submissions        *prometheus.CounterVec
	SubmissionDuration prometheus.Histogram
	ActiveWizards      prometheus.Gauge
}

// New creates and registers all wizard metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		DraftsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nocflow_drafts_saved_total",
			Help: "Total number of section drafts persisted",
		}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nocflow_validation_failures_total",
			Help: "Total number of Save & Continue attempts blocked by validation",
		}),
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nocflow_submissions_total",
			Help: "Total number of submission attempts by outcome",
		}, []string{"outcome"}),
		SubmissionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "nocflow_submission_duration_seconds",
			Help:    "Latency of outbound submission requests",
			Buckets: prometheus.DefBuckets,
		}),
		ActiveWizards: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "nocflow_active_wizards",
			Help: "Number of wizard sessions currently held in memory",
		}),
	}
}

// IncDraftsSaved increments the drafts-saved counter.
func (m *Metrics) IncDraftsSaved() {
	if m != nil {
		m.DraftsSaved.Inc()
	}
}

// IncValidationFailures increments the blocked-save counter.
func (m *Metrics) IncValidationFailures() {
	if m != nil {
		m.ValidationFailures.Inc()
	}
}

// IncSubmissions increments the submissions counter for an outcome.
func (m *Metrics) IncSubmissions(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}

// ObserveSubmissionDuration records one submission round-trip.
func (m *Metrics) ObserveSubmissionDuration(seconds float64) {
	if m != nil {
		m.SubmissionDuration.Observe(seconds)
	}
}

// SetActiveWizards records the current session count.
func (m *Metrics) SetActiveWizards(n int) {
	if m != nil {
		m.ActiveWizards.Set(float64(n))
	}
}
