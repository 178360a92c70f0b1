// Package service owns the wizard navigation state machine. One Wizard
// exists per applicant; the Service hydrates it from persisted drafts on
// first touch and keeps it in memory for the life of the process.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"nocflow/internal/audit"
	wizmetrics "nocflow/internal/wizard/metrics"
	"nocflow/internal/wizard/registry"
	"nocflow/internal/wizard/store/draft"
	"nocflow/internal/wizard/submit"
	"nocflow/pkg/platform/sentinel"
)

// Service manages per-applicant wizards.
type Service struct {
	mu      sync.Mutex
	wizards map[string]*Wizard

	drafts    draft.Store
	submitter submit.Submitter
	logger    *slog.Logger
	metrics   *wizmetrics.Metrics
	emitter   *auditEmitter
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics attaches wizard metrics.
func WithMetrics(m *wizmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New builds a wizard service over a draft store and a submission client.
func New(drafts draft.Store, submitter submit.Submitter, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		wizards:   make(map[string]*Wizard),
		drafts:    drafts,
		submitter: submitter,
		logger:    logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.emitter = newAuditEmitter(logger)
	return s
}

// Events exposes the audit event stream for a worker to drain.
func (s *Service) Events() <-chan audit.Event {
	return s.emitter.inbox
}

// Wizard returns the applicant's wizard, creating and hydrating it on first
// use. Hydration loads each section's persisted draft; load failures are
// swallowed so a broken draft never blocks the applicant (the wizard simply
// starts that section empty).
func (s *Service) Wizard(ctx context.Context, applicantID string) *Wizard {
	s.mu.Lock()
	if w, ok := s.wizards[applicantID]; ok {
		s.mu.Unlock()
		return w
	}
	w := newWizard(s, applicantID)
	s.wizards[applicantID] = w
	s.metrics.SetActiveWizards(len(s.wizards))
	s.mu.Unlock()

	w.hydrate(ctx)
	return w
}

func (w *Wizard) hydrate(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, section := range registry.Sections() {
		data, err := w.svc.drafts.LoadSection(ctx, w.applicantID, section.ID)
		if errors.Is(err, sentinel.ErrNotFound) {
			continue
		}
		if err != nil {
			// Drafts are best-effort; a broken one starts the section empty.
			w.svc.logger.DebugContext(ctx, "draft load failed",
				"section", section.ID,
				"error", err.Error(),
			)
			continue
		}
		w.state.Data[section.ID] = data
	}
}
