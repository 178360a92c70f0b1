package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from a channel and publishes them, keeping
// the emit path in domain logic non-blocking. Publish failures are logged
// and dropped: the audit trail is best-effort from the applicant's point of
// view.
type Worker struct {
	publisher Publisher
	inbox     <-chan Event
	logger    *slog.Logger
}

func NewWorker(publisher Publisher, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{publisher: publisher, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.publisher.Publish(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to publish audit event",
					"action", event.Action,
					"applicant_id", event.ApplicantID,
					"error", err.Error(),
				)
			}
		}
	}
}
