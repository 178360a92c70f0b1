package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"nocflow/internal/audit"
	"nocflow/pkg/requestcontext"
)

// auditEmitter buffers audit events for the worker. Emitting never blocks
// domain logic: if the buffer is full the event is dropped and logged.
type auditEmitter struct {
	inbox  chan audit.Event
	logger *slog.Logger
}

const auditBuffer = 256

func newAuditEmitter(logger *slog.Logger) *auditEmitter {
	return &auditEmitter{
		inbox:  make(chan audit.Event, auditBuffer),
		logger: logger,
	}
}

func (e *auditEmitter) emit(ctx context.Context, applicantID string, action audit.Action, sectionID, outcome string) {
	event := audit.Event{
		ID:          uuid.NewString(),
		Timestamp:   requestcontext.Now(ctx),
		ApplicantID: applicantID,
		Action:      action,
		SectionID:   sectionID,
		Outcome:     outcome,
		RequestID:   requestcontext.RequestID(ctx),
		ClientIP:    requestcontext.ClientIP(ctx),
		Device:      requestcontext.Device(ctx),
	}
	select {
	case e.inbox <- event:
	default:
		e.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", action,
			"applicant_id", applicantID,
		)
	}
}
