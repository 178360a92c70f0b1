package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"nocflow/internal/audit"
	"nocflow/internal/wizard/encode"
	"nocflow/internal/wizard/models"
	"nocflow/internal/wizard/notify"
	"nocflow/internal/wizard/preview"
	"nocflow/internal/wizard/registry"
	"nocflow/internal/wizard/submit"
	"nocflow/internal/wizard/validate"
	dErrors "nocflow/pkg/domain-errors"
)

// successAutoClose is how long the post-submission success banner stays up
// before dismissing itself.
const successAutoClose = 8 * time.Second

// Wizard is one applicant's navigation state machine. It is the sole owner
// of its WizardState; every public method serializes through the mutex and
// hands out snapshots only.
type Wizard struct {
	mu          sync.Mutex
	svc         *Service
	applicantID string
	state       *models.WizardState
	notifier    *notify.Controller
}

func newWizard(svc *Service, applicantID string) *Wizard {
	return &Wizard{
		svc:         svc,
		applicantID: applicantID,
		state:       models.NewWizardState(registry.First()),
		notifier:    notify.NewController(),
	}
}

// Snapshot returns a deep copy of the current state.
func (w *Wizard) Snapshot() models.WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Snapshot()
}

// Notification returns the live notification, if any.
func (w *Wizard) Notification() *models.Notification {
	return w.notifier.Current()
}

// DismissNotification clears the live notification.
func (w *Wizard) DismissNotification() {
	w.notifier.Dismiss()
}

// UpdateField records a field edit. Edits mutate in-memory state only; the
// draft store is touched on Save & Continue, not per keystroke.
func (w *Wizard) UpdateField(sectionID models.SectionID, key string, value models.FieldValue) error {
	section, ok := registry.Get(sectionID)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "unknown section")
	}
	field, ok := section.Field(key)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "unknown field")
	}
	if field.IsFile() && value.Attachment == nil && value.Text != "" {
		return dErrors.New(dErrors.CodeBadRequest, "file field expects an attachment")
	}
	if !field.IsFile() && value.Attachment != nil {
		return dErrors.New(dErrors.CodeBadRequest, "field does not accept attachments")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	data := w.state.SectionData(sectionID)
	if value.IsZero() {
		delete(data, key)
		return nil
	}
	data[key] = value
	return nil
}

// GoBack moves to the previous section unconditionally. No validation, no
// persistence. At the first section it is a no-op.
func (w *Wizard) GoBack() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if prev, ok := registry.Prev(w.state.Active); ok {
		w.state.Active = prev
	}
}

// JumpTo moves directly to any section, bypassing validation entirely. The
// button enforces validation and the tab click does not; that asymmetry is a
// deliberate free-browse affordance carried over from the original flow.
// Submission itself stays safe because the encoder re-validates everything.
func (w *Wizard) JumpTo(sectionID models.SectionID) error {
	if _, ok := registry.Get(sectionID); !ok {
		return dErrors.New(dErrors.CodeNotFound, "unknown section")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Active = sectionID
	return nil
}

// Preview composes the read-only confirmation view over a snapshot of the
// current data.
func (w *Wizard) Preview() []preview.SectionPreview {
	snap := w.Snapshot()
	return preview.Compose(snap.Data)
}

// ContinueResult reports what Save & Continue did.
type ContinueResult struct {
	// FieldErrors is non-empty when validation blocked the transition.
	FieldErrors []validate.FieldError `json:"field_errors,omitempty"`
	// Advanced is set when the wizard moved to the next section.
	Advanced bool `json:"advanced"`
	// Submitted is set when the final section triggered a submission;
	// Outcome then carries its classification.
	Submitted bool             `json:"submitted"`
	Outcome   submit.Outcome   `json:"outcome,omitempty"`
	Active    models.SectionID `json:"active"`
}

// SaveAndContinue validates the active section. On failure it emits a
// warning notification and stays put. On success it persists the section
// draft (best-effort), marks the section completed, and either advances or,
// from the last section, submits the whole application.
func (w *Wizard) SaveAndContinue(ctx context.Context) (ContinueResult, error) {
	w.mu.Lock()

	active := w.state.Active
	section, ok := registry.Get(active)
	if !ok {
		w.mu.Unlock()
		return ContinueResult{}, dErrors.New(dErrors.CodeInternal, "active section missing from registry")
	}

	data := w.state.SectionData(active).Clone()
	if errs := validate.Section(section, data); len(errs) > 0 {
		w.mu.Unlock()
		w.svc.metrics.IncValidationFailures()
		w.notifier.Show(models.Notification{
			Kind:    models.NotificationWarning,
			Title:   "Missing required fields",
			Message: summarizeMissing(errs),
		})
		return ContinueResult{FieldErrors: errs, Active: active}, nil
	}

	w.persistSection(ctx, active, data)
	w.state.Completed[active] = true
	w.svc.emitter.emit(ctx, w.applicantID, audit.ActionSectionCompleted, string(active), "")

	if !registry.IsLast(active) {
		next, _ := registry.Next(active)
		w.state.Active = next
		w.mu.Unlock()
		return ContinueResult{Advanced: true, Active: next}, nil
	}

	return w.submitLocked(ctx)
}

// persistSection writes one section's draft, swallowing failures: storage is
// a convenience and must never interrupt navigation.
func (w *Wizard) persistSection(ctx context.Context, id models.SectionID, data models.SectionData) {
	if err := w.svc.drafts.SaveSection(ctx, w.applicantID, id, data); err != nil {
		w.svc.logger.DebugContext(ctx, "draft save failed",
			"section", id,
			"error", err.Error(),
		)
		return
	}
	w.svc.metrics.IncDraftsSaved()
	w.svc.emitter.emit(ctx, w.applicantID, audit.ActionDraftSaved, string(id), "")
}

// submitLocked runs the submission leg of Save & Continue. Called with the
// mutex held; the Submitting flag is set before the lock is released so a
// concurrent second click cannot dispatch a duplicate request.
func (w *Wizard) submitLocked(ctx context.Context) (ContinueResult, error) {
	if w.state.Submitting {
		w.mu.Unlock()
		return ContinueResult{}, dErrors.New(dErrors.CodeConflict, "submission already in progress")
	}
	w.state.Submitting = true
	snap := w.state.Snapshot()
	w.mu.Unlock()

	result, err := w.doSubmit(ctx, snap)

	w.mu.Lock()
	w.state.Submitting = false
	if err != nil {
		w.mu.Unlock()
		return ContinueResult{}, err
	}
	w.applyOutcomeLocked(ctx, result)
	active := w.state.Active
	w.mu.Unlock()

	return ContinueResult{Submitted: true, Outcome: result.Outcome, Active: active}, nil
}

func (w *Wizard) doSubmit(ctx context.Context, snap models.WizardState) (submit.Result, error) {
	w.svc.emitter.emit(ctx, w.applicantID, audit.ActionSubmissionAttempted, "", "")

	payload, err := encode.Build(snap.Data)
	if err != nil {
		w.notifier.Show(models.Notification{
			Kind:    models.NotificationWarning,
			Title:   "Application incomplete",
			Message: dErrors.MessageOf(err),
		})
		return submit.Result{}, err
	}

	start := time.Now()
	result, err := w.svc.submitter.Submit(ctx, payload)
	w.svc.metrics.ObserveSubmissionDuration(time.Since(start).Seconds())
	if err != nil {
		// Transport failure: nothing reached the endpoint's decision logic.
		w.svc.metrics.IncSubmissions(string(submit.OutcomeFailed))
		w.svc.emitter.emit(ctx, w.applicantID, audit.ActionSubmissionFailed, "", "transport")
		w.notifier.Show(models.Notification{
			Kind:    models.NotificationError,
			Title:   "Submission failed",
			Message: "could not reach the submission service, please try again",
		})
		return submit.Result{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "submission service unreachable")
	}
	w.svc.metrics.IncSubmissions(string(result.Outcome))
	return result, nil
}

// applyOutcomeLocked translates a classified submission result into state
// and notification changes. Only success resets the wizard; every failure
// preserves state so the applicant can resubmit without re-entering data.
func (w *Wizard) applyOutcomeLocked(ctx context.Context, result submit.Result) {
	switch result.Outcome {
	case submit.OutcomeSuccess:
		if err := w.svc.drafts.ClearAll(ctx, w.applicantID); err != nil {
			w.svc.logger.DebugContext(ctx, "draft clear failed", "error", err.Error())
		}
		w.state.Reset(registry.First())
		w.svc.emitter.emit(ctx, w.applicantID, audit.ActionSubmissionSucceeded, "", string(result.Outcome))
		w.svc.emitter.emit(ctx, w.applicantID, audit.ActionWizardReset, "", "")
		message := "Your NOC application has been submitted."
		if result.Receipt != nil && result.Receipt.ApplicationID != "" {
			message = "Your NOC application has been submitted. Reference: " + result.Receipt.ApplicationID
		}
		w.notifier.Show(models.Notification{
			Kind:      models.NotificationSuccess,
			Title:     "Application submitted",
			Message:   message,
			AutoClose: successAutoClose,
		})
	case submit.OutcomeSessionExpired:
		w.svc.emitter.emit(ctx, w.applicantID, audit.ActionSubmissionFailed, "", string(result.Outcome))
		w.notifier.Show(models.Notification{
			Kind:    models.NotificationError,
			Title:   "Session expired",
			Message: result.Message,
		})
	case submit.OutcomeRejected:
		w.svc.emitter.emit(ctx, w.applicantID, audit.ActionSubmissionFailed, "", string(result.Outcome))
		w.notifier.Show(models.Notification{
			Kind:    models.NotificationError,
			Title:   "Application rejected",
			Message: result.Message,
		})
	default:
		w.svc.emitter.emit(ctx, w.applicantID, audit.ActionSubmissionFailed, "", string(result.Outcome))
		w.notifier.Show(models.Notification{
			Kind:    models.NotificationError,
			Title:   "Submission failed",
			Message: result.Message,
		})
	}
}

// summarizeMissing names up to three missing fields, the way the form's
// banner lists them.
func summarizeMissing(errs []validate.FieldError) string {
	labels := make([]string, 0, 3)
	for _, e := range errs {
		if len(labels) == 3 {
			break
		}
		labels = append(labels, e.Label)
	}
	msg := "Please fill: " + strings.Join(labels, ", ")
	if extra := len(errs) - len(labels); extra > 0 {
		msg += fmt.Sprintf(" and %d more", extra)
	}
	return msg
}
