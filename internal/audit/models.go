// Package audit captures key wizard actions for the department's compliance
// trail. Events are emitted from domain logic and handed to a publisher;
// audit failures never block the applicant.
package audit

import "time"

// Action names an auditable wizard event.
type Action string

const (
	ActionDraftSaved          Action = "draft_saved"
	ActionSectionCompleted    Action = "section_completed"
	ActionSubmissionAttempted Action = "submission_attempted"
	ActionSubmissionSucceeded Action = "submission_succeeded"
	ActionSubmissionFailed    Action = "submission_failed"
	ActionWizardReset         Action = "wizard_reset"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so publishers can fan out.
type Event struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	ApplicantID string    `json:"applicant_id"`
	Action      Action    `json:"action"`
	SectionID   string    `json:"section_id,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
	ClientIP    string    `json:"client_ip,omitempty"`
	Device      string    `json:"device,omitempty"`
}
