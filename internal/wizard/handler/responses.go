package handler

import (
	"nocflow/internal/wizard/models"
	"nocflow/internal/wizard/preview"
)

// StateResponse is the wizard snapshot returned by GET /noc/wizard and the
// navigation endpoints.
type StateResponse struct {
	Active     models.SectionID                        `json:"active"`
	Data       map[models.SectionID]models.SectionData `json:"data"`
	Completed  map[models.SectionID]bool               `json:"completed"`
	Submitting bool                                    `json:"submitting"`
}

func stateResponse(snap models.WizardState) StateResponse {
	return StateResponse{
		Active:     snap.Active,
		Data:       snap.Data,
		Completed:  snap.Completed,
		Submitting: snap.Submitting,
	}
}

// SectionsResponse lists the fixed section schemas in display order.
type SectionsResponse struct {
	Sections []models.Section `json:"sections"`
}

// AttachmentResponse echoes the stored metadata of an accepted upload.
type AttachmentResponse struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	MIMEType  string `json:"mime_type"`
}

// PreviewResponse carries the composed confirmation view.
type PreviewResponse struct {
	Sections []preview.SectionPreview `json:"sections"`
}

// NotificationResponse wraps the live notification. AutoCloseMS is in
// milliseconds; zero means the notification stays until dismissed.
type NotificationResponse struct {
	Kind        models.NotificationKind `json:"kind"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	AutoCloseMS int64                   `json:"auto_close_ms,omitempty"`
}

func notificationResponse(n models.Notification) NotificationResponse {
	return NotificationResponse{
		Kind:        n.Kind,
		Title:       n.Title,
		Message:     n.Message,
		AutoCloseMS: n.AutoClose.Milliseconds(),
	}
}
