package models

import "time"

// NotificationKind classifies a transient user-facing message.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is a single transient message. At most one is live at a time;
// a newer notification always replaces the current one.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	// AutoClose, when non-zero, dismisses the notification after the given
	// duration unless it is dismissed or replaced first.
	AutoClose time.Duration `json:"auto_close,omitempty"`
}
