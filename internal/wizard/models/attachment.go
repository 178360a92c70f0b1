package models

import "time"

// Attachment is a user-supplied binary artifact (certificate, seal,
// signature) plus its metadata. Only the metadata survives draft
// persistence: stores strip Content on save, and anything hydrated from a
// draft comes back with MetadataOnly set so callers can prompt a re-pick
// before final submission.
type Attachment struct {
	Name           string    `json:"name"`
	SizeBytes      int64     `json:"size_bytes"`
	MIMEType       string    `json:"mime_type"`
	LastModifiedAt time.Time `json:"last_modified_at"`

	// Content holds the binary when the attachment was picked in this
	// process. Never serialized.
	Content []byte `json:"-"`

	// MetadataOnly marks an attachment rebuilt from a persisted draft,
	// whose binary is gone.
	MetadataOnly bool `json:"-"`
}

// HasContent reports whether the binary is available for encoding.
func (a *Attachment) HasContent() bool {
	return a != nil && !a.MetadataOnly && len(a.Content) > 0
}

// StripContent returns a metadata-only copy suitable for persistence.
func (a *Attachment) StripContent() *Attachment {
	if a == nil {
		return nil
	}
	return &Attachment{
		Name:           a.Name,
		SizeBytes:      a.SizeBytes,
		MIMEType:       a.MIMEType,
		LastModifiedAt: a.LastModifiedAt,
		MetadataOnly:   true,
	}
}
