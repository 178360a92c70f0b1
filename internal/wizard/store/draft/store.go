// Package draft persists per-section wizard drafts.
//
// Drafts are a best-effort convenience: the wizard keeps working from memory
// when a save or load fails, so implementations report errors but callers are
// expected to swallow them. Attachments are reduced to metadata on save;
// anything loaded back is marked metadata-only so the UI layer can prompt a
// re-pick before submission.
package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"nocflow/internal/wizard/models"
)

// Store is the draft persistence port. Implementations are keyed by
// (applicant, section); LoadSection returns sentinel.ErrNotFound when no
// draft exists.
type Store interface {
	SaveSection(ctx context.Context, applicantID string, sectionID models.SectionID, data models.SectionData) error
	LoadSection(ctx context.Context, applicantID string, sectionID models.SectionID) (models.SectionData, error)
	ClearAll(ctx context.Context, applicantID string) error
}

// Marshal serializes section data for persistence. Attachment binaries are
// excluded by the model's JSON tags, so only metadata is written.
func Marshal(data models.SectionData) ([]byte, error) {
	persisted := make(models.SectionData, len(data))
	for k, v := range data {
		if v.Attachment != nil {
			v.Attachment = v.Attachment.StripContent()
		}
		persisted[k] = v
	}
	raw, err := json.Marshal(persisted)
	if err != nil {
		return nil, fmt.Errorf("marshal draft: %w", err)
	}
	return raw, nil
}

// Unmarshal rebuilds section data from its persisted form, marking every
// attachment metadata-only since the binary did not survive.
func Unmarshal(raw []byte) (models.SectionData, error) {
	var data models.SectionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	for k, v := range data {
		if v.Attachment != nil {
			v.Attachment.MetadataOnly = true
			data[k] = v
		}
	}
	return data, nil
}
