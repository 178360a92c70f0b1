// Package preview builds the read-only confirmation view shown before
// submission.
package preview

import (
	"nocflow/internal/wizard/models"
	"nocflow/internal/wizard/registry"
)

// truncateAt is the display length beyond which values are shortened, with
// the full value kept alongside for the expand affordance.
const truncateAt = 60

// placeholder values are treated the same as empty and filtered out.
const placeholder = "N/A"

// FieldPreview is one rendered field. When Truncated is set, Value holds the
// shortened form and Full the complete one.
type FieldPreview struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Full      string `json:"full,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

// SectionPreview groups the rendered fields of one section.
type SectionPreview struct {
	SectionTitle string         `json:"section_title"`
	Fields       []FieldPreview `json:"fields"`
}

// Compose renders all sections in registry order, skipping unset fields and
// placeholder values. Attachments render as their file name. Pure and
// idempotent: data is never mutated and repeated calls yield equal output.
func Compose(data map[models.SectionID]models.SectionData) []SectionPreview {
	var out []SectionPreview
	for _, section := range registry.Sections() {
		sectionData := data[section.ID]
		var fields []FieldPreview
		for _, f := range section.Fields {
			v := sectionData[f.Key]
			rendered, ok := render(v)
			if !ok {
				continue
			}
			fields = append(fields, rendered.withLabel(f.Label))
		}
		if len(fields) > 0 {
			out = append(out, SectionPreview{SectionTitle: section.Title, Fields: fields})
		}
	}
	return out
}

func render(v models.FieldValue) (FieldPreview, bool) {
	if v.Attachment != nil {
		return FieldPreview{Value: v.Attachment.Name}, true
	}
	if v.Text == "" || v.Text == placeholder {
		return FieldPreview{}, false
	}
	runes := []rune(v.Text)
	if len(runes) > truncateAt {
		return FieldPreview{
			Value:     string(runes[:truncateAt]) + "…",
			Full:      v.Text,
			Truncated: true,
		}, true
	}
	return FieldPreview{Value: v.Text}, true
}

func (p FieldPreview) withLabel(label string) FieldPreview {
	p.Label = label
	return p
}
