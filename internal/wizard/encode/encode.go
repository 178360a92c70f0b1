// Package encode flattens all section data into the single outbound
// multipart payload accepted by the submission endpoint.
package encode

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"nocflow/internal/wizard/models"
	"nocflow/internal/wizard/registry"
	"nocflow/internal/wizard/validate"
	dErrors "nocflow/pkg/domain-errors"
)

// Payload is the encoded multipart body ready to POST.
type Payload struct {
	Body        []byte
	ContentType string
}

// Build walks every section in registry order and appends each set field to
// one flat payload keyed by field key alone. The endpoint's wire contract
// requires flat keys, so when two sections declare the same key the later
// section's value replaces the earlier one; the payload carries exactly one
// part per key. Declaration and Annexure A both declare "date" — Annexure A
// wins.
//
// The navigation gating is supposed to make an incomplete submission
// unreachable, but Build re-validates every section anyway: direct section
// jumps bypass validation, so trusting completion flags alone would let a
// jump-to-the-end applicant submit a hollow application. Metadata-only
// attachments (hydrated from a draft, binary gone) are rejected with the
// fields that need re-picking.
func Build(data map[models.SectionID]models.SectionData) (*Payload, error) {
	if err := revalidate(data); err != nil {
		return nil, err
	}

	var order []string
	values := make(map[string]models.FieldValue)
	for _, section := range registry.Sections() {
		sectionData := data[section.ID]
		for _, f := range section.Fields {
			v := sectionData[f.Key]
			if v.IsZero() {
				continue // unset optional
			}
			if _, seen := values[f.Key]; !seen {
				order = append(order, f.Key)
			}
			values[f.Key] = v
		}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, key := range order {
		v := values[key]
		if v.Attachment != nil {
			if err := writeAttachment(w, key, v.Attachment); err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode attachment")
			}
			continue
		}
		if err := w.WriteField(key, v.Text); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode field")
		}
	}
	if err := w.Close(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "finalize payload")
	}
	return &Payload{Body: buf.Bytes(), ContentType: w.FormDataContentType()}, nil
}

func revalidate(data map[models.SectionID]models.SectionData) error {
	var incomplete []string
	var repick []string
	for _, section := range registry.Sections() {
		sectionData := data[section.ID]
		if len(validate.Section(section, sectionData)) > 0 {
			incomplete = append(incomplete, section.Title)
		}
		for _, f := range section.Fields {
			v := sectionData[f.Key]
			if f.IsFile() && f.Required && v.Attachment != nil && !v.Attachment.HasContent() {
				repick = append(repick, f.Label)
			}
		}
	}
	if len(incomplete) > 0 {
		return dErrors.Newf(dErrors.CodeInvariantViolation,
			"sections incomplete: %s", strings.Join(incomplete, ", "))
	}
	if len(repick) > 0 {
		return dErrors.Newf(dErrors.CodeInvariantViolation,
			"attachments must be re-selected: %s", strings.Join(repick, ", "))
	}
	return nil
}

func writeAttachment(w *multipart.Writer, key string, a *models.Attachment) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, key, a.Name))
	contentType := a.MIMEType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(a.Content)
	return err
}
