// Package validate checks a section's field values against its schema.
//
// The rules are deliberately weak: every required field must hold a non-empty
// value, and nothing else is checked. No email or phone format rules exist in
// the submission contract, so none are enforced here. Tightening this is an
// enhancement opportunity, not a contract change.
package validate

import "nocflow/internal/wizard/models"

// FieldError reports one field that failed validation.
type FieldError struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

const reasonRequired = "required"

// Section returns the list of field errors for a section's data. An empty
// list means the section is valid. Pure: neither argument is mutated.
//
// A metadata-only attachment satisfies a required file field here; the
// missing binary is caught at encode time, where the applicant is told to
// re-pick the file.
func Section(section models.Section, data models.SectionData) []FieldError {
	var errs []FieldError
	for _, f := range section.Fields {
		if !f.Required {
			continue
		}
		v := data[f.Key]
		if f.IsFile() {
			if v.Attachment == nil {
				errs = append(errs, FieldError{Key: f.Key, Label: f.Label, Reason: reasonRequired})
			}
			continue
		}
		if v.Text == "" {
			errs = append(errs, FieldError{Key: f.Key, Label: f.Label, Reason: reasonRequired})
		}
	}
	return errs
}
