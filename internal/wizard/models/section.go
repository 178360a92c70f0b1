package models

// SectionID names one of the fixed wizard sections.
type SectionID string

// Section is a named, ordered group of related form fields.
type Section struct {
	ID     SectionID `json:"id"`
	Title  string    `json:"title"`
	Order  int       `json:"order"`
	Fields []Field   `json:"fields"`
}

// Field looks up a field schema by key.
func (s Section) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// FieldValue holds one field's value: text for every non-file kind, an
// attachment for file fields. The empty value denotes "unset".
type FieldValue struct {
	Text       string      `json:"text,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// TextValue wraps a plain string value.
func TextValue(s string) FieldValue { return FieldValue{Text: s} }

// AttachmentValue wraps an attachment value.
func AttachmentValue(a *Attachment) FieldValue { return FieldValue{Attachment: a} }

// IsZero reports whether the field is unset.
func (v FieldValue) IsZero() bool {
	return v.Text == "" && v.Attachment == nil
}

// SectionData maps field keys to their current values for one section.
type SectionData map[string]FieldValue

// Clone returns a shallow-safe copy: the map is copied, attachments are
// copied by pointer since they are treated as immutable once set.
func (d SectionData) Clone() SectionData {
	if d == nil {
		return nil
	}
	out := make(SectionData, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
