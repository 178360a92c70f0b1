package models

// FieldKind identifies how a field is captured and encoded.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindSelect   FieldKind = "select"
	KindTextarea FieldKind = "textarea"
	KindFile     FieldKind = "file"
	KindDate     FieldKind = "date"
	KindDateTime FieldKind = "datetime"
	KindNumber   FieldKind = "number"
)

// Field describes a single form field within a section. Keys are unique
// within a section but not across sections; the submission payload is flat,
// so cross-section key reuse collides there (see the encode package).
type Field struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	// Options is populated for select fields only.
	Options []string `json:"options,omitempty"`
}

// IsFile reports whether the field captures an attachment rather than text.
func (f Field) IsFile() bool { return f.Kind == KindFile }
