package models

// WizardState is the single mutable record of an applicant's progress through
// the wizard. It is owned exclusively by the wizard service; validation,
// preview, and encoding receive copies and must not mutate them.
type WizardState struct {
	Active     SectionID                 `json:"active"`
	Data       map[SectionID]SectionData `json:"data"`
	Completed  map[SectionID]bool        `json:"completed"`
	Submitting bool                      `json:"submitting"`
}

// NewWizardState returns an empty state positioned at the given first section.
func NewWizardState(first SectionID) *WizardState {
	return &WizardState{
		Active:    first,
		Data:      make(map[SectionID]SectionData),
		Completed: make(map[SectionID]bool),
	}
}

// SectionData returns the mutable data map for a section, allocating it on
// first use.
func (s *WizardState) SectionData(id SectionID) SectionData {
	d, ok := s.Data[id]
	if !ok {
		d = make(SectionData)
		s.Data[id] = d
	}
	return d
}

// IsCompleted reports whether a section passed a validated save.
func (s *WizardState) IsCompleted(id SectionID) bool { return s.Completed[id] }

// Reset returns the state to its initial empty shape at the first section.
// Used after a successful submission.
func (s *WizardState) Reset(first SectionID) {
	s.Active = first
	s.Data = make(map[SectionID]SectionData)
	s.Completed = make(map[SectionID]bool)
	s.Submitting = false
}

// Snapshot deep-copies the state for read-only consumers.
func (s *WizardState) Snapshot() WizardState {
	out := WizardState{
		Active:     s.Active,
		Data:       make(map[SectionID]SectionData, len(s.Data)),
		Completed:  make(map[SectionID]bool, len(s.Completed)),
		Submitting: s.Submitting,
	}
	for id, d := range s.Data {
		out.Data[id] = d.Clone()
	}
	for id, done := range s.Completed {
		out.Completed[id] = done
	}
	return out
}
