// Package registry holds the static catalog of wizard sections for the NOC
// permit application. The catalog is fixed at compile time: eight sections in
// a fixed order, each with its field schema. Nothing here mutates at runtime.
package registry

import "nocflow/internal/wizard/models"

// Section IDs, in registry order.
const (
	SectionProjectInformation models.SectionID = "project-information"
	SectionProductionHouse    models.SectionID = "production-house"
	SectionApplicantDetails   models.SectionID = "applicant-details"
	SectionCreativeCast       models.SectionID = "creative-cast"
	SectionTechnical          models.SectionID = "technical-requirements"
	SectionLegalBranding      models.SectionID = "legal-branding"
	SectionDeclaration        models.SectionID = "declaration"
	SectionAnnexureA          models.SectionID = "annexure-a"
)

// Sections returns the full ordered catalog. Callers receive a fresh slice so
// the catalog cannot be reordered, but the Section values share the underlying
// field slices and must be treated as read-only.
func Sections() []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	return out
}

// Get looks up a section by ID.
func Get(id models.SectionID) (models.Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return models.Section{}, false
}

// First returns the ID of the first section in registry order.
func First() models.SectionID { return sections[0].ID }

// Last returns the ID of the last section in registry order.
func Last() models.SectionID { return sections[len(sections)-1].ID }

// Next returns the section following id. ok is false past the last section
// or for an unknown id.
func Next(id models.SectionID) (models.SectionID, bool) {
	for i, s := range sections {
		if s.ID == id {
			if i+1 < len(sections) {
				return sections[i+1].ID, true
			}
			return "", false
		}
	}
	return "", false
}

// Prev returns the section preceding id. ok is false before the first section
// or for an unknown id.
func Prev(id models.SectionID) (models.SectionID, bool) {
	for i, s := range sections {
		if s.ID == id {
			if i > 0 {
				return sections[i-1].ID, true
			}
			return "", false
		}
	}
	return "", false
}

// IsLast reports whether id is the final section, where "Save & Continue"
// triggers submission instead of advancing.
func IsLast(id models.SectionID) bool { return id == Last() }
