package registry

import "nocflow/internal/wizard/models"

var yesNo = []string{"Yes", "No"}

// sections is the authoritative catalog. Field keys are unique within a
// section only; Declaration and Annexure A both declare "date", which the
// flat submission payload resolves in favor of Annexure A (later in order).
// The remote endpoint requires flat keys, so this collision is accepted and
// tested rather than namespaced away.
var sections = []models.Section{
	{
		ID:    SectionProjectInformation,
		Title: "Project Information",
		Order: 1,
		Fields: []models.Field{
			{Key: "title", Label: "Title", Kind: models.KindText, Required: true},
			{Key: "language", Label: "Language", Kind: models.KindSelect, Required: true,
				Options: []string{"Hindi", "Bhojpuri", "Maithili", "Magahi", "English", "Other"}},
			{Key: "genre", Label: "Genre", Kind: models.KindSelect, Required: true,
				Options: []string{"Feature Film", "Documentary", "Web Series", "TV Serial", "Short Film", "Music Video"}},
			{Key: "synopsis", Label: "Synopsis", Kind: models.KindTextarea, Required: true},
			{Key: "durationMinutes", Label: "Duration (minutes)", Kind: models.KindNumber, Required: true},
			{Key: "shootStartDate", Label: "Shoot Start Date", Kind: models.KindDate, Required: true},
			{Key: "shootEndDate", Label: "Shoot End Date", Kind: models.KindDate, Required: true},
		},
	},
	{
		ID:    SectionProductionHouse,
		Title: "Production House Details",
		Order: 2,
		Fields: []models.Field{
			{Key: "productionHouseName", Label: "Production House Name", Kind: models.KindText, Required: true},
			{Key: "registrationNumber", Label: "Registration Number", Kind: models.KindText, Required: true},
			{Key: "registeredAddress", Label: "Registered Address", Kind: models.KindTextarea, Required: true},
			{Key: "contactEmail", Label: "Contact Email", Kind: models.KindText, Required: true},
			{Key: "contactPhone", Label: "Contact Phone", Kind: models.KindText, Required: true},
			{Key: "registrationCertificate", Label: "Registration Certificate", Kind: models.KindFile, Required: true},
		},
	},
	{
		ID:    SectionApplicantDetails,
		Title: "Applicant Details",
		Order: 3,
		Fields: []models.Field{
			{Key: "applicantName", Label: "Applicant Name", Kind: models.KindText, Required: true},
			{Key: "designation", Label: "Designation", Kind: models.KindText, Required: true},
			{Key: "applicantEmail", Label: "Applicant Email", Kind: models.KindText, Required: true},
			{Key: "applicantPhone", Label: "Applicant Phone", Kind: models.KindText, Required: true},
			{Key: "alternatePhone", Label: "Alternate Phone", Kind: models.KindText, Required: false},
			{Key: "idProof", Label: "ID Proof", Kind: models.KindFile, Required: true},
		},
	},
	{
		ID:    SectionCreativeCast,
		Title: "Creative & Cast",
		Order: 4,
		Fields: []models.Field{
			{Key: "directorName", Label: "Director Name", Kind: models.KindText, Required: true},
			{Key: "producerName", Label: "Producer Name", Kind: models.KindText, Required: true},
			{Key: "mainCast", Label: "Main Cast", Kind: models.KindTextarea, Required: true},
			{Key: "crewCount", Label: "Crew Count", Kind: models.KindNumber, Required: true},
			{Key: "internationalCrew", Label: "International Crew Involved", Kind: models.KindSelect, Required: true, Options: yesNo},
			{Key: "castRemarks", Label: "Cast Remarks", Kind: models.KindTextarea, Required: false},
		},
	},
	{
		ID:    SectionTechnical,
		Title: "Technical Requirements",
		Order: 5,
		Fields: []models.Field{
			{Key: "equipmentDetails", Label: "Equipment Details", Kind: models.KindTextarea, Required: true},
			{Key: "droneUsage", Label: "Drone Usage", Kind: models.KindSelect, Required: true, Options: yesNo},
			{Key: "animalsInvolved", Label: "Animals Involved", Kind: models.KindSelect, Required: true, Options: yesNo},
			{Key: "fireOrBlastingScenes", Label: "Fire / Blasting Scenes", Kind: models.KindSelect, Required: true, Options: yesNo},
			{Key: "securityRequired", Label: "Police Security Required", Kind: models.KindSelect, Required: true, Options: yesNo},
			{Key: "powerRequirement", Label: "Power Requirement", Kind: models.KindText, Required: false},
		},
	},
	{
		ID:    SectionLegalBranding,
		Title: "Legal & Branding",
		Order: 6,
		Fields: []models.Field{
			{Key: "insuranceDetails", Label: "Insurance Details", Kind: models.KindTextarea, Required: true},
			{Key: "inFilmBranding", Label: "In-film Branding", Kind: models.KindSelect, Required: true, Options: yesNo},
			{Key: "brandDetails", Label: "Brand Details", Kind: models.KindTextarea, Required: false},
			{Key: "indemnityAccepted", Label: "Indemnity Undertaking Accepted", Kind: models.KindSelect, Required: true, Options: yesNo},
			{Key: "litigationPending", Label: "Litigation Pending", Kind: models.KindSelect, Required: true, Options: yesNo},
		},
	},
	{
		ID:    SectionDeclaration,
		Title: "Declaration",
		Order: 7,
		Fields: []models.Field{
			{Key: "declarantName", Label: "Declarant Name", Kind: models.KindText, Required: true},
			{Key: "declarantDesignation", Label: "Declarant Designation", Kind: models.KindText, Required: true},
			{Key: "place", Label: "Place", Kind: models.KindText, Required: true},
			{Key: "date", Label: "Declaration Date", Kind: models.KindDate, Required: true},
			{Key: "signature", Label: "Signature", Kind: models.KindFile, Required: true},
			{Key: "seal", Label: "Official Seal", Kind: models.KindFile, Required: true},
		},
	},
	{
		ID:    SectionAnnexureA,
		Title: "Annexure A (Location Details)",
		Order: 8,
		Fields: []models.Field{
			{Key: "shootLocation", Label: "Shoot Location", Kind: models.KindTextarea, Required: true},
			{Key: "locationType", Label: "Location Type", Kind: models.KindSelect, Required: true,
				Options: []string{"Government", "Private", "Public", "Religious", "Heritage"}},
			{Key: "date", Label: "Shoot Date", Kind: models.KindDate, Required: true},
			{Key: "district", Label: "District", Kind: models.KindText, Required: true},
			{Key: "policeStation", Label: "Nearest Police Station", Kind: models.KindText, Required: true},
			{Key: "landmark", Label: "Landmark", Kind: models.KindText, Required: false},
		},
	},
}
