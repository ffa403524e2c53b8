package constants

// Sections of the fixed extraction schema. Confidence is scored per section.
const (
	SectionContractor    = "contractor"
	SectionInsured       = "insured"
	SectionPolicy        = "policy"
	SectionBeneficiaries = "beneficiaries"
)

// Sections in scoring order.
var Sections = []string{
	SectionContractor,
	SectionInsured,
	SectionPolicy,
	SectionBeneficiaries,
}
