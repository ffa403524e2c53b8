// Package score turns a normalized extraction into a missing-critical-fields
// list and a confidence breakdown, and decides ready vs needs_review.
package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/internal/ai"
)

// DefaultMinSectionConfidence is the ready/needs_review cutoff applied to
// the minimum of the contractor, insured and policy section scores.
const DefaultMinSectionConfidence = 0.60

// Confidence is persisted as ai_confidence on the import.
type Confidence struct {
	Sections map[string]float64 `json:"sections"`
	Fields   map[string]float64 `json:"fields"`
}

// Result bundles what the import state manager persists after scoring.
type Result struct {
	MissingFields []string   `json:"missing_fields"`
	Confidence    Confidence `json:"confidence"`
}

// Score computes the critical-missing-fields list and the per-section /
// per-field confidence breakdown for a normalized extraction.
func Score(ex ai.Extraction) Result {
	missing := criticalMissing(ex)

	sections := map[string]float64{
		constants.SectionContractor: sectionConfidence(
			ex.Contractor.FirstName, ex.Contractor.MiddleName, ex.Contractor.LastName,
			ex.Contractor.SecondLastName, ex.Contractor.RFC, ex.Contractor.Email, ex.Contractor.Phone,
		),
		constants.SectionInsured: sectionConfidence(
			ex.Insured.FirstName, ex.Insured.MiddleName, ex.Insured.LastName,
			ex.Insured.SecondLastName, ex.Insured.RFC,
		),
		constants.SectionPolicy: sectionConfidence(
			ex.Policy.InsurerName, ex.Policy.ProductName, ex.Policy.PolicyNumber,
			ex.Policy.ValidFrom, ex.Policy.ValidTo, ex.Policy.Currency,
			ex.Policy.PaymentFrequency, ex.Policy.PremiumTotal,
		),
		constants.SectionBeneficiaries: beneficiariesConfidence(ex.Beneficiaries),
	}

	fields := map[string]float64{
		"policy.policy_number": binary(ex.Policy.PolicyNumber != ""),
		"policy.valid_from":    binary(ex.Policy.ValidFrom != ""),
		"policy.valid_to":      binary(ex.Policy.ValidTo != ""),
		"policy.insurer_name":  binary(ex.Policy.InsurerName != ""),
		"contractor.full_name": binary(fullName(ex.Contractor.FirstName, ex.Contractor.LastName)),
		"insured.full_name":    binary(fullName(ex.Insured.FirstName, ex.Insured.LastName)),
	}

	return Result{
		MissingFields: missing,
		Confidence:    Confidence{Sections: sections, Fields: fields},
	}
}

// Decide applies the readiness rule: ready iff no critical field is missing
// AND the minimum of the contractor/insured/policy section confidences
// clears the cutoff. The min-of-three rule is deliberate; do not average.
func Decide(r Result, minSectionConfidence float64) constants.ImportStatus {
	if minSectionConfidence <= 0 {
		minSectionConfidence = DefaultMinSectionConfidence
	}
	if len(r.MissingFields) > 0 {
		return constants.ImportStatusNeedsReview
	}
	minConf := math.Min(
		r.Confidence.Sections[constants.SectionContractor],
		math.Min(
			r.Confidence.Sections[constants.SectionInsured],
			r.Confidence.Sections[constants.SectionPolicy],
		),
	)
	if minConf >= minSectionConfidence {
		return constants.ImportStatusReady
	}
	return constants.ImportStatusNeedsReview
}

func criticalMissing(ex ai.Extraction) []string {
	var missing []string

	if blank(ex.Policy.PolicyNumber) {
		missing = append(missing, "policy.policy_number")
	}
	if blank(ex.Policy.ValidFrom) {
		missing = append(missing, "policy.valid_from")
	}
	if blank(ex.Policy.ValidTo) {
		missing = append(missing, "policy.valid_to")
	}
	if blank(ex.Policy.InsurerName) {
		missing = append(missing, "policy.insurer_name")
	}
	if blank(ex.Contractor.FirstName) {
		missing = append(missing, "contractor.first_name")
	}
	if blank(ex.Contractor.LastName) {
		missing = append(missing, "contractor.last_name")
	}
	if blank(ex.Insured.FirstName) {
		missing = append(missing, "insured.first_name")
	}
	if blank(ex.Insured.LastName) {
		missing = append(missing, "insured.last_name")
	}
	for i, b := range ex.Beneficiaries {
		if !blank(b.Name) && b.Percentage == nil {
			missing = append(missing, fmt.Sprintf("beneficiaries.%d.percentage", i))
		}
	}
	return missing
}

// sectionConfidence is the fraction of non-blank fields in the section's
// fixed field list, rounded to 2 decimals.
func sectionConfidence(fields ...string) float64 {
	if len(fields) == 0 {
		return 0
	}
	var present int
	for _, f := range fields {
		if !blank(f) {
			present++
		}
	}
	return round2(float64(present) / float64(len(fields)))
}

func beneficiariesConfidence(list []ai.Beneficiary) float64 {
	if len(list) == 0 {
		return 0
	}
	var present, total int
	for _, b := range list {
		total += 2
		if !blank(b.Name) {
			present++
		}
		if b.Percentage != nil {
			present++
		}
	}
	return round2(float64(present) / float64(total))
}

func fullName(first, last string) bool {
	return !blank(first) && !blank(last)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func binary(present bool) float64 {
	if present {
		return 1
	}
	return 0
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
