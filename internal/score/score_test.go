package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/internal/ai"
)

func completeExtraction() ai.Extraction {
	pct := 100.0
	return ai.Extraction{
		Contractor: ai.Contractor{
			FirstName: "Ana", MiddleName: "María", LastName: "García",
			SecondLastName: "López", RFC: "GALA800101AB1",
			Email: "ana@example.mx", Phone: "5512345678",
		},
		Insured: ai.Insured{
			FirstName: "Ana", MiddleName: "María", LastName: "García",
			SecondLastName: "López", RFC: "GALA800101AB1",
		},
		Policy: ai.PolicyData{
			InsurerName: "GNP", ProductName: "Vida Plenitud", PolicyNumber: "GNP-7741",
			ValidFrom: "2026-01-01", ValidTo: "2027-01-01",
			Currency: "MXN", PaymentFrequency: "anual", PremiumTotal: "12500.00",
		},
		Beneficiaries: []ai.Beneficiary{{Name: "Luis García", Percentage: &pct}},
	}
}

func TestCompleteExtractionIsReady(t *testing.T) {
	r := Score(completeExtraction())
	assert.Empty(t, r.MissingFields)
	assert.Equal(t, 1.0, r.Confidence.Sections[constants.SectionContractor])
	assert.Equal(t, 1.0, r.Confidence.Sections[constants.SectionInsured])
	assert.Equal(t, 1.0, r.Confidence.Sections[constants.SectionPolicy])
	assert.Equal(t, constants.ImportStatusReady, Decide(r, DefaultMinSectionConfidence))
}

func TestMissingCriticalFieldForcesReview(t *testing.T) {
	ex := completeExtraction()
	ex.Policy.PolicyNumber = "   "

	r := Score(ex)
	assert.Contains(t, r.MissingFields, "policy.policy_number")
	assert.Equal(t, constants.ImportStatusNeedsReview, Decide(r, DefaultMinSectionConfidence))
}

func TestBeneficiaryWithoutPercentageIsMissing(t *testing.T) {
	ex := completeExtraction()
	ex.Beneficiaries = []ai.Beneficiary{
		{Name: "Luis García", Percentage: nil},
		{Name: "", Percentage: nil}, // empty placeholder row is not missing
	}

	r := Score(ex)
	assert.Contains(t, r.MissingFields, "beneficiaries.0.percentage")
	assert.NotContains(t, r.MissingFields, "beneficiaries.1.percentage")
}

// The readiness rule is min-of-three, not an average: one weak section must
// block ready even when the others are perfect.
func TestLowSingleSectionBlocksReady(t *testing.T) {
	ex := completeExtraction()
	// insured keeps only the two critical name fields: 2/5 = 0.40 < 0.60
	ex.Insured.MiddleName = ""
	ex.Insured.SecondLastName = ""
	ex.Insured.RFC = ""

	r := Score(ex)
	require.Empty(t, r.MissingFields)
	assert.InDelta(t, 0.40, r.Confidence.Sections[constants.SectionInsured], 1e-9)
	assert.Equal(t, constants.ImportStatusNeedsReview, Decide(r, DefaultMinSectionConfidence))
}

func TestDecideCutoffIsInclusive(t *testing.T) {
	ex := completeExtraction()
	// insured at exactly 3/5 = 0.60
	ex.Insured.MiddleName = ""
	ex.Insured.SecondLastName = ""

	r := Score(ex)
	require.Empty(t, r.MissingFields)
	assert.InDelta(t, 0.60, r.Confidence.Sections[constants.SectionInsured], 1e-9)
	assert.Equal(t, constants.ImportStatusReady, Decide(r, DefaultMinSectionConfidence))
}

func TestEmptyExtractionNeedsReview(t *testing.T) {
	r := Score(ai.Extraction{Beneficiaries: []ai.Beneficiary{{}}})
	assert.NotEmpty(t, r.MissingFields)
	assert.Equal(t, constants.ImportStatusNeedsReview, Decide(r, DefaultMinSectionConfidence))
}

// Filling in one more field can only help: no section score decreases and a
// ready decision never degrades to needs_review.
func TestFillingFieldsIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		full := completeExtraction()
		// start from a random subset of the full extraction
		ex := randomSubset(t, full)
		before := Score(ex)

		// fill one currently blank field back in
		filled := fillOneField(t, ex, full)
		after := Score(filled)

		for name, b := range before.Confidence.Sections {
			assert.GreaterOrEqual(t, after.Confidence.Sections[name], b,
				"section %s lost confidence after adding a field", name)
		}
		assert.LessOrEqual(t, len(after.MissingFields), len(before.MissingFields))
		if Decide(before, DefaultMinSectionConfidence) == constants.ImportStatusReady {
			assert.Equal(t, constants.ImportStatusReady, Decide(after, DefaultMinSectionConfidence))
		}
	})
}

// fieldSlots enumerates every string field the scorer reads, as get/set pairs.
func fieldSlots(ex *ai.Extraction) []*string {
	return []*string{
		&ex.Contractor.FirstName, &ex.Contractor.MiddleName, &ex.Contractor.LastName,
		&ex.Contractor.SecondLastName, &ex.Contractor.RFC, &ex.Contractor.Email, &ex.Contractor.Phone,
		&ex.Insured.FirstName, &ex.Insured.MiddleName, &ex.Insured.LastName,
		&ex.Insured.SecondLastName, &ex.Insured.RFC,
		&ex.Policy.InsurerName, &ex.Policy.ProductName, &ex.Policy.PolicyNumber,
		&ex.Policy.ValidFrom, &ex.Policy.ValidTo, &ex.Policy.Currency,
		&ex.Policy.PaymentFrequency, &ex.Policy.PremiumTotal,
	}
}

func randomSubset(t *rapid.T, full ai.Extraction) ai.Extraction {
	ex := full
	slots := fieldSlots(&ex)
	for i := range slots {
		if rapid.Bool().Draw(t, "blank") {
			*slots[i] = ""
		}
	}
	return ex
}

func fillOneField(t *rapid.T, ex, full ai.Extraction) ai.Extraction {
	out := ex
	outSlots := fieldSlots(&out)
	fullSlots := fieldSlots(&full)

	var blanks []int
	for i, s := range outSlots {
		if *s == "" {
			blanks = append(blanks, i)
		}
	}
	if len(blanks) == 0 {
		return out
	}
	idx := rapid.SampledFrom(blanks).Draw(t, "slot")
	*outSlots[idx] = *fullSlots[idx]
	return out
}
