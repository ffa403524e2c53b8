package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/ai"
)

type stubMatcher struct {
	byRFC map[string]uuid.UUID
	err   error
	seen  []string
}

func (s *stubMatcher) FindByRFC(_ context.Context, _ uuid.UUID, rfc string) (*ent.Cliente, error) {
	s.seen = append(s.seen, rfc)
	if s.err != nil {
		return nil, s.err
	}
	if id, ok := s.byRFC[rfc]; ok {
		return &ent.Cliente{ID: id}, nil
	}
	return nil, nil
}

func sampleExtraction() ai.Extraction {
	pct := 60.0
	return ai.Extraction{
		Contractor: ai.Contractor{FirstName: "Ana", LastName: "García", RFC: "GALA800101AB1"},
		Insured:    ai.Insured{FirstName: "Luis", LastName: "García", RFC: "GALU050505XY9"},
		Policy: ai.PolicyData{
			InsurerName: "AXA", PolicyNumber: "AXA-11", Currency: "MXN",
			ValidFrom: "2026-01-01", ValidTo: "2027-01-01",
		},
		Beneficiaries: []ai.Beneficiary{{Name: "Eva García", Percentage: &pct}, {Name: "Sin Dato"}},
		Notes:         "asegurado distinto al contratante",
	}
}

func TestMapToWizardCopiesEveryStep(t *testing.T) {
	p := MapToWizard(context.Background(), uuid.New(), sampleExtraction(), nil, nil)

	assert.Equal(t, "Ana", p.Contractor.FirstName)
	assert.Equal(t, "GALU050505XY9", p.Insured.RFC)
	assert.Equal(t, "AXA-11", p.Policy.PolicyNumber)
	require.Len(t, p.Beneficiaries, 2)
	require.NotNil(t, p.Beneficiaries[0].Percentage)
	assert.Equal(t, 60.0, *p.Beneficiaries[0].Percentage)
	assert.Nil(t, p.Beneficiaries[1].Percentage)
	assert.Equal(t, "asegurado distinto al contratante", p.Notes)
	assert.Nil(t, p.Meta.MatchedClientID)
	assert.Nil(t, p.Meta.MatchedInsuredClientID)
}

func TestMapToWizardMatchesBothRFCs(t *testing.T) {
	contractorID, insuredID := uuid.New(), uuid.New()
	m := &stubMatcher{byRFC: map[string]uuid.UUID{
		"GALA800101AB1": contractorID,
		"GALU050505XY9": insuredID,
	}}

	p := MapToWizard(context.Background(), uuid.New(), sampleExtraction(), m, nil)

	require.NotNil(t, p.Meta.MatchedClientID)
	assert.Equal(t, contractorID, *p.Meta.MatchedClientID)
	require.NotNil(t, p.Meta.MatchedInsuredClientID)
	assert.Equal(t, insuredID, *p.Meta.MatchedInsuredClientID)
}

func TestMapToWizardSkipsLookupForBlankRFC(t *testing.T) {
	ex := sampleExtraction()
	ex.Insured.RFC = ""
	m := &stubMatcher{byRFC: map[string]uuid.UUID{"GALA800101AB1": uuid.New()}}

	p := MapToWizard(context.Background(), uuid.New(), ex, m, nil)

	assert.Equal(t, []string{"GALA800101AB1"}, m.seen)
	assert.Nil(t, p.Meta.MatchedInsuredClientID)
}

// A broken lookup degrades to "no hint", it never fails the mapping.
func TestMapToWizardLookupErrorLeavesHintNil(t *testing.T) {
	m := &stubMatcher{err: errors.New("db down")}

	p := MapToWizard(context.Background(), uuid.New(), sampleExtraction(), m, nil)

	assert.Nil(t, p.Meta.MatchedClientID)
	assert.Nil(t, p.Meta.MatchedInsuredClientID)
	assert.Equal(t, "AXA-11", p.Policy.PolicyNumber)
}
