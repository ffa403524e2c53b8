// Package wizard reshapes a normalized extraction into the payload the
// multi-step policy creation form consumes, and auto-matches existing
// clients by RFC so the form can pre-select them.
package wizard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/ai"
)

// Matcher is the read-only lookup the mapper needs. Satisfied by
// repository.ClientRepository.
type Matcher interface {
	FindByRFC(ctx context.Context, agentID uuid.UUID, rfc string) (*ent.Cliente, error)
}

// Person holds one wizard person step (contractor or insured).
type Person struct {
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"`
	SecondLastName string `json:"second_last_name"`
	RFC            string `json:"rfc"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// PolicyStep is the wizard's policy-data step.
type PolicyStep struct {
	InsurerName      string `json:"insurer_name"`
	ProductName      string `json:"product_name"`
	PolicyNumber     string `json:"policy_number"`
	ValidFrom        string `json:"valid_from"`
	ValidTo          string `json:"valid_to"`
	Currency         string `json:"currency"`
	PaymentFrequency string `json:"payment_frequency"`
	PremiumTotal     string `json:"premium_total"`
}

// BeneficiaryRow mirrors one row of the wizard's beneficiaries table.
type BeneficiaryRow struct {
	Name       string   `json:"name"`
	Percentage *float64 `json:"percentage"`
}

// Meta carries the auto-match hints. Nil means no match was found.
type Meta struct {
	MatchedClientID        *uuid.UUID `json:"matched_client_id"`
	MatchedInsuredClientID *uuid.UUID `json:"matched_insured_client_id"`
}

// Payload is the whole prefilled form, keyed by wizard step.
type Payload struct {
	Contractor    Person           `json:"contractor"`
	Insured       Person           `json:"insured"`
	Policy        PolicyStep       `json:"policy"`
	Beneficiaries []BeneficiaryRow `json:"beneficiaries"`
	Notes         string           `json:"notes,omitempty"`
	Meta          Meta             `json:"meta"`
}

// MapToWizard builds the form payload from a normalized extraction and
// annotates it with RFC-matched client ids scoped to the owning agent.
// Match failures are hints, not errors: a lookup error only logs and
// leaves the hint nil.
func MapToWizard(ctx context.Context, agentID uuid.UUID, ex ai.Extraction, m Matcher, logger *slog.Logger) Payload {
	if logger == nil {
		logger = slog.Default()
	}

	p := Payload{
		Contractor: Person{
			FirstName:      ex.Contractor.FirstName,
			MiddleName:     ex.Contractor.MiddleName,
			LastName:       ex.Contractor.LastName,
			SecondLastName: ex.Contractor.SecondLastName,
			RFC:            ex.Contractor.RFC,
			Email:          ex.Contractor.Email,
			Phone:          ex.Contractor.Phone,
		},
		Insured: Person{
			FirstName:      ex.Insured.FirstName,
			MiddleName:     ex.Insured.MiddleName,
			LastName:       ex.Insured.LastName,
			SecondLastName: ex.Insured.SecondLastName,
			RFC:            ex.Insured.RFC,
		},
		Policy: PolicyStep{
			InsurerName:      ex.Policy.InsurerName,
			ProductName:      ex.Policy.ProductName,
			PolicyNumber:     ex.Policy.PolicyNumber,
			ValidFrom:        ex.Policy.ValidFrom,
			ValidTo:          ex.Policy.ValidTo,
			Currency:         ex.Policy.Currency,
			PaymentFrequency: ex.Policy.PaymentFrequency,
			PremiumTotal:     ex.Policy.PremiumTotal,
		},
		Notes: ex.Notes,
	}

	p.Beneficiaries = make([]BeneficiaryRow, 0, len(ex.Beneficiaries))
	for _, b := range ex.Beneficiaries {
		p.Beneficiaries = append(p.Beneficiaries, BeneficiaryRow{Name: b.Name, Percentage: b.Percentage})
	}

	if m != nil {
		p.Meta.MatchedClientID = matchRFC(ctx, agentID, ex.Contractor.RFC, m, logger)
		p.Meta.MatchedInsuredClientID = matchRFC(ctx, agentID, ex.Insured.RFC, m, logger)
	}
	return p
}

func matchRFC(ctx context.Context, agentID uuid.UUID, rfc string, m Matcher, logger *slog.Logger) *uuid.UUID {
	if rfc == "" {
		return nil
	}
	c, err := m.FindByRFC(ctx, agentID, rfc)
	if err != nil {
		logger.Warn("wizard rfc match lookup failed", "agent_id", agentID, "err", err)
		return nil
	}
	if c == nil {
		return nil
	}
	id := c.ID
	return &id
}
