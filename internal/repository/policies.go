package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	policy "github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
)

// BeneficiaryInput is one beneficiary row of a policy being created.
type BeneficiaryInput struct {
	Name       string
	Percentage *float64
}

// CreatePolicyParams is the wizard's final payload after review.
type CreatePolicyParams struct {
	AgentID          uuid.UUID
	ClientID         uuid.UUID
	InsuredClientID  *uuid.UUID
	InsurerID        uuid.UUID
	ProductName      string
	PolicyNumber     string
	ValidFrom        time.Time
	ValidTo          time.Time
	Currency         string
	PaymentFrequency string
	PremiumTotal     string
	Beneficiaries    []BeneficiaryInput
}

type PolicyRepository interface {
	// Create writes the policy and its beneficiaries in one transaction.
	Create(ctx context.Context, p CreatePolicyParams) (*ent.Poliza, error)
	GetForAgent(ctx context.Context, agentID, id uuid.UUID) (*ent.Poliza, error)
	ListForAgent(ctx context.Context, agentID uuid.UUID) ([]*ent.Poliza, error)
	Exists(ctx context.Context, agentID, id uuid.UUID) (bool, error)
}

type policyRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPolicyRepository(entc *ent.Client, log *slog.Logger) PolicyRepository {
	if log == nil {
		log = slog.Default()
	}
	return &policyRepo{ent: entc, log: log}
}

func (r *policyRepo) Create(ctx context.Context, p CreatePolicyParams) (*ent.Poliza, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	create := tx.Poliza.
		Create().
		SetAgentID(p.AgentID).
		SetClientID(p.ClientID).
		SetInsurerID(p.InsurerID).
		SetPolicyNumber(p.PolicyNumber).
		SetValidFrom(p.ValidFrom).
		SetValidTo(p.ValidTo)
	if p.InsuredClientID != nil {
		create = create.SetInsuredClientID(*p.InsuredClientID)
	}
	if p.ProductName != "" {
		create = create.SetProductName(p.ProductName)
	}
	if p.Currency != "" {
		create = create.SetCurrency(p.Currency)
	}
	if p.PaymentFrequency != "" {
		create = create.SetPaymentFrequency(p.PaymentFrequency)
	}
	if p.PremiumTotal != "" {
		create = create.SetPremiumTotal(p.PremiumTotal)
	}

	pol, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("policy create failed", "agent_id", p.AgentID, "policy_number", p.PolicyNumber, "err", err)
		return nil, err
	}

	for _, b := range p.Beneficiaries {
		if b.Name == "" {
			continue
		}
		bc := tx.Beneficiary.
			Create().
			SetPolicyID(pol.ID).
			SetName(b.Name)
		if b.Percentage != nil {
			bc = bc.SetPercentage(*b.Percentage)
		}
		if _, err := bc.Save(ctx); err != nil {
			_ = tx.Rollback()
			r.log.Error("beneficiary create failed", "policy_id", pol.ID, "err", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	r.log.Info("policy created", "policy_id", pol.ID, "agent_id", p.AgentID,
		"policy_number", p.PolicyNumber, "beneficiaries", len(p.Beneficiaries))
	return pol, nil
}

func (r *policyRepo) GetForAgent(ctx context.Context, agentID, id uuid.UUID) (*ent.Poliza, error) {
	return r.ent.Poliza.
		Query().
		Where(policy.ID(id), policy.AgentID(agentID)).
		WithBeneficiaries().
		Only(ctx)
}

func (r *policyRepo) ListForAgent(ctx context.Context, agentID uuid.UUID) ([]*ent.Poliza, error) {
	return r.ent.Poliza.
		Query().
		Where(policy.AgentID(agentID)).
		Order(ent.Desc(policy.FieldCreatedAt)).
		All(ctx)
}

func (r *policyRepo) Exists(ctx context.Context, agentID, id uuid.UUID) (bool, error) {
	return r.ent.Poliza.
		Query().
		Where(policy.ID(id), policy.AgentID(agentID)).
		Exist(ctx)
}
