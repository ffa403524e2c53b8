package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
)

type CreateStatementParams struct {
	AgentID   uuid.UUID
	InsurerID uuid.UUID
	Period    string // YYYY-MM
}

type CreateLineParams struct {
	StatementID    uuid.UUID
	PolicyNumber   string
	Concept        string
	ExpectedAmount string
	PaidAmount     string
}

type CommissionRepository interface {
	CreateStatement(ctx context.Context, p CreateStatementParams) (*ent.CommissionStatement, error)
	AddLine(ctx context.Context, p CreateLineParams) (*ent.CommissionLine, error)
	GetStatementForAgent(ctx context.Context, agentID, id uuid.UUID) (*ent.CommissionStatement, error)
	Lines(ctx context.Context, statementID uuid.UUID) ([]*ent.CommissionLine, error)
	// SetTotals stamps the reconciliation outcome on the statement.
	SetTotals(ctx context.Context, id uuid.UUID, expected, paid string, status constants.StatementStatus) error
}

type commissionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCommissionRepository(entc *ent.Client, log *slog.Logger) CommissionRepository {
	if log == nil {
		log = slog.Default()
	}
	return &commissionRepo{ent: entc, log: log}
}

func (r *commissionRepo) CreateStatement(ctx context.Context, p CreateStatementParams) (*ent.CommissionStatement, error) {
	st, err := r.ent.CommissionStatement.
		Create().
		SetAgentID(p.AgentID).
		SetInsurerID(p.InsurerID).
		SetPeriod(p.Period).
		Save(ctx)
	if err != nil {
		r.log.Error("statement create failed", "agent_id", p.AgentID, "period", p.Period, "err", err)
		return nil, err
	}
	r.log.Info("statement created", "statement_id", st.ID, "period", p.Period)
	return st, nil
}

func (r *commissionRepo) AddLine(ctx context.Context, p CreateLineParams) (*ent.CommissionLine, error) {
	create := r.ent.CommissionLine.
		Create().
		SetStatementID(p.StatementID).
		SetPolicyNumber(p.PolicyNumber)
	if p.Concept != "" {
		create = create.SetConcept(p.Concept)
	}
	if p.ExpectedAmount != "" {
		create = create.SetExpectedAmount(p.ExpectedAmount)
	}
	if p.PaidAmount != "" {
		create = create.SetPaidAmount(p.PaidAmount)
	}
	return create.Save(ctx)
}

func (r *commissionRepo) GetStatementForAgent(ctx context.Context, agentID, id uuid.UUID) (*ent.CommissionStatement, error) {
	return r.ent.CommissionStatement.
		Query().
		Where(commissionstatement.ID(id), commissionstatement.AgentID(agentID)).
		Only(ctx)
}

func (r *commissionRepo) Lines(ctx context.Context, statementID uuid.UUID) ([]*ent.CommissionLine, error) {
	return r.ent.CommissionLine.
		Query().
		Where(commissionline.StatementID(statementID)).
		Order(ent.Asc(commissionline.FieldPolicyNumber)).
		All(ctx)
}

func (r *commissionRepo) SetTotals(ctx context.Context, id uuid.UUID, expected, paid string, status constants.StatementStatus) error {
	_, err := r.ent.CommissionStatement.
		UpdateOneID(id).
		SetExpectedTotal(expected).
		SetPaidTotal(paid).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("statement totals update failed", "statement_id", id, "err", err)
	}
	return err
}
