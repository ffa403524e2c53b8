package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/lead"
)

type CreateLeadParams struct {
	AgentID  uuid.UUID
	FullName string
	Phone    string
	Email    string
	Source   string
}

type LeadRepository interface {
	Create(ctx context.Context, p CreateLeadParams) (*ent.Lead, error)
	ListForAgent(ctx context.Context, agentID uuid.UUID) ([]*ent.Lead, error)
	Exists(ctx context.Context, agentID, id uuid.UUID) (bool, error)
}

type leadRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLeadRepository(entc *ent.Client, log *slog.Logger) LeadRepository {
	if log == nil {
		log = slog.Default()
	}
	return &leadRepo{ent: entc, log: log}
}

func (r *leadRepo) Create(ctx context.Context, p CreateLeadParams) (*ent.Lead, error) {
	create := r.ent.Lead.
		Create().
		SetAgentID(p.AgentID).
		SetFullName(p.FullName)
	if p.Phone != "" {
		create = create.SetPhone(p.Phone)
	}
	if p.Email != "" {
		create = create.SetEmail(p.Email)
	}
	if p.Source != "" {
		create = create.SetSource(p.Source)
	}
	l, err := create.Save(ctx)
	if err != nil {
		r.log.Error("lead create failed", "agent_id", p.AgentID, "err", err)
		return nil, err
	}
	return l, nil
}

func (r *leadRepo) ListForAgent(ctx context.Context, agentID uuid.UUID) ([]*ent.Lead, error) {
	return r.ent.Lead.
		Query().
		Where(lead.AgentID(agentID)).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
}

func (r *leadRepo) Exists(ctx context.Context, agentID, id uuid.UUID) (bool, error) {
	return r.ent.Lead.
		Query().
		Where(lead.ID(id), lead.AgentID(agentID)).
		Exist(ctx)
}
