package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
)

type AgentRepository interface {
	Create(ctx context.Context, name, email string) (*ent.Agent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Agent, error)
	GetByEmail(ctx context.Context, email string) (*ent.Agent, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type agentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAgentRepository(entc *ent.Client, log *slog.Logger) AgentRepository {
	if log == nil {
		log = slog.Default()
	}
	return &agentRepo{ent: entc, log: log}
}

func (r *agentRepo) Create(ctx context.Context, name, email string) (*ent.Agent, error) {
	a, err := r.ent.Agent.
		Create().
		SetName(name).
		SetEmail(email).
		Save(ctx)
	if err != nil {
		r.log.Error("agent create failed", "email", email, "err", err)
		return nil, err
	}
	r.log.Info("agent created", "agent_id", a.ID, "email", email)
	return a, nil
}

func (r *agentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Agent, error) {
	return r.ent.Agent.Get(ctx, id)
}

func (r *agentRepo) GetByEmail(ctx context.Context, email string) (*ent.Agent, error) {
	return r.ent.Agent.
		Query().
		Where(agent.Email(email)).
		Only(ctx)
}

func (r *agentRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Agent.
		Query().
		Where(agent.ID(id)).
		Exist(ctx)
}
