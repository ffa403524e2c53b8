package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
)

// CreateClientParams is the explicit-ownership constructor input: the
// agent id is an argument, never derived from ambient state.
type CreateClientParams struct {
	AgentID        uuid.UUID
	FirstName      string
	MiddleName     string
	LastName       string
	SecondLastName string
	RFC            string
	Email          string
	Phone          string
}

type ClientRepository interface {
	Create(ctx context.Context, p CreateClientParams) (*ent.Cliente, error)
	GetForAgent(ctx context.Context, agentID, id uuid.UUID) (*ent.Cliente, error)
	ListForAgent(ctx context.Context, agentID uuid.UUID) ([]*ent.Cliente, error)
	// FindByRFC is the wizard's auto-match lookup: case-insensitive exact
	// RFC equality, scoped to the owning agent. Returns nil when no match.
	FindByRFC(ctx context.Context, agentID uuid.UUID, rfc string) (*ent.Cliente, error)
	Exists(ctx context.Context, agentID, id uuid.UUID) (bool, error)
}

type clientRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewClientRepository(entc *ent.Client, log *slog.Logger) ClientRepository {
	if log == nil {
		log = slog.Default()
	}
	return &clientRepo{ent: entc, log: log}
}

func (r *clientRepo) Create(ctx context.Context, p CreateClientParams) (*ent.Cliente, error) {
	create := r.ent.Cliente.
		Create().
		SetAgentID(p.AgentID).
		SetFirstName(p.FirstName).
		SetLastName(p.LastName)
	if p.MiddleName != "" {
		create = create.SetMiddleName(p.MiddleName)
	}
	if p.SecondLastName != "" {
		create = create.SetSecondLastName(p.SecondLastName)
	}
	if p.RFC != "" {
		create = create.SetRfc(strings.ToUpper(strings.TrimSpace(p.RFC)))
	}
	if p.Email != "" {
		create = create.SetEmail(p.Email)
	}
	if p.Phone != "" {
		create = create.SetPhone(p.Phone)
	}
	c, err := create.Save(ctx)
	if err != nil {
		r.log.Error("client create failed", "agent_id", p.AgentID, "err", err)
		return nil, err
	}
	r.log.Info("client created", "client_id", c.ID, "agent_id", p.AgentID)
	return c, nil
}

func (r *clientRepo) GetForAgent(ctx context.Context, agentID, id uuid.UUID) (*ent.Cliente, error) {
	return r.ent.Cliente.
		Query().
		Where(cliente.ID(id), cliente.AgentID(agentID)).
		Only(ctx)
}

func (r *clientRepo) ListForAgent(ctx context.Context, agentID uuid.UUID) ([]*ent.Cliente, error) {
	return r.ent.Cliente.
		Query().
		Where(cliente.AgentID(agentID)).
		Order(ent.Asc(cliente.FieldLastName), ent.Asc(cliente.FieldFirstName)).
		All(ctx)
}

func (r *clientRepo) FindByRFC(ctx context.Context, agentID uuid.UUID, rfc string) (*ent.Cliente, error) {
	rfc = strings.TrimSpace(rfc)
	if rfc == "" {
		return nil, nil
	}
	c, err := r.ent.Cliente.
		Query().
		Where(cliente.AgentID(agentID), cliente.RfcEqualFold(rfc)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return c, err
}

func (r *clientRepo) Exists(ctx context.Context, agentID, id uuid.UUID) (bool, error) {
	return r.ent.Cliente.
		Query().
		Where(cliente.ID(id), cliente.AgentID(agentID)).
		Exist(ctx)
}
