package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/trackingentry"
)

type CreateTrackingParams struct {
	AgentID   uuid.UUID
	OwnerKind constants.TrackingOwnerKind
	OwnerID   uuid.UUID
	Kind      string
	Body      string
}

type TrackingRepository interface {
	Create(ctx context.Context, p CreateTrackingParams) (*ent.TrackingEntry, error)
	ListForOwner(ctx context.Context, agentID uuid.UUID, kind constants.TrackingOwnerKind, ownerID uuid.UUID) ([]*ent.TrackingEntry, error)
}

type trackingRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTrackingRepository(entc *ent.Client, log *slog.Logger) TrackingRepository {
	if log == nil {
		log = slog.Default()
	}
	return &trackingRepo{ent: entc, log: log}
}

func (r *trackingRepo) Create(ctx context.Context, p CreateTrackingParams) (*ent.TrackingEntry, error) {
	create := r.ent.TrackingEntry.
		Create().
		SetAgentID(p.AgentID).
		SetOwnerKind(string(p.OwnerKind)).
		SetOwnerID(p.OwnerID).
		SetBody(p.Body)
	if p.Kind != "" {
		create = create.SetKind(p.Kind)
	}
	e, err := create.Save(ctx)
	if err != nil {
		r.log.Error("tracking entry create failed",
			"agent_id", p.AgentID, "owner_kind", p.OwnerKind, "owner_id", p.OwnerID, "err", err)
		return nil, err
	}
	return e, nil
}

func (r *trackingRepo) ListForOwner(ctx context.Context, agentID uuid.UUID, kind constants.TrackingOwnerKind, ownerID uuid.UUID) ([]*ent.TrackingEntry, error) {
	return r.ent.TrackingEntry.
		Query().
		Where(
			trackingentry.AgentID(agentID),
			trackingentry.OwnerKind(string(kind)),
			trackingentry.OwnerID(ownerID),
		).
		Order(ent.Desc(trackingentry.FieldCreatedAt)).
		All(ctx)
}
