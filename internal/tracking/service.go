// Package tracking records follow-up notes against leads, clients and
// policies. The owner kind decides which table the owner id must exist in.
package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

// ExistsFunc answers whether an owner row exists for the agent. One per
// owner kind; the lookup table replaces a switch that would otherwise grow
// with every new owner type.
type ExistsFunc func(ctx context.Context, agentID, id uuid.UUID) (bool, error)

type Service struct {
	repo   repository.TrackingRepository
	owners map[constants.TrackingOwnerKind]ExistsFunc
	logger *slog.Logger
}

func NewService(
	repo repository.TrackingRepository,
	leads repository.LeadRepository,
	clients repository.ClientRepository,
	policies repository.PolicyRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo: repo,
		owners: map[constants.TrackingOwnerKind]ExistsFunc{
			constants.OwnerLead:   leads.Exists,
			constants.OwnerClient: clients.Exists,
			constants.OwnerPolicy: policies.Exists,
		},
		logger: logger,
	}
}

// AddEntry validates the owner reference and records the note. Unknown
// owner kinds and dangling owner ids are invalid input, not silent writes.
func (s *Service) AddEntry(ctx context.Context, p repository.CreateTrackingParams) (*ent.TrackingEntry, error) {
	if strings.TrimSpace(p.Body) == "" {
		return nil, fmt.Errorf("%w: body vacío", common.ErrInvalidInput)
	}
	exists, ok := s.owners[p.OwnerKind]
	if !ok {
		return nil, fmt.Errorf("%w: owner_kind %q", common.ErrInvalidInput, p.OwnerKind)
	}
	found, err := exists(ctx, p.AgentID, p.OwnerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s %s", common.ErrNotFound, p.OwnerKind, p.OwnerID)
	}
	return s.repo.Create(ctx, p)
}

// List returns the owner's entries, newest first. The same owner checks
// apply so one agent can never read another agent's notes by guessing ids.
func (s *Service) List(ctx context.Context, agentID uuid.UUID, kind constants.TrackingOwnerKind, ownerID uuid.UUID) ([]*ent.TrackingEntry, error) {
	exists, ok := s.owners[kind]
	if !ok {
		return nil, fmt.Errorf("%w: owner_kind %q", common.ErrInvalidInput, kind)
	}
	found, err := exists(ctx, agentID, ownerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s %s", common.ErrNotFound, kind, ownerID)
	}
	return s.repo.ListForOwner(ctx, agentID, kind, ownerID)
}
