package tracking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

type fakeTrackingRepo struct {
	created []repository.CreateTrackingParams
}

func (f *fakeTrackingRepo) Create(_ context.Context, p repository.CreateTrackingParams) (*ent.TrackingEntry, error) {
	f.created = append(f.created, p)
	return &ent.TrackingEntry{ID: uuid.New(), Body: p.Body}, nil
}

func (f *fakeTrackingRepo) ListForOwner(context.Context, uuid.UUID, constants.TrackingOwnerKind, uuid.UUID) ([]*ent.TrackingEntry, error) {
	return nil, nil
}

// ownerSet fakes the per-kind existence lookups with a fixed id set.
type ownerSet map[uuid.UUID]bool

func (o ownerSet) Exists(_ context.Context, _, id uuid.UUID) (bool, error) {
	return o[id], nil
}

func newTestService(repo repository.TrackingRepository, leads, clients, policies ownerSet) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &Service{
		repo: repo,
		owners: map[constants.TrackingOwnerKind]ExistsFunc{
			constants.OwnerLead:   leads.Exists,
			constants.OwnerClient: clients.Exists,
			constants.OwnerPolicy: policies.Exists,
		},
		logger: logger,
	}
	return s
}

func TestAddEntryValidOwner(t *testing.T) {
	repo := &fakeTrackingRepo{}
	clientID := uuid.New()
	svc := newTestService(repo, ownerSet{}, ownerSet{clientID: true}, ownerSet{})

	entry, err := svc.AddEntry(context.Background(), repository.CreateTrackingParams{
		AgentID:   uuid.New(),
		OwnerKind: constants.OwnerClient,
		OwnerID:   clientID,
		Body:      "llamada de seguimiento, renovar en diciembre",
	})
	require.NoError(t, err)
	assert.NotNil(t, entry)
	require.Len(t, repo.created, 1)
}

func TestAddEntryUnknownOwnerKind(t *testing.T) {
	svc := newTestService(&fakeTrackingRepo{}, ownerSet{}, ownerSet{}, ownerSet{})

	_, err := svc.AddEntry(context.Background(), repository.CreateTrackingParams{
		AgentID:   uuid.New(),
		OwnerKind: "prospect",
		OwnerID:   uuid.New(),
		Body:      "nota",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestAddEntryDanglingOwner(t *testing.T) {
	svc := newTestService(&fakeTrackingRepo{}, ownerSet{}, ownerSet{}, ownerSet{})

	_, err := svc.AddEntry(context.Background(), repository.CreateTrackingParams{
		AgentID:   uuid.New(),
		OwnerKind: constants.OwnerPolicy,
		OwnerID:   uuid.New(),
		Body:      "nota",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestAddEntryEmptyBody(t *testing.T) {
	leadID := uuid.New()
	svc := newTestService(&fakeTrackingRepo{}, ownerSet{leadID: true}, ownerSet{}, ownerSet{})

	_, err := svc.AddEntry(context.Background(), repository.CreateTrackingParams{
		AgentID:   uuid.New(),
		OwnerKind: constants.OwnerLead,
		OwnerID:   leadID,
		Body:      "   ",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}
