package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByRFCIsCaseInsensitiveAndTenantScoped(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewClientRepository(client, testLogger())
	agentA := seedAgent(t, client)
	agentB := seedAgent(t, client)

	created, err := repo.Create(ctx, CreateClientParams{
		AgentID:   agentA,
		FirstName: "Ana",
		LastName:  "García",
		RFC:       "gala800101ab1", // stored uppercased
	})
	require.NoError(t, err)
	require.NotNil(t, created.Rfc)
	assert.Equal(t, "GALA800101AB1", *created.Rfc)

	found, err := repo.FindByRFC(ctx, agentA, "Gala800101Ab1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// same RFC, other tenant: no match
	other, err := repo.FindByRFC(ctx, agentB, "GALA800101AB1")
	require.NoError(t, err)
	assert.Nil(t, other)

	// blank RFC never matches anything
	blank, err := repo.FindByRFC(ctx, agentA, "   ")
	require.NoError(t, err)
	assert.Nil(t, blank)
}

func TestClientExists(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewClientRepository(client, testLogger())
	agentA := seedAgent(t, client)
	agentB := seedAgent(t, client)

	created, err := repo.Create(ctx, CreateClientParams{
		AgentID:   agentA,
		FirstName: "Luis",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	ok, err := repo.Exists(ctx, agentA, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, agentB, created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "ids never leak across tenants")
}
