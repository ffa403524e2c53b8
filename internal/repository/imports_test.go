package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/enttest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestDB(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", url.PathEscape(t.Name()))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedAgent(t *testing.T, client *ent.Client) uuid.UUID {
	t.Helper()
	a, err := client.Agent.Create().
		SetName("Agente de Prueba").
		SetEmail(uuid.New().String() + "@example.mx").
		Save(context.Background())
	require.NoError(t, err)
	return a.ID
}

func seedImport(t *testing.T, repo ImportRepository, agentID uuid.UUID) *ent.PolicyAIImport {
	t.Helper()
	imp, err := repo.Create(context.Background(), CreateImportParams{
		AgentID:          agentID,
		StorageDisk:      "local",
		FilePath:         agentID.String() + "/" + uuid.New().String() + ".pdf",
		OriginalFilename: "poliza.pdf",
		MIMEType:         "application/pdf",
	})
	require.NoError(t, err)
	return imp
}

func TestCreateImportStartsUploaded(t *testing.T) {
	client := openTestDB(t)
	repo := NewImportRepository(client, testLogger())
	agent := seedAgent(t, client)

	imp := seedImport(t, repo, agent)
	assert.Equal(t, string(constants.ImportStatusUploaded), imp.Status)
	assert.Nil(t, imp.ProcessingHeartbeatAt)
	assert.Nil(t, imp.ErrorMessage)
}

func TestMarkProcessingGuard(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewImportRepository(client, testLogger())
	agent := seedAgent(t, client)
	imp := seedImport(t, repo, agent)

	ok, err := repo.MarkProcessing(ctx, imp.ID, false)
	require.NoError(t, err)
	assert.True(t, ok, "first transition must win")

	// second attempt loses: the import is already processing
	ok, err = repo.MarkProcessing(ctx, imp.ID, false)
	require.NoError(t, err)
	assert.False(t, ok)

	// force bypasses the guard
	ok, err = repo.MarkProcessing(ctx, imp.ID, true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkProcessingGuardProtectsReady(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewImportRepository(client, testLogger())
	agent := seedAgent(t, client)
	imp := seedImport(t, repo, agent)

	ok, err := repo.MarkProcessing(ctx, imp.ID, false)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, repo.FinishSuccess(ctx, imp.ID, TerminalOutcome{
		Status:        constants.ImportStatusReady,
		ExtractedText: "texto",
		AIData:        []byte(`{}`),
		AIConfidence:  []byte(`{}`),
		TookMS:        10,
	}))

	ok, err = repo.MarkProcessing(ctx, imp.ID, false)
	require.NoError(t, err)
	assert.False(t, ok, "a ready import must not be reprocessed without force")
}

func TestFinishFailureThenReprocess(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewImportRepository(client, testLogger())
	agent := seedAgent(t, client)
	imp := seedImport(t, repo, agent)

	ok, err := repo.MarkProcessing(ctx, imp.ID, false)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, repo.FinishFailure(ctx, imp.ID, "OCR no configurado", 25))

	row, err := repo.GetByID(ctx, imp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ImportStatusFailed), row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "OCR no configurado", *row.ErrorMessage)
	require.NotNil(t, row.ProcessingEndedAt)

	// failed imports are retryable without force; the retry clears the error
	ok, err = repo.MarkProcessing(ctx, imp.ID, false)
	require.NoError(t, err)
	require.True(t, ok)
	row, err = repo.GetByID(ctx, imp.ID)
	require.NoError(t, err)
	assert.Nil(t, row.ErrorMessage)
	assert.Nil(t, row.ProcessingEndedAt)
}

func TestFinishSuccessPersistsWholeOutcome(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewImportRepository(client, testLogger())
	agent := seedAgent(t, client)
	imp := seedImport(t, repo, agent)

	ok, err := repo.MarkProcessing(ctx, imp.ID, false)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.FinishSuccess(ctx, imp.ID, TerminalOutcome{
		Status:        constants.ImportStatusNeedsReview,
		ExtractedText: "texto extraído",
		AIData:        []byte(`{"policy":{"policy_number":"P-1"}}`),
		AIConfidence:  []byte(`{"sections":{"policy":0.5}}`),
		MissingFields: []string{"policy.valid_from"},
		TookMS:        1234,
	}))

	row, err := repo.GetByID(ctx, imp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ImportStatusNeedsReview), row.Status)
	require.NotNil(t, row.ExtractedText)
	assert.Equal(t, "texto extraído", *row.ExtractedText)
	assert.JSONEq(t, `{"policy":{"policy_number":"P-1"}}`, string(row.AiData))
	assert.Equal(t, []string{"policy.valid_from"}, row.MissingFields)
	require.NotNil(t, row.TookMs)
	assert.Equal(t, int64(1234), *row.TookMs)
	assert.Nil(t, row.ErrorMessage)
}

func TestSweepStaleReclaimsOnlyStuckImports(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewImportRepository(client, testLogger())
	agent := seedAgent(t, client)

	stale := seedImport(t, repo, agent)
	fresh := seedImport(t, repo, agent)
	idle := seedImport(t, repo, agent)

	for _, imp := range []*ent.PolicyAIImport{stale, fresh} {
		ok, err := repo.MarkProcessing(ctx, imp.ID, false)
		require.NoError(t, err)
		require.True(t, ok)
	}
	// age the stale one's heartbeat past the window
	_, err := client.PolicyAIImport.UpdateOneID(stale.ID).
		SetProcessingHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	n, err := repo.SweepStale(ctx, time.Now().Add(-5*time.Minute), "tiempo de procesamiento agotado")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err := repo.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ImportStatusFailed), row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "tiempo de procesamiento agotado", *row.ErrorMessage)

	row, err = repo.GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ImportStatusProcessing), row.Status, "recent heartbeat must survive the sweep")

	row, err = repo.GetByID(ctx, idle.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ImportStatusUploaded), row.Status, "non-processing imports are untouched")

	// idempotent: a second sweep finds nothing
	n, err = repo.SweepStale(ctx, time.Now().Add(-5*time.Minute), "tiempo de procesamiento agotado")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListForAgentFiltersByStatusAndTenant(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)
	repo := NewImportRepository(client, testLogger())
	agentA := seedAgent(t, client)
	agentB := seedAgent(t, client)

	a1 := seedImport(t, repo, agentA)
	seedImport(t, repo, agentB)

	ok, err := repo.MarkProcessing(ctx, a1.ID, false)
	require.NoError(t, err)
	require.True(t, ok)

	all, err := repo.ListForAgent(ctx, agentA, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	processing, err := repo.ListForAgent(ctx, agentA, string(constants.ImportStatusProcessing))
	require.NoError(t, err)
	assert.Len(t, processing, 1)

	uploaded, err := repo.ListForAgent(ctx, agentA, string(constants.ImportStatusUploaded))
	require.NoError(t, err)
	assert.Empty(t, uploaded)
}
