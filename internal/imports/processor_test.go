package imports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/ai"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

type fakeRepo struct {
	mu sync.Mutex

	row *ent.PolicyAIImport

	markProcessingOK bool
	heartbeats       []string

	success *repository.TerminalOutcome
	failure *string
	tookMS  int64
}

func (f *fakeRepo) Create(context.Context, repository.CreateImportParams) (*ent.PolicyAIImport, error) {
	panic("not used")
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.PolicyAIImport, error) {
	if f.row == nil || f.row.ID != id {
		return nil, errors.New("not found")
	}
	return f.row, nil
}

func (f *fakeRepo) ListForAgent(context.Context, uuid.UUID, string) ([]*ent.PolicyAIImport, error) {
	panic("not used")
}

func (f *fakeRepo) MarkProcessing(_ context.Context, _ uuid.UUID, _ bool) (bool, error) {
	return f.markProcessingOK, nil
}

func (f *fakeRepo) Heartbeat(_ context.Context, _ uuid.UUID, stage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats = append(f.heartbeats, stage)
	return nil
}

func (f *fakeRepo) FinishSuccess(_ context.Context, _ uuid.UUID, out repository.TerminalOutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.success = &out
	return nil
}

func (f *fakeRepo) FinishFailure(_ context.Context, _ uuid.UUID, message string, tookMS int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failure = &message
	f.tookMS = tookMS
	return nil
}

func (f *fakeRepo) SweepStale(context.Context, time.Time, string) (int, error) {
	return 0, nil
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(context.Context, string, string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeAI struct {
	ex  ai.Extraction
	err error
}

func (f *fakeAI) ExtractFromText(context.Context, string) (ai.Extraction, error) {
	return f.ex, f.err
}

type fakeMatcher struct {
	byRFC map[string]uuid.UUID
}

func (f *fakeMatcher) FindByRFC(_ context.Context, _ uuid.UUID, rfc string) (*ent.Cliente, error) {
	id, ok := f.byRFC[rfc]
	if !ok {
		return nil, nil
	}
	return &ent.Cliente{ID: id}, nil
}

func completeExtraction() ai.Extraction {
	pct := 100.0
	return ai.Extraction{
		Contractor: ai.Contractor{
			FirstName: "Ana", MiddleName: "María", LastName: "García",
			SecondLastName: "López", RFC: "GALA800101AB1",
			Email: "ana@example.mx", Phone: "5512345678",
		},
		Insured: ai.Insured{
			FirstName: "Ana", MiddleName: "María", LastName: "García",
			SecondLastName: "López", RFC: "GALA800101AB1",
		},
		Policy: ai.PolicyData{
			InsurerName: "GNP", ProductName: "Vida Plenitud", PolicyNumber: "GNP-7741",
			ValidFrom: "2026-01-01", ValidTo: "2027-01-01",
			Currency: "MXN", PaymentFrequency: "anual", PremiumTotal: "12500.00",
		},
		Beneficiaries: []ai.Beneficiary{{Name: "Luis García", Percentage: &pct}},
	}
}

func testRow(agentID uuid.UUID) *ent.PolicyAIImport {
	return &ent.PolicyAIImport{
		ID:          uuid.New(),
		AgentID:     agentID,
		StorageDisk: "local",
		FilePath:    "docs/poliza.pdf",
		MimeType:    "application/pdf",
		Status:      string(constants.ImportStatusUploaded),
	}
}

func newTestProcessor(repo *fakeRepo, ext TextExtractor, aic *fakeAI, m *fakeMatcher) *Processor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(repo, ext, aic, m, common.ImportsConfig{
		StorageRoot:          "/srv/storage",
		HeartbeatEvery:       10 * time.Millisecond,
		MinSectionConfidence: 0.60,
	}, logger)
}

func TestProcessCompleteDocumentEndsReady(t *testing.T) {
	agent := uuid.New()
	repo := &fakeRepo{row: testRow(agent), markProcessingOK: true}
	matchedID := uuid.New()
	m := &fakeMatcher{byRFC: map[string]uuid.UUID{"GALA800101AB1": matchedID}}
	p := newTestProcessor(repo, &fakeExtractor{text: "texto de la póliza"}, &fakeAI{ex: completeExtraction()}, m)

	require.NoError(t, p.Process(context.Background(), repo.row.ID, false))

	require.NotNil(t, repo.success)
	assert.Equal(t, constants.ImportStatusReady, repo.success.Status)
	assert.Equal(t, "texto de la póliza", repo.success.ExtractedText)
	assert.Empty(t, repo.success.MissingFields)
	assert.GreaterOrEqual(t, repo.success.TookMS, int64(0))
	assert.Nil(t, repo.failure)

	// ai_data must round-trip and carry the wizard match hints
	var stored struct {
		ai.Extraction
		Meta struct {
			MatchedClientID        *uuid.UUID `json:"matched_client_id"`
			MatchedInsuredClientID *uuid.UUID `json:"matched_insured_client_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(repo.success.AIData, &stored))
	assert.Equal(t, "GNP-7741", stored.Policy.PolicyNumber)
	require.NotNil(t, stored.Meta.MatchedClientID)
	assert.Equal(t, matchedID, *stored.Meta.MatchedClientID)

	// stages advanced in pipeline order
	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Subset(t, repo.heartbeats, []string{
		constants.StageExtractingText, constants.StageCallingAI, constants.StageScoring,
	})
}

func TestProcessIncompleteDocumentNeedsReview(t *testing.T) {
	agent := uuid.New()
	repo := &fakeRepo{row: testRow(agent), markProcessingOK: true}
	ex := completeExtraction()
	ex.Policy.PolicyNumber = ""
	p := newTestProcessor(repo, &fakeExtractor{text: "texto"}, &fakeAI{ex: ex}, &fakeMatcher{})

	require.NoError(t, p.Process(context.Background(), repo.row.ID, false))

	require.NotNil(t, repo.success)
	assert.Equal(t, constants.ImportStatusNeedsReview, repo.success.Status)
	assert.Contains(t, repo.success.MissingFields, "policy.policy_number")
}

// Losing the processing guard means another worker owns the import: no
// extraction, no terminal write, no error.
func TestProcessGuardRejectedIsNoOp(t *testing.T) {
	repo := &fakeRepo{row: testRow(uuid.New()), markProcessingOK: false}
	ext := &fakeExtractor{text: "texto"}
	p := newTestProcessor(repo, ext, &fakeAI{ex: completeExtraction()}, &fakeMatcher{})

	require.NoError(t, p.Process(context.Background(), repo.row.ID, false))
	assert.Zero(t, ext.calls)
	assert.Nil(t, repo.success)
	assert.Nil(t, repo.failure)
}

func TestProcessPersistsOCRConfigurationFailure(t *testing.T) {
	repo := &fakeRepo{row: testRow(uuid.New()), markProcessingOK: true}
	ext := &fakeExtractor{err: fmt.Errorf("%w: falta el binario %q", common.ErrOCRNotConfigured, "tesseract")}
	p := newTestProcessor(repo, ext, &fakeAI{}, &fakeMatcher{})

	err := p.Process(context.Background(), repo.row.ID, false)
	require.Error(t, err)
	require.NotNil(t, repo.failure)
	assert.Equal(t, "OCR no configurado", *repo.failure)
	assert.Nil(t, repo.success)
}

func TestProcessPersistsNoTextFailure(t *testing.T) {
	repo := &fakeRepo{row: testRow(uuid.New()), markProcessingOK: true}
	p := newTestProcessor(repo, &fakeExtractor{text: "   "}, &fakeAI{}, &fakeMatcher{})

	err := p.Process(context.Background(), repo.row.ID, false)
	require.Error(t, err)
	require.NotNil(t, repo.failure)
	assert.Equal(t, common.ErrNoText.Error(), *repo.failure)
}

func TestProcessPersistsAIFailure(t *testing.T) {
	repo := &fakeRepo{row: testRow(uuid.New()), markProcessingOK: true}
	aic := &fakeAI{err: fmt.Errorf("%w: status 500", ai.ErrExtractionFailed)}
	p := newTestProcessor(repo, &fakeExtractor{text: "texto"}, aic, &fakeMatcher{})

	err := p.Process(context.Background(), repo.row.ID, false)
	require.Error(t, err)
	require.NotNil(t, repo.failure)
	assert.Equal(t, ai.ErrExtractionFailed.Error(), *repo.failure)
	assert.GreaterOrEqual(t, repo.tookMS, int64(0))
}

func TestHeartbeatTicksWhileProcessing(t *testing.T) {
	repo := &fakeRepo{row: testRow(uuid.New()), markProcessingOK: true}
	slowExt := &slowExtractor{delay: 60 * time.Millisecond, text: "texto"}
	p := newTestProcessor(repo, slowExt, &fakeAI{ex: completeExtraction()}, &fakeMatcher{})

	require.NoError(t, p.Process(context.Background(), repo.row.ID, false))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	var ticks int
	for _, st := range repo.heartbeats {
		if st == "" {
			ticks++
		}
	}
	assert.Greater(t, ticks, 0, "refresher must stamp the heartbeat during long stages")
}

type slowExtractor struct {
	delay time.Duration
	text  string
}

func (s *slowExtractor) ExtractText(ctx context.Context, _, _ string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.delay):
		return s.text, nil
	}
}
