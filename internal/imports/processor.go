// Package imports owns the lifecycle of a policy document import: the
// uploaded → processing → ready|needs_review|failed state machine, the
// heartbeat that proves a worker is alive, and the stuck-import sweep.
package imports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/ai"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/monitoring"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
	"github.com/insurtech-mx/polizas-crm/internal/score"
	"github.com/insurtech-mx/polizas-crm/internal/wizard"
)

// TextExtractor pulls plain text out of a stored document.
type TextExtractor interface {
	ExtractText(ctx context.Context, path, mimeType string) (string, error)
}

// AIExtractor turns document text into a normalized extraction.
type AIExtractor interface {
	ExtractFromText(ctx context.Context, text string) (ai.Extraction, error)
}

// Processor runs one import end to end. All persistence goes through the
// repository; every terminal outcome lands in the database so a failure
// is never silent.
type Processor struct {
	repo      repository.ImportRepository
	extractor TextExtractor
	aiClient  AIExtractor
	matcher   wizard.Matcher
	cfg       common.ImportsConfig
	metrics   *monitoring.Metrics
	logger    *slog.Logger
}

func NewProcessor(
	repo repository.ImportRepository,
	extractor TextExtractor,
	aiClient AIExtractor,
	matcher wizard.Matcher,
	cfg common.ImportsConfig,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HeartbeatEvery <= 0 {
		cfg.HeartbeatEvery = 15 * time.Second
	}
	return &Processor{
		repo:      repo,
		extractor: extractor,
		aiClient:  aiClient,
		matcher:   matcher,
		cfg:       cfg,
		metrics:   monitoring.Get(),
		logger:    logger,
	}
}

// storedAIData is what lands in the ai_data column: the normalized
// extraction plus the wizard match hints the form reads back.
type storedAIData struct {
	ai.Extraction
	Meta wizard.Meta `json:"meta"`
}

// Process runs the full pipeline for one import. The idempotency guard
// makes concurrent or repeated triggers harmless: only the call that wins
// the processing transition does any work. Every failure is persisted on
// the row; the returned error exists for CLI callers, queue workers only
// log it.
func (p *Processor) Process(ctx context.Context, importID uuid.UUID, force bool) error {
	imp, err := p.repo.GetByID(ctx, importID)
	if err != nil {
		return fmt.Errorf("load import %s: %w", importID, err)
	}

	ok, err := p.repo.MarkProcessing(ctx, importID, force)
	if err != nil {
		return fmt.Errorf("mark processing %s: %w", importID, err)
	}
	if !ok {
		return nil
	}

	start := time.Now()
	stopHeartbeat := p.startHeartbeat(ctx, importID)
	defer stopHeartbeat()

	status, err := p.run(ctx, imp, start)
	if err != nil {
		p.fail(importID, err, start)
		return err
	}
	p.metrics.ImportsProcessed.WithLabelValues(string(status)).Inc()
	p.metrics.ImportDuration.Observe(time.Since(start).Seconds())
	return nil
}

// run executes steps 4-8: resolve path, extract, AI, score, persist.
func (p *Processor) run(ctx context.Context, imp *ent.PolicyAIImport, start time.Time) (constants.ImportStatus, error) {
	path := filepath.Join(p.cfg.StorageRoot, imp.StorageDisk, imp.FilePath)

	if err := p.repo.Heartbeat(ctx, imp.ID, constants.StageExtractingText); err != nil {
		p.logger.Warn("heartbeat write failed", "import_id", imp.ID, "err", err)
	}
	text, err := p.extractor.ExtractText(ctx, path, imp.MimeType)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", common.ErrNoText
	}

	if err := p.repo.Heartbeat(ctx, imp.ID, constants.StageCallingAI); err != nil {
		p.logger.Warn("heartbeat write failed", "import_id", imp.ID, "err", err)
	}
	extraction, err := p.aiClient.ExtractFromText(ctx, text)
	if err != nil {
		return "", err
	}

	if err := p.repo.Heartbeat(ctx, imp.ID, constants.StageScoring); err != nil {
		p.logger.Warn("heartbeat write failed", "import_id", imp.ID, "err", err)
	}
	// Re-validate against the fixed schema before anything is persisted.
	if _, err := ai.ToJSON(extraction); err != nil {
		return "", err
	}
	result := score.Score(extraction)
	status := score.Decide(result, p.cfg.MinSectionConfidence)

	draft := wizard.MapToWizard(ctx, imp.AgentID, extraction, p.matcher, p.logger)
	aiData, err := json.Marshal(storedAIData{Extraction: extraction, Meta: draft.Meta})
	if err != nil {
		return "", fmt.Errorf("marshal ai_data: %w", err)
	}
	confidence, err := json.Marshal(result.Confidence)
	if err != nil {
		return "", fmt.Errorf("marshal ai_confidence: %w", err)
	}

	out := repository.TerminalOutcome{
		Status:        status,
		ExtractedText: text,
		AIData:        aiData,
		AIConfidence:  confidence,
		MissingFields: result.MissingFields,
		TookMS:        time.Since(start).Milliseconds(),
	}
	if err := p.repo.FinishSuccess(ctx, imp.ID, out); err != nil {
		return "", err
	}
	p.logger.Info("import processed",
		"import_id", imp.ID,
		"status", status,
		"missing", len(result.MissingFields),
		"took_ms", out.TookMS,
	)
	return status, nil
}

// fail persists the terminal failure. It deliberately uses a fresh context:
// the pipeline context may already be cancelled and the row must still be
// written, otherwise the import looks stuck until the sweep reclaims it.
func (p *Processor) fail(importID uuid.UUID, cause error, start time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := failureMessage(cause)
	if err := p.repo.FinishFailure(ctx, importID, msg, time.Since(start).Milliseconds()); err != nil {
		p.logger.Error("could not persist import failure", "import_id", importID, "err", err)
	}
	p.metrics.ImportsProcessed.WithLabelValues(string(constants.ImportStatusFailed)).Inc()
	p.metrics.ImportDuration.Observe(time.Since(start).Seconds())
}

// failureMessage normalizes an error into the user-facing error_message.
// Known conditions map to their fixed Spanish messages; anything else is
// the error text, truncated.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrOCRNotConfigured):
		return common.ErrOCRNotConfigured.Error()
	case errors.Is(err, common.ErrNoText):
		return common.ErrNoText.Error()
	case errors.Is(err, common.ErrInvalidAIResponse):
		return common.ErrInvalidAIResponse.Error()
	case errors.Is(err, ai.ErrExtractionFailed):
		return ai.ErrExtractionFailed.Error()
	}
	msg := err.Error()
	if len(msg) > 500 {
		msg = msg[:500]
	}
	return msg
}

// startHeartbeat refreshes processing_heartbeat_at on a ticker until the
// returned stop func runs. The stage is left untouched; stage transitions
// are explicit writes at each pipeline step.
func (p *Processor) startHeartbeat(ctx context.Context, importID uuid.UUID) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(p.cfg.HeartbeatEvery)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := p.repo.Heartbeat(ctx, importID, ""); err != nil {
					p.logger.Warn("heartbeat write failed", "import_id", importID, "err", err)
				}
			}
		}
	}()
	return func() { close(done) }
}
