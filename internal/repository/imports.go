package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// CreateImportParams carries everything needed to register an uploaded
// document. The owning agent is always an explicit argument.
type CreateImportParams struct {
	AgentID          uuid.UUID
	ClientID         *uuid.UUID
	StorageDisk      string
	FilePath         string
	OriginalFilename string
	MIMEType         string
}

// TerminalOutcome is the whole-row success write of step 8: status plus all
// extraction outputs land atomically in one update.
type TerminalOutcome struct {
	Status        constants.ImportStatus // ready | needs_review
	ExtractedText string
	AIData        json.RawMessage
	AIConfidence  json.RawMessage
	MissingFields []string
	TookMS        int64
}

type ImportRepository interface {
	Create(ctx context.Context, p CreateImportParams) (*ent.PolicyAIImport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.PolicyAIImport, error)
	ListForAgent(ctx context.Context, agentID uuid.UUID, status string) ([]*ent.PolicyAIImport, error)
	// MarkProcessing is the idempotency guard: it atomically transitions the
	// import to processing unless it is already processing or ready. Returns
	// false when the guard rejected (and force is off).
	MarkProcessing(ctx context.Context, id uuid.UUID, force bool) (bool, error)
	Heartbeat(ctx context.Context, id uuid.UUID, stage string) error
	FinishSuccess(ctx context.Context, id uuid.UUID, out TerminalOutcome) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string, tookMS int64) error
	// SweepStale flips every processing import whose heartbeat is null or
	// older than cutoff to failed. Idempotent; returns how many were flipped.
	SweepStale(ctx context.Context, cutoff time.Time, message string) (int, error)
}

type importRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewImportRepository(entc *ent.Client, log *slog.Logger) ImportRepository {
	if log == nil {
		log = slog.Default()
	}
	return &importRepo{ent: entc, log: log}
}

func (r *importRepo) Create(ctx context.Context, p CreateImportParams) (*ent.PolicyAIImport, error) {
	create := r.ent.PolicyAIImport.
		Create().
		SetAgentID(p.AgentID).
		SetStorageDisk(p.StorageDisk).
		SetFilePath(p.FilePath).
		SetOriginalFilename(p.OriginalFilename).
		SetMimeType(p.MIMEType).
		SetStatus(string(constants.ImportStatusUploaded))
	if p.ClientID != nil {
		create = create.SetClientID(*p.ClientID)
	}
	imp, err := create.Save(ctx)
	if err != nil {
		r.log.Error("import create failed", "agent_id", p.AgentID, "err", err)
		return nil, err
	}
	r.log.Info("import created", "import_id", imp.ID, "agent_id", p.AgentID, "filename", p.OriginalFilename)
	return imp, nil
}

func (r *importRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.PolicyAIImport, error) {
	return r.ent.PolicyAIImport.Get(ctx, id)
}

func (r *importRepo) ListForAgent(ctx context.Context, agentID uuid.UUID, status string) ([]*ent.PolicyAIImport, error) {
	q := r.ent.PolicyAIImport.
		Query().
		Where(policyaiimport.AgentID(agentID)).
		Order(ent.Desc(policyaiimport.FieldCreatedAt))
	if status != "" {
		q = q.Where(policyaiimport.Status(status))
	}
	return q.All(ctx)
}

func (r *importRepo) MarkProcessing(ctx context.Context, id uuid.UUID, force bool) (bool, error) {
	preds := []predicate.PolicyAIImport{policyaiimport.ID(id)}
	if !force {
		preds = append(preds, policyaiimport.StatusNotIn(
			string(constants.ImportStatusProcessing),
			string(constants.ImportStatusReady),
		))
	}

	now := time.Now()
	upd := r.ent.PolicyAIImport.
		Update().
		Where(preds...).
		SetStatus(string(constants.ImportStatusProcessing)).
		SetProcessingStage(constants.StageExtractingText).
		SetProcessingHeartbeatAt(now).
		ClearProcessingEndedAt().
		ClearErrorMessage()

	n, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("import mark processing failed", "import_id", id, "err", err)
		return false, err
	}
	if n == 0 {
		r.log.Info("import already processing or ready, skipping", "import_id", id, "force", force)
		return false, nil
	}
	r.log.Info("import processing", "import_id", id, "force", force)
	return true, nil
}

func (r *importRepo) Heartbeat(ctx context.Context, id uuid.UUID, stage string) error {
	upd := r.ent.PolicyAIImport.
		Update().
		Where(
			policyaiimport.ID(id),
			policyaiimport.Status(string(constants.ImportStatusProcessing)),
		).
		SetProcessingHeartbeatAt(time.Now())
	if stage != "" {
		upd = upd.SetProcessingStage(stage)
	}
	_, err := upd.Save(ctx)
	return err
}

func (r *importRepo) FinishSuccess(ctx context.Context, id uuid.UUID, out TerminalOutcome) error {
	missing := out.MissingFields
	if missing == nil {
		missing = []string{}
	}
	_, err := r.ent.PolicyAIImport.
		UpdateOneID(id).
		SetStatus(string(out.Status)).
		SetProcessingStage(constants.StageDone).
		SetExtractedText(out.ExtractedText).
		SetAiData(out.AIData).
		SetAiConfidence(out.AIConfidence).
		SetMissingFields(missing).
		ClearErrorMessage().
		SetTookMs(out.TookMS).
		SetProcessingEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("import finish(success) failed", "import_id", id, "err", err)
		return err
	}
	r.log.Info("import finished", "import_id", id, "status", out.Status, "took_ms", out.TookMS, "missing", len(missing))
	return nil
}

func (r *importRepo) FinishFailure(ctx context.Context, id uuid.UUID, message string, tookMS int64) error {
	_, err := r.ent.PolicyAIImport.
		UpdateOneID(id).
		SetStatus(string(constants.ImportStatusFailed)).
		SetProcessingStage(constants.StageFailed).
		SetErrorMessage(message).
		SetTookMs(tookMS).
		SetProcessingEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("import finish(failed) failed", "import_id", id, "err", err)
		return err
	}
	r.log.Warn("import failed", "import_id", id, "error", message)
	return nil
}

func (r *importRepo) SweepStale(ctx context.Context, cutoff time.Time, message string) (int, error) {
	now := time.Now()
	n, err := r.ent.PolicyAIImport.
		Update().
		Where(
			policyaiimport.Status(string(constants.ImportStatusProcessing)),
			policyaiimport.Or(
				policyaiimport.ProcessingHeartbeatAtIsNil(),
				policyaiimport.ProcessingHeartbeatAtLT(cutoff),
			),
		).
		SetStatus(string(constants.ImportStatusFailed)).
		SetProcessingStage(constants.StageFailed).
		SetErrorMessage(message).
		SetProcessingEndedAt(now).
		SetProcessingHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		r.log.Error("import sweep failed", "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Warn("stale imports reclaimed", "count", n, "cutoff", cutoff)
	}
	return n, nil
}
