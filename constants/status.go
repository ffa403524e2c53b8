package constants

// ImportStatus is the canonical status for rows in policy_ai_imports.
type ImportStatus string

// Stable values (store these exact strings in DB).
const (
	ImportStatusUploaded    ImportStatus = "uploaded"     // file stored, nothing processed yet
	ImportStatusProcessing  ImportStatus = "processing"   // a worker owns the import
	ImportStatusReady       ImportStatus = "ready"        // extraction complete, no review needed
	ImportStatusNeedsReview ImportStatus = "needs_review" // extraction complete, human review required
	ImportStatusFailed      ImportStatus = "failed"       // terminal failure, error_message set
)

// ImportStatuses holds the allowed values for the status field in PolicyAIImport.
var ImportStatuses = []string{
	string(ImportStatusUploaded),
	string(ImportStatusProcessing),
	string(ImportStatusReady),
	string(ImportStatusNeedsReview),
	string(ImportStatusFailed),
}

// Processing stage labels written to processing_stage while a worker advances.
const (
	StageExtractingText = "extracting_text"
	StageRunningOCR     = "running_ocr"
	StageCallingAI      = "calling_ai"
	StageScoring        = "scoring"
	StageDone           = "done"
	StageFailed         = "failed"
)

// TrackingOwnerKind tags which entity a tracking entry is attached to.
type TrackingOwnerKind string

const (
	OwnerLead   TrackingOwnerKind = "lead"
	OwnerClient TrackingOwnerKind = "client"
	OwnerPolicy TrackingOwnerKind = "policy"
)

// TrackingOwnerKinds holds the allowed values for owner_kind in tracking entries.
var TrackingOwnerKinds = []string{
	string(OwnerLead),
	string(OwnerClient),
	string(OwnerPolicy),
}

// StatementStatus is the lifecycle of a commission statement.
type StatementStatus string

const (
	StatementOpen       StatementStatus = "open"
	StatementReconciled StatementStatus = "reconciled"
	StatementDiscrepant StatementStatus = "discrepant"
)

var StatementStatuses = []string{
	string(StatementOpen),
	string(StatementReconciled),
	string(StatementDiscrepant),
}
