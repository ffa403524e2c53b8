// Code generated by ent, DO NOT EDIT.

package policyaiimport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldAgentID, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldClientID, v))
}

// StorageDisk applies equality check predicate on the "storage_disk" field. It's identical to StorageDiskEQ.
func StorageDisk(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldStorageDisk, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldFilePath, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldOriginalFilename, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldMimeType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldStatus, v))
}

// ProcessingStage applies equality check predicate on the "processing_stage" field. It's identical to ProcessingStageEQ.
func ProcessingStage(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldProcessingStage, v))
}

// ProcessingHeartbeatAt applies equality check predicate on the "processing_heartbeat_at" field. It's identical to ProcessingHeartbeatAtEQ.
func ProcessingHeartbeatAt(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldProcessingHeartbeatAt, v))
}

// ProcessingEndedAt applies equality check predicate on the "processing_ended_at" field. It's identical to ProcessingEndedAtEQ.
func ProcessingEndedAt(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldProcessingEndedAt, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldExtractedText, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldErrorMessage, v))
}

// TookMs applies equality check predicate on the "took_ms" field. It's identical to TookMsEQ.
func TookMs(v int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldTookMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldAgentID, vs...))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v uuid.UUID) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldClientID, v))
}

// ClientIDIsNil applies the IsNil predicate on the "client_id" field.
func ClientIDIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldClientID))
}

// ClientIDNotNil applies the NotNil predicate on the "client_id" field.
func ClientIDNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldClientID))
}

// StorageDiskEQ applies the EQ predicate on the "storage_disk" field.
func StorageDiskEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldStorageDisk, v))
}

// StorageDiskNEQ applies the NEQ predicate on the "storage_disk" field.
func StorageDiskNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldStorageDisk, v))
}

// StorageDiskIn applies the In predicate on the "storage_disk" field.
func StorageDiskIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldStorageDisk, vs...))
}

// StorageDiskNotIn applies the NotIn predicate on the "storage_disk" field.
func StorageDiskNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldStorageDisk, vs...))
}

// StorageDiskGT applies the GT predicate on the "storage_disk" field.
func StorageDiskGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldStorageDisk, v))
}

// StorageDiskGTE applies the GTE predicate on the "storage_disk" field.
func StorageDiskGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldStorageDisk, v))
}

// StorageDiskLT applies the LT predicate on the "storage_disk" field.
func StorageDiskLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldStorageDisk, v))
}

// StorageDiskLTE applies the LTE predicate on the "storage_disk" field.
func StorageDiskLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldStorageDisk, v))
}

// StorageDiskContains applies the Contains predicate on the "storage_disk" field.
func StorageDiskContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldStorageDisk, v))
}

// StorageDiskHasPrefix applies the HasPrefix predicate on the "storage_disk" field.
func StorageDiskHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldStorageDisk, v))
}

// StorageDiskHasSuffix applies the HasSuffix predicate on the "storage_disk" field.
func StorageDiskHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldStorageDisk, v))
}

// StorageDiskEqualFold applies the EqualFold predicate on the "storage_disk" field.
func StorageDiskEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldStorageDisk, v))
}

// StorageDiskContainsFold applies the ContainsFold predicate on the "storage_disk" field.
func StorageDiskContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldStorageDisk, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldFilePath, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldMimeType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldStatus, v))
}

// ProcessingStageEQ applies the EQ predicate on the "processing_stage" field.
func ProcessingStageEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldProcessingStage, v))
}

// ProcessingStageNEQ applies the NEQ predicate on the "processing_stage" field.
func ProcessingStageNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldProcessingStage, v))
}

// ProcessingStageIn applies the In predicate on the "processing_stage" field.
func ProcessingStageIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldProcessingStage, vs...))
}

// ProcessingStageNotIn applies the NotIn predicate on the "processing_stage" field.
func ProcessingStageNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldProcessingStage, vs...))
}

// ProcessingStageGT applies the GT predicate on the "processing_stage" field.
func ProcessingStageGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldProcessingStage, v))
}

// ProcessingStageGTE applies the GTE predicate on the "processing_stage" field.
func ProcessingStageGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldProcessingStage, v))
}

// ProcessingStageLT applies the LT predicate on the "processing_stage" field.
func ProcessingStageLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldProcessingStage, v))
}

// ProcessingStageLTE applies the LTE predicate on the "processing_stage" field.
func ProcessingStageLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldProcessingStage, v))
}

// ProcessingStageContains applies the Contains predicate on the "processing_stage" field.
func ProcessingStageContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldProcessingStage, v))
}

// ProcessingStageHasPrefix applies the HasPrefix predicate on the "processing_stage" field.
func ProcessingStageHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldProcessingStage, v))
}

// ProcessingStageHasSuffix applies the HasSuffix predicate on the "processing_stage" field.
func ProcessingStageHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldProcessingStage, v))
}

// ProcessingStageIsNil applies the IsNil predicate on the "processing_stage" field.
func ProcessingStageIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldProcessingStage))
}

// ProcessingStageNotNil applies the NotNil predicate on the "processing_stage" field.
func ProcessingStageNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldProcessingStage))
}

// ProcessingStageEqualFold applies the EqualFold predicate on the "processing_stage" field.
func ProcessingStageEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldProcessingStage, v))
}

// ProcessingStageContainsFold applies the ContainsFold predicate on the "processing_stage" field.
func ProcessingStageContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldProcessingStage, v))
}

// ProcessingHeartbeatAtEQ applies the EQ predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldProcessingHeartbeatAt, v))
}

// ProcessingHeartbeatAtNEQ applies the NEQ predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtNEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldProcessingHeartbeatAt, v))
}

// ProcessingHeartbeatAtIn applies the In predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldProcessingHeartbeatAt, vs...))
}

// ProcessingHeartbeatAtNotIn applies the NotIn predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtNotIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldProcessingHeartbeatAt, vs...))
}

// ProcessingHeartbeatAtGT applies the GT predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtGT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldProcessingHeartbeatAt, v))
}

// ProcessingHeartbeatAtGTE applies the GTE predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtGTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldProcessingHeartbeatAt, v))
}

// ProcessingHeartbeatAtLT applies the LT predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtLT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldProcessingHeartbeatAt, v))
}

// ProcessingHeartbeatAtLTE applies the LTE predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtLTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldProcessingHeartbeatAt, v))
}

// ProcessingHeartbeatAtIsNil applies the IsNil predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldProcessingHeartbeatAt))
}

// ProcessingHeartbeatAtNotNil applies the NotNil predicate on the "processing_heartbeat_at" field.
func ProcessingHeartbeatAtNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldProcessingHeartbeatAt))
}

// ProcessingEndedAtEQ applies the EQ predicate on the "processing_ended_at" field.
func ProcessingEndedAtEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldProcessingEndedAt, v))
}

// ProcessingEndedAtNEQ applies the NEQ predicate on the "processing_ended_at" field.
func ProcessingEndedAtNEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldProcessingEndedAt, v))
}

// ProcessingEndedAtIn applies the In predicate on the "processing_ended_at" field.
func ProcessingEndedAtIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldProcessingEndedAt, vs...))
}

// ProcessingEndedAtNotIn applies the NotIn predicate on the "processing_ended_at" field.
func ProcessingEndedAtNotIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldProcessingEndedAt, vs...))
}

// ProcessingEndedAtGT applies the GT predicate on the "processing_ended_at" field.
func ProcessingEndedAtGT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldProcessingEndedAt, v))
}

// ProcessingEndedAtGTE applies the GTE predicate on the "processing_ended_at" field.
func ProcessingEndedAtGTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldProcessingEndedAt, v))
}

// ProcessingEndedAtLT applies the LT predicate on the "processing_ended_at" field.
func ProcessingEndedAtLT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldProcessingEndedAt, v))
}

// ProcessingEndedAtLTE applies the LTE predicate on the "processing_ended_at" field.
func ProcessingEndedAtLTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldProcessingEndedAt, v))
}

// ProcessingEndedAtIsNil applies the IsNil predicate on the "processing_ended_at" field.
func ProcessingEndedAtIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldProcessingEndedAt))
}

// ProcessingEndedAtNotNil applies the NotNil predicate on the "processing_ended_at" field.
func ProcessingEndedAtNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldProcessingEndedAt))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextIsNil applies the IsNil predicate on the "extracted_text" field.
func ExtractedTextIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldExtractedText))
}

// ExtractedTextNotNil applies the NotNil predicate on the "extracted_text" field.
func ExtractedTextNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldExtractedText))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldExtractedText, v))
}

// AiDataIsNil applies the IsNil predicate on the "ai_data" field.
func AiDataIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldAiData))
}

// AiDataNotNil applies the NotNil predicate on the "ai_data" field.
func AiDataNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldAiData))
}

// AiConfidenceIsNil applies the IsNil predicate on the "ai_confidence" field.
func AiConfidenceIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldAiConfidence))
}

// AiConfidenceNotNil applies the NotNil predicate on the "ai_confidence" field.
func AiConfidenceNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldAiConfidence))
}

// MissingFieldsIsNil applies the IsNil predicate on the "missing_fields" field.
func MissingFieldsIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldMissingFields))
}

// MissingFieldsNotNil applies the NotNil predicate on the "missing_fields" field.
func MissingFieldsNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldMissingFields))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TookMsEQ applies the EQ predicate on the "took_ms" field.
func TookMsEQ(v int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldTookMs, v))
}

// TookMsNEQ applies the NEQ predicate on the "took_ms" field.
func TookMsNEQ(v int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldTookMs, v))
}

// TookMsIn applies the In predicate on the "took_ms" field.
func TookMsIn(vs ...int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldTookMs, vs...))
}

// TookMsNotIn applies the NotIn predicate on the "took_ms" field.
func TookMsNotIn(vs ...int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldTookMs, vs...))
}

// TookMsGT applies the GT predicate on the "took_ms" field.
func TookMsGT(v int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldTookMs, v))
}

// TookMsGTE applies the GTE predicate on the "took_ms" field.
func TookMsGTE(v int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldTookMs, v))
}

// TookMsLT applies the LT predicate on the "took_ms" field.
func TookMsLT(v int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldTookMs, v))
}

// TookMsLTE applies the LTE predicate on the "took_ms" field.
func TookMsLTE(v int64) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldTookMs, v))
}

// TookMsIsNil applies the IsNil predicate on the "took_ms" field.
func TookMsIsNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIsNull(FieldTookMs))
}

// TookMsNotNil applies the NotNil predicate on the "took_ms" field.
func TookMsNotNil() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotNull(FieldTookMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.PolicyAIImport {
	return predicate.PolicyAIImport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PolicyAIImport) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PolicyAIImport) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PolicyAIImport) predicate.PolicyAIImport {
	return predicate.PolicyAIImport(sql.NotPredicates(p))
}
