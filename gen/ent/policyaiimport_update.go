// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// PolicyAIImportUpdate is the builder for updating PolicyAIImport entities.
type PolicyAIImportUpdate struct {
	config
	hooks    []Hook
	mutation *PolicyAIImportMutation
}

// Where appends a list predicates to the PolicyAIImportUpdate builder.
func (_u *PolicyAIImportUpdate) Where(ps ...predicate.PolicyAIImport) *PolicyAIImportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *PolicyAIImportUpdate) SetAgentID(v uuid.UUID) *PolicyAIImportUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableAgentID(v *uuid.UUID) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *PolicyAIImportUpdate) SetClientID(v uuid.UUID) *PolicyAIImportUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableClientID(v *uuid.UUID) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *PolicyAIImportUpdate) ClearClientID() *PolicyAIImportUpdate {
	_u.mutation.ClearClientID()
	return _u
}

// SetStorageDisk sets the "storage_disk" field.
func (_u *PolicyAIImportUpdate) SetStorageDisk(v string) *PolicyAIImportUpdate {
	_u.mutation.SetStorageDisk(v)
	return _u
}

// SetNillableStorageDisk sets the "storage_disk" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableStorageDisk(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetStorageDisk(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *PolicyAIImportUpdate) SetFilePath(v string) *PolicyAIImportUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableFilePath(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *PolicyAIImportUpdate) SetOriginalFilename(v string) *PolicyAIImportUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableOriginalFilename(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PolicyAIImportUpdate) SetMimeType(v string) *PolicyAIImportUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableMimeType(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PolicyAIImportUpdate) SetStatus(v string) *PolicyAIImportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableStatus(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingStage sets the "processing_stage" field.
func (_u *PolicyAIImportUpdate) SetProcessingStage(v string) *PolicyAIImportUpdate {
	_u.mutation.SetProcessingStage(v)
	return _u
}

// SetNillableProcessingStage sets the "processing_stage" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableProcessingStage(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetProcessingStage(*v)
	}
	return _u
}

// ClearProcessingStage clears the value of the "processing_stage" field.
func (_u *PolicyAIImportUpdate) ClearProcessingStage() *PolicyAIImportUpdate {
	_u.mutation.ClearProcessingStage()
	return _u
}

// SetProcessingHeartbeatAt sets the "processing_heartbeat_at" field.
func (_u *PolicyAIImportUpdate) SetProcessingHeartbeatAt(v time.Time) *PolicyAIImportUpdate {
	_u.mutation.SetProcessingHeartbeatAt(v)
	return _u
}

// SetNillableProcessingHeartbeatAt sets the "processing_heartbeat_at" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableProcessingHeartbeatAt(v *time.Time) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetProcessingHeartbeatAt(*v)
	}
	return _u
}

// ClearProcessingHeartbeatAt clears the value of the "processing_heartbeat_at" field.
func (_u *PolicyAIImportUpdate) ClearProcessingHeartbeatAt() *PolicyAIImportUpdate {
	_u.mutation.ClearProcessingHeartbeatAt()
	return _u
}

// SetProcessingEndedAt sets the "processing_ended_at" field.
func (_u *PolicyAIImportUpdate) SetProcessingEndedAt(v time.Time) *PolicyAIImportUpdate {
	_u.mutation.SetProcessingEndedAt(v)
	return _u
}

// SetNillableProcessingEndedAt sets the "processing_ended_at" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableProcessingEndedAt(v *time.Time) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetProcessingEndedAt(*v)
	}
	return _u
}

// ClearProcessingEndedAt clears the value of the "processing_ended_at" field.
func (_u *PolicyAIImportUpdate) ClearProcessingEndedAt() *PolicyAIImportUpdate {
	_u.mutation.ClearProcessingEndedAt()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *PolicyAIImportUpdate) SetExtractedText(v string) *PolicyAIImportUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableExtractedText(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *PolicyAIImportUpdate) ClearExtractedText() *PolicyAIImportUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetAiData sets the "ai_data" field.
func (_u *PolicyAIImportUpdate) SetAiData(v json.RawMessage) *PolicyAIImportUpdate {
	_u.mutation.SetAiData(v)
	return _u
}

// AppendAiData appends value to the "ai_data" field.
func (_u *PolicyAIImportUpdate) AppendAiData(v json.RawMessage) *PolicyAIImportUpdate {
	_u.mutation.AppendAiData(v)
	return _u
}

// ClearAiData clears the value of the "ai_data" field.
func (_u *PolicyAIImportUpdate) ClearAiData() *PolicyAIImportUpdate {
	_u.mutation.ClearAiData()
	return _u
}

// SetAiConfidence sets the "ai_confidence" field.
func (_u *PolicyAIImportUpdate) SetAiConfidence(v json.RawMessage) *PolicyAIImportUpdate {
	_u.mutation.SetAiConfidence(v)
	return _u
}

// AppendAiConfidence appends value to the "ai_confidence" field.
func (_u *PolicyAIImportUpdate) AppendAiConfidence(v json.RawMessage) *PolicyAIImportUpdate {
	_u.mutation.AppendAiConfidence(v)
	return _u
}

// ClearAiConfidence clears the value of the "ai_confidence" field.
func (_u *PolicyAIImportUpdate) ClearAiConfidence() *PolicyAIImportUpdate {
	_u.mutation.ClearAiConfidence()
	return _u
}

// SetMissingFields sets the "missing_fields" field.
func (_u *PolicyAIImportUpdate) SetMissingFields(v []string) *PolicyAIImportUpdate {
	_u.mutation.SetMissingFields(v)
	return _u
}

// AppendMissingFields appends value to the "missing_fields" field.
func (_u *PolicyAIImportUpdate) AppendMissingFields(v []string) *PolicyAIImportUpdate {
	_u.mutation.AppendMissingFields(v)
	return _u
}

// ClearMissingFields clears the value of the "missing_fields" field.
func (_u *PolicyAIImportUpdate) ClearMissingFields() *PolicyAIImportUpdate {
	_u.mutation.ClearMissingFields()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PolicyAIImportUpdate) SetErrorMessage(v string) *PolicyAIImportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableErrorMessage(v *string) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PolicyAIImportUpdate) ClearErrorMessage() *PolicyAIImportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTookMs sets the "took_ms" field.
func (_u *PolicyAIImportUpdate) SetTookMs(v int64) *PolicyAIImportUpdate {
	_u.mutation.ResetTookMs()
	_u.mutation.SetTookMs(v)
	return _u
}

// SetNillableTookMs sets the "took_ms" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableTookMs(v *int64) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetTookMs(*v)
	}
	return _u
}

// AddTookMs adds value to the "took_ms" field.
func (_u *PolicyAIImportUpdate) AddTookMs(v int64) *PolicyAIImportUpdate {
	_u.mutation.AddTookMs(v)
	return _u
}

// ClearTookMs clears the value of the "took_ms" field.
func (_u *PolicyAIImportUpdate) ClearTookMs() *PolicyAIImportUpdate {
	_u.mutation.ClearTookMs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PolicyAIImportUpdate) SetCreatedAt(v time.Time) *PolicyAIImportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PolicyAIImportUpdate) SetNillableCreatedAt(v *time.Time) *PolicyAIImportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyAIImportUpdate) SetUpdatedAt(v time.Time) *PolicyAIImportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *PolicyAIImportUpdate) SetAgent(v *Agent) *PolicyAIImportUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the PolicyAIImportMutation object of the builder.
func (_u *PolicyAIImportUpdate) Mutation() *PolicyAIImportMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *PolicyAIImportUpdate) ClearAgent() *PolicyAIImportUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolicyAIImportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyAIImportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolicyAIImportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyAIImportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyAIImportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyaiimport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyAIImportUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := policyaiimport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := policyaiimport.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := policyaiimport.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := policyaiimport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyAIImport.agent"`)
	}
	return nil
}

func (_u *PolicyAIImportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyaiimport.Table, policyaiimport.Columns, sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(policyaiimport.FieldClientID, field.TypeUUID, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(policyaiimport.FieldClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StorageDisk(); ok {
		_spec.SetField(policyaiimport.FieldStorageDisk, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(policyaiimport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(policyaiimport.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(policyaiimport.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(policyaiimport.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStage(); ok {
		_spec.SetField(policyaiimport.FieldProcessingStage, field.TypeString, value)
	}
	if _u.mutation.ProcessingStageCleared() {
		_spec.ClearField(policyaiimport.FieldProcessingStage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingHeartbeatAt(); ok {
		_spec.SetField(policyaiimport.FieldProcessingHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingHeartbeatAtCleared() {
		_spec.ClearField(policyaiimport.FieldProcessingHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingEndedAt(); ok {
		_spec.SetField(policyaiimport.FieldProcessingEndedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingEndedAtCleared() {
		_spec.ClearField(policyaiimport.FieldProcessingEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(policyaiimport.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(policyaiimport.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.AiData(); ok {
		_spec.SetField(policyaiimport.FieldAiData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyaiimport.FieldAiData, value)
		})
	}
	if _u.mutation.AiDataCleared() {
		_spec.ClearField(policyaiimport.FieldAiData, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiConfidence(); ok {
		_spec.SetField(policyaiimport.FieldAiConfidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiConfidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyaiimport.FieldAiConfidence, value)
		})
	}
	if _u.mutation.AiConfidenceCleared() {
		_spec.ClearField(policyaiimport.FieldAiConfidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissingFields(); ok {
		_spec.SetField(policyaiimport.FieldMissingFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyaiimport.FieldMissingFields, value)
		})
	}
	if _u.mutation.MissingFieldsCleared() {
		_spec.ClearField(policyaiimport.FieldMissingFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(policyaiimport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(policyaiimport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TookMs(); ok {
		_spec.SetField(policyaiimport.FieldTookMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTookMs(); ok {
		_spec.AddField(policyaiimport.FieldTookMs, field.TypeInt64, value)
	}
	if _u.mutation.TookMsCleared() {
		_spec.ClearField(policyaiimport.FieldTookMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(policyaiimport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyaiimport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyaiimport.AgentTable,
			Columns: []string{policyaiimport.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyaiimport.AgentTable,
			Columns: []string{policyaiimport.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyaiimport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolicyAIImportUpdateOne is the builder for updating a single PolicyAIImport entity.
type PolicyAIImportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolicyAIImportMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *PolicyAIImportUpdateOne) SetAgentID(v uuid.UUID) *PolicyAIImportUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableAgentID(v *uuid.UUID) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *PolicyAIImportUpdateOne) SetClientID(v uuid.UUID) *PolicyAIImportUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableClientID(v *uuid.UUID) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *PolicyAIImportUpdateOne) ClearClientID() *PolicyAIImportUpdateOne {
	_u.mutation.ClearClientID()
	return _u
}

// SetStorageDisk sets the "storage_disk" field.
func (_u *PolicyAIImportUpdateOne) SetStorageDisk(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetStorageDisk(v)
	return _u
}

// SetNillableStorageDisk sets the "storage_disk" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableStorageDisk(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetStorageDisk(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *PolicyAIImportUpdateOne) SetFilePath(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableFilePath(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *PolicyAIImportUpdateOne) SetOriginalFilename(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableOriginalFilename(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PolicyAIImportUpdateOne) SetMimeType(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableMimeType(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PolicyAIImportUpdateOne) SetStatus(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableStatus(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingStage sets the "processing_stage" field.
func (_u *PolicyAIImportUpdateOne) SetProcessingStage(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetProcessingStage(v)
	return _u
}

// SetNillableProcessingStage sets the "processing_stage" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableProcessingStage(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetProcessingStage(*v)
	}
	return _u
}

// ClearProcessingStage clears the value of the "processing_stage" field.
func (_u *PolicyAIImportUpdateOne) ClearProcessingStage() *PolicyAIImportUpdateOne {
	_u.mutation.ClearProcessingStage()
	return _u
}

// SetProcessingHeartbeatAt sets the "processing_heartbeat_at" field.
func (_u *PolicyAIImportUpdateOne) SetProcessingHeartbeatAt(v time.Time) *PolicyAIImportUpdateOne {
	_u.mutation.SetProcessingHeartbeatAt(v)
	return _u
}

// SetNillableProcessingHeartbeatAt sets the "processing_heartbeat_at" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableProcessingHeartbeatAt(v *time.Time) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetProcessingHeartbeatAt(*v)
	}
	return _u
}

// ClearProcessingHeartbeatAt clears the value of the "processing_heartbeat_at" field.
func (_u *PolicyAIImportUpdateOne) ClearProcessingHeartbeatAt() *PolicyAIImportUpdateOne {
	_u.mutation.ClearProcessingHeartbeatAt()
	return _u
}

// SetProcessingEndedAt sets the "processing_ended_at" field.
func (_u *PolicyAIImportUpdateOne) SetProcessingEndedAt(v time.Time) *PolicyAIImportUpdateOne {
	_u.mutation.SetProcessingEndedAt(v)
	return _u
}

// SetNillableProcessingEndedAt sets the "processing_ended_at" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableProcessingEndedAt(v *time.Time) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetProcessingEndedAt(*v)
	}
	return _u
}

// ClearProcessingEndedAt clears the value of the "processing_ended_at" field.
func (_u *PolicyAIImportUpdateOne) ClearProcessingEndedAt() *PolicyAIImportUpdateOne {
	_u.mutation.ClearProcessingEndedAt()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *PolicyAIImportUpdateOne) SetExtractedText(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableExtractedText(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *PolicyAIImportUpdateOne) ClearExtractedText() *PolicyAIImportUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetAiData sets the "ai_data" field.
func (_u *PolicyAIImportUpdateOne) SetAiData(v json.RawMessage) *PolicyAIImportUpdateOne {
	_u.mutation.SetAiData(v)
	return _u
}

// AppendAiData appends value to the "ai_data" field.
func (_u *PolicyAIImportUpdateOne) AppendAiData(v json.RawMessage) *PolicyAIImportUpdateOne {
	_u.mutation.AppendAiData(v)
	return _u
}

// ClearAiData clears the value of the "ai_data" field.
func (_u *PolicyAIImportUpdateOne) ClearAiData() *PolicyAIImportUpdateOne {
	_u.mutation.ClearAiData()
	return _u
}

// SetAiConfidence sets the "ai_confidence" field.
func (_u *PolicyAIImportUpdateOne) SetAiConfidence(v json.RawMessage) *PolicyAIImportUpdateOne {
	_u.mutation.SetAiConfidence(v)
	return _u
}

// AppendAiConfidence appends value to the "ai_confidence" field.
func (_u *PolicyAIImportUpdateOne) AppendAiConfidence(v json.RawMessage) *PolicyAIImportUpdateOne {
	_u.mutation.AppendAiConfidence(v)
	return _u
}

// ClearAiConfidence clears the value of the "ai_confidence" field.
func (_u *PolicyAIImportUpdateOne) ClearAiConfidence() *PolicyAIImportUpdateOne {
	_u.mutation.ClearAiConfidence()
	return _u
}

// SetMissingFields sets the "missing_fields" field.
func (_u *PolicyAIImportUpdateOne) SetMissingFields(v []string) *PolicyAIImportUpdateOne {
	_u.mutation.SetMissingFields(v)
	return _u
}

// AppendMissingFields appends value to the "missing_fields" field.
func (_u *PolicyAIImportUpdateOne) AppendMissingFields(v []string) *PolicyAIImportUpdateOne {
	_u.mutation.AppendMissingFields(v)
	return _u
}

// ClearMissingFields clears the value of the "missing_fields" field.
func (_u *PolicyAIImportUpdateOne) ClearMissingFields() *PolicyAIImportUpdateOne {
	_u.mutation.ClearMissingFields()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PolicyAIImportUpdateOne) SetErrorMessage(v string) *PolicyAIImportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableErrorMessage(v *string) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PolicyAIImportUpdateOne) ClearErrorMessage() *PolicyAIImportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTookMs sets the "took_ms" field.
func (_u *PolicyAIImportUpdateOne) SetTookMs(v int64) *PolicyAIImportUpdateOne {
	_u.mutation.ResetTookMs()
	_u.mutation.SetTookMs(v)
	return _u
}

// SetNillableTookMs sets the "took_ms" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableTookMs(v *int64) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetTookMs(*v)
	}
	return _u
}

// AddTookMs adds value to the "took_ms" field.
func (_u *PolicyAIImportUpdateOne) AddTookMs(v int64) *PolicyAIImportUpdateOne {
	_u.mutation.AddTookMs(v)
	return _u
}

// ClearTookMs clears the value of the "took_ms" field.
func (_u *PolicyAIImportUpdateOne) ClearTookMs() *PolicyAIImportUpdateOne {
	_u.mutation.ClearTookMs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PolicyAIImportUpdateOne) SetCreatedAt(v time.Time) *PolicyAIImportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PolicyAIImportUpdateOne) SetNillableCreatedAt(v *time.Time) *PolicyAIImportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyAIImportUpdateOne) SetUpdatedAt(v time.Time) *PolicyAIImportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *PolicyAIImportUpdateOne) SetAgent(v *Agent) *PolicyAIImportUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the PolicyAIImportMutation object of the builder.
func (_u *PolicyAIImportUpdateOne) Mutation() *PolicyAIImportMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *PolicyAIImportUpdateOne) ClearAgent() *PolicyAIImportUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the PolicyAIImportUpdate builder.
func (_u *PolicyAIImportUpdateOne) Where(ps ...predicate.PolicyAIImport) *PolicyAIImportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolicyAIImportUpdateOne) Select(field string, fields ...string) *PolicyAIImportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolicyAIImport entity.
func (_u *PolicyAIImportUpdateOne) Save(ctx context.Context) (*PolicyAIImport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyAIImportUpdateOne) SaveX(ctx context.Context) *PolicyAIImport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolicyAIImportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyAIImportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyAIImportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyaiimport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyAIImportUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := policyaiimport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := policyaiimport.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := policyaiimport.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := policyaiimport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyAIImport.agent"`)
	}
	return nil
}

func (_u *PolicyAIImportUpdateOne) sqlSave(ctx context.Context) (_node *PolicyAIImport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyaiimport.Table, policyaiimport.Columns, sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolicyAIImport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policyaiimport.FieldID)
		for _, f := range fields {
			if !policyaiimport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != policyaiimport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(policyaiimport.FieldClientID, field.TypeUUID, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(policyaiimport.FieldClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StorageDisk(); ok {
		_spec.SetField(policyaiimport.FieldStorageDisk, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(policyaiimport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(policyaiimport.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(policyaiimport.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(policyaiimport.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStage(); ok {
		_spec.SetField(policyaiimport.FieldProcessingStage, field.TypeString, value)
	}
	if _u.mutation.ProcessingStageCleared() {
		_spec.ClearField(policyaiimport.FieldProcessingStage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingHeartbeatAt(); ok {
		_spec.SetField(policyaiimport.FieldProcessingHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingHeartbeatAtCleared() {
		_spec.ClearField(policyaiimport.FieldProcessingHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingEndedAt(); ok {
		_spec.SetField(policyaiimport.FieldProcessingEndedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingEndedAtCleared() {
		_spec.ClearField(policyaiimport.FieldProcessingEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(policyaiimport.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(policyaiimport.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.AiData(); ok {
		_spec.SetField(policyaiimport.FieldAiData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyaiimport.FieldAiData, value)
		})
	}
	if _u.mutation.AiDataCleared() {
		_spec.ClearField(policyaiimport.FieldAiData, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiConfidence(); ok {
		_spec.SetField(policyaiimport.FieldAiConfidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiConfidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyaiimport.FieldAiConfidence, value)
		})
	}
	if _u.mutation.AiConfidenceCleared() {
		_spec.ClearField(policyaiimport.FieldAiConfidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissingFields(); ok {
		_spec.SetField(policyaiimport.FieldMissingFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyaiimport.FieldMissingFields, value)
		})
	}
	if _u.mutation.MissingFieldsCleared() {
		_spec.ClearField(policyaiimport.FieldMissingFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(policyaiimport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(policyaiimport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TookMs(); ok {
		_spec.SetField(policyaiimport.FieldTookMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTookMs(); ok {
		_spec.AddField(policyaiimport.FieldTookMs, field.TypeInt64, value)
	}
	if _u.mutation.TookMsCleared() {
		_spec.ClearField(policyaiimport.FieldTookMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(policyaiimport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyaiimport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyaiimport.AgentTable,
			Columns: []string{policyaiimport.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyaiimport.AgentTable,
			Columns: []string{policyaiimport.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PolicyAIImport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyaiimport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
