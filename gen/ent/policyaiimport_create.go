// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
)

// PolicyAIImportCreate is the builder for creating a PolicyAIImport entity.
type PolicyAIImportCreate struct {
	config
	mutation *PolicyAIImportMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *PolicyAIImportCreate) SetAgentID(v uuid.UUID) *PolicyAIImportCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *PolicyAIImportCreate) SetClientID(v uuid.UUID) *PolicyAIImportCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableClientID(v *uuid.UUID) *PolicyAIImportCreate {
	if v != nil {
		_c.SetClientID(*v)
	}
	return _c
}

// SetStorageDisk sets the "storage_disk" field.
func (_c *PolicyAIImportCreate) SetStorageDisk(v string) *PolicyAIImportCreate {
	_c.mutation.SetStorageDisk(v)
	return _c
}

// SetNillableStorageDisk sets the "storage_disk" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableStorageDisk(v *string) *PolicyAIImportCreate {
	if v != nil {
		_c.SetStorageDisk(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *PolicyAIImportCreate) SetFilePath(v string) *PolicyAIImportCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *PolicyAIImportCreate) SetOriginalFilename(v string) *PolicyAIImportCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *PolicyAIImportCreate) SetMimeType(v string) *PolicyAIImportCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PolicyAIImportCreate) SetStatus(v string) *PolicyAIImportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableStatus(v *string) *PolicyAIImportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessingStage sets the "processing_stage" field.
func (_c *PolicyAIImportCreate) SetProcessingStage(v string) *PolicyAIImportCreate {
	_c.mutation.SetProcessingStage(v)
	return _c
}

// SetNillableProcessingStage sets the "processing_stage" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableProcessingStage(v *string) *PolicyAIImportCreate {
	if v != nil {
		_c.SetProcessingStage(*v)
	}
	return _c
}

// SetProcessingHeartbeatAt sets the "processing_heartbeat_at" field.
func (_c *PolicyAIImportCreate) SetProcessingHeartbeatAt(v time.Time) *PolicyAIImportCreate {
	_c.mutation.SetProcessingHeartbeatAt(v)
	return _c
}

// SetNillableProcessingHeartbeatAt sets the "processing_heartbeat_at" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableProcessingHeartbeatAt(v *time.Time) *PolicyAIImportCreate {
	if v != nil {
		_c.SetProcessingHeartbeatAt(*v)
	}
	return _c
}

// SetProcessingEndedAt sets the "processing_ended_at" field.
func (_c *PolicyAIImportCreate) SetProcessingEndedAt(v time.Time) *PolicyAIImportCreate {
	_c.mutation.SetProcessingEndedAt(v)
	return _c
}

// SetNillableProcessingEndedAt sets the "processing_ended_at" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableProcessingEndedAt(v *time.Time) *PolicyAIImportCreate {
	if v != nil {
		_c.SetProcessingEndedAt(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *PolicyAIImportCreate) SetExtractedText(v string) *PolicyAIImportCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableExtractedText(v *string) *PolicyAIImportCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetAiData sets the "ai_data" field.
func (_c *PolicyAIImportCreate) SetAiData(v json.RawMessage) *PolicyAIImportCreate {
	_c.mutation.SetAiData(v)
	return _c
}

// SetAiConfidence sets the "ai_confidence" field.
func (_c *PolicyAIImportCreate) SetAiConfidence(v json.RawMessage) *PolicyAIImportCreate {
	_c.mutation.SetAiConfidence(v)
	return _c
}

// SetMissingFields sets the "missing_fields" field.
func (_c *PolicyAIImportCreate) SetMissingFields(v []string) *PolicyAIImportCreate {
	_c.mutation.SetMissingFields(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PolicyAIImportCreate) SetErrorMessage(v string) *PolicyAIImportCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableErrorMessage(v *string) *PolicyAIImportCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTookMs sets the "took_ms" field.
func (_c *PolicyAIImportCreate) SetTookMs(v int64) *PolicyAIImportCreate {
	_c.mutation.SetTookMs(v)
	return _c
}

// SetNillableTookMs sets the "took_ms" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableTookMs(v *int64) *PolicyAIImportCreate {
	if v != nil {
		_c.SetTookMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolicyAIImportCreate) SetCreatedAt(v time.Time) *PolicyAIImportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableCreatedAt(v *time.Time) *PolicyAIImportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PolicyAIImportCreate) SetUpdatedAt(v time.Time) *PolicyAIImportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableUpdatedAt(v *time.Time) *PolicyAIImportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolicyAIImportCreate) SetID(v uuid.UUID) *PolicyAIImportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PolicyAIImportCreate) SetNillableID(v *uuid.UUID) *PolicyAIImportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *PolicyAIImportCreate) SetAgent(v *Agent) *PolicyAIImportCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the PolicyAIImportMutation object of the builder.
func (_c *PolicyAIImportCreate) Mutation() *PolicyAIImportMutation {
	return _c.mutation
}

// Save creates the PolicyAIImport in the database.
func (_c *PolicyAIImportCreate) Save(ctx context.Context) (*PolicyAIImport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicyAIImportCreate) SaveX(ctx context.Context) *PolicyAIImport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyAIImportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyAIImportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicyAIImportCreate) defaults() {
	if _, ok := _c.mutation.StorageDisk(); !ok {
		v := policyaiimport.DefaultStorageDisk
		_c.mutation.SetStorageDisk(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := policyaiimport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := policyaiimport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := policyaiimport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := policyaiimport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicyAIImportCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "PolicyAIImport.agent_id"`)}
	}
	if _, ok := _c.mutation.StorageDisk(); !ok {
		return &ValidationError{Name: "storage_disk", err: errors.New(`ent: missing required field "PolicyAIImport.storage_disk"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "PolicyAIImport.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := policyaiimport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "PolicyAIImport.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := policyaiimport.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "PolicyAIImport.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := policyaiimport.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PolicyAIImport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := policyaiimport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PolicyAIImport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolicyAIImport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PolicyAIImport.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "PolicyAIImport.agent"`)}
	}
	return nil
}

func (_c *PolicyAIImportCreate) sqlSave(ctx context.Context) (*PolicyAIImport, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PolicyAIImportCreate) createSpec() (*PolicyAIImport, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicyAIImport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policyaiimport.Table, sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(policyaiimport.FieldClientID, field.TypeUUID, value)
		_node.ClientID = &value
	}
	if value, ok := _c.mutation.StorageDisk(); ok {
		_spec.SetField(policyaiimport.FieldStorageDisk, field.TypeString, value)
		_node.StorageDisk = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(policyaiimport.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(policyaiimport.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(policyaiimport.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(policyaiimport.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProcessingStage(); ok {
		_spec.SetField(policyaiimport.FieldProcessingStage, field.TypeString, value)
		_node.ProcessingStage = &value
	}
	if value, ok := _c.mutation.ProcessingHeartbeatAt(); ok {
		_spec.SetField(policyaiimport.FieldProcessingHeartbeatAt, field.TypeTime, value)
		_node.ProcessingHeartbeatAt = &value
	}
	if value, ok := _c.mutation.ProcessingEndedAt(); ok {
		_spec.SetField(policyaiimport.FieldProcessingEndedAt, field.TypeTime, value)
		_node.ProcessingEndedAt = &value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(policyaiimport.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.AiData(); ok {
		_spec.SetField(policyaiimport.FieldAiData, field.TypeJSON, value)
		_node.AiData = value
	}
	if value, ok := _c.mutation.AiConfidence(); ok {
		_spec.SetField(policyaiimport.FieldAiConfidence, field.TypeJSON, value)
		_node.AiConfidence = value
	}
	if value, ok := _c.mutation.MissingFields(); ok {
		_spec.SetField(policyaiimport.FieldMissingFields, field.TypeJSON, value)
		_node.MissingFields = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(policyaiimport.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TookMs(); ok {
		_spec.SetField(policyaiimport.FieldTookMs, field.TypeInt64, value)
		_node.TookMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(policyaiimport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(policyaiimport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PolicyAIImportCreateBulk is the builder for creating many PolicyAIImport entities in bulk.
type PolicyAIImportCreateBulk struct {
	config
	err      error
	builders []*PolicyAIImportCreate
}

// Save creates the PolicyAIImport entities in the database.
func (_c *PolicyAIImportCreateBulk) Save(ctx context.Context) ([]*PolicyAIImport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicyAIImport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicyAIImportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PolicyAIImportCreateBulk) SaveX(ctx context.Context) []*PolicyAIImport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyAIImportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyAIImportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
