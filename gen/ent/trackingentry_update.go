// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
	"github.com/insurtech-mx/polizas-crm/gen/ent/trackingentry"
)

// TrackingEntryUpdate is the builder for updating TrackingEntry entities.
type TrackingEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TrackingEntryMutation
}

// Where appends a list predicates to the TrackingEntryUpdate builder.
func (_u *TrackingEntryUpdate) Where(ps ...predicate.TrackingEntry) *TrackingEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TrackingEntryUpdate) SetAgentID(v uuid.UUID) *TrackingEntryUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TrackingEntryUpdate) SetNillableAgentID(v *uuid.UUID) *TrackingEntryUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetOwnerKind sets the "owner_kind" field.
func (_u *TrackingEntryUpdate) SetOwnerKind(v string) *TrackingEntryUpdate {
	_u.mutation.SetOwnerKind(v)
	return _u
}

// SetNillableOwnerKind sets the "owner_kind" field if the given value is not nil.
func (_u *TrackingEntryUpdate) SetNillableOwnerKind(v *string) *TrackingEntryUpdate {
	if v != nil {
		_u.SetOwnerKind(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *TrackingEntryUpdate) SetOwnerID(v uuid.UUID) *TrackingEntryUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *TrackingEntryUpdate) SetNillableOwnerID(v *uuid.UUID) *TrackingEntryUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TrackingEntryUpdate) SetKind(v string) *TrackingEntryUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TrackingEntryUpdate) SetNillableKind(v *string) *TrackingEntryUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *TrackingEntryUpdate) SetBody(v string) *TrackingEntryUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TrackingEntryUpdate) SetNillableBody(v *string) *TrackingEntryUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *TrackingEntryUpdate) SetAgent(v *Agent) *TrackingEntryUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the TrackingEntryMutation object of the builder.
func (_u *TrackingEntryUpdate) Mutation() *TrackingEntryMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *TrackingEntryUpdate) ClearAgent() *TrackingEntryUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrackingEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackingEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrackingEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackingEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackingEntryUpdate) check() error {
	if v, ok := _u.mutation.OwnerKind(); ok {
		if err := trackingentry.OwnerKindValidator(v); err != nil {
			return &ValidationError{Name: "owner_kind", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.owner_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := trackingentry.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.body": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackingEntry.agent"`)
	}
	return nil
}

func (_u *TrackingEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackingentry.Table, trackingentry.Columns, sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerKind(); ok {
		_spec.SetField(trackingentry.FieldOwnerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(trackingentry.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(trackingentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(trackingentry.FieldBody, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trackingentry.AgentTable,
			Columns: []string{trackingentry.AgentColumn},
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
			Table:   trackingentry.AgentTable,
			Columns: []string{trackingentry.AgentColumn},
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
			err = &NotFoundError{trackingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrackingEntryUpdateOne is the builder for updating a single TrackingEntry entity.
type TrackingEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackingEntryMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *TrackingEntryUpdateOne) SetAgentID(v uuid.UUID) *TrackingEntryUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TrackingEntryUpdateOne) SetNillableAgentID(v *uuid.UUID) *TrackingEntryUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetOwnerKind sets the "owner_kind" field.
func (_u *TrackingEntryUpdateOne) SetOwnerKind(v string) *TrackingEntryUpdateOne {
	_u.mutation.SetOwnerKind(v)
	return _u
}

// SetNillableOwnerKind sets the "owner_kind" field if the given value is not nil.
func (_u *TrackingEntryUpdateOne) SetNillableOwnerKind(v *string) *TrackingEntryUpdateOne {
	if v != nil {
		_u.SetOwnerKind(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *TrackingEntryUpdateOne) SetOwnerID(v uuid.UUID) *TrackingEntryUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *TrackingEntryUpdateOne) SetNillableOwnerID(v *uuid.UUID) *TrackingEntryUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TrackingEntryUpdateOne) SetKind(v string) *TrackingEntryUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TrackingEntryUpdateOne) SetNillableKind(v *string) *TrackingEntryUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *TrackingEntryUpdateOne) SetBody(v string) *TrackingEntryUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TrackingEntryUpdateOne) SetNillableBody(v *string) *TrackingEntryUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *TrackingEntryUpdateOne) SetAgent(v *Agent) *TrackingEntryUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the TrackingEntryMutation object of the builder.
func (_u *TrackingEntryUpdateOne) Mutation() *TrackingEntryMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *TrackingEntryUpdateOne) ClearAgent() *TrackingEntryUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the TrackingEntryUpdate builder.
func (_u *TrackingEntryUpdateOne) Where(ps ...predicate.TrackingEntry) *TrackingEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrackingEntryUpdateOne) Select(field string, fields ...string) *TrackingEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrackingEntry entity.
func (_u *TrackingEntryUpdateOne) Save(ctx context.Context) (*TrackingEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackingEntryUpdateOne) SaveX(ctx context.Context) *TrackingEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrackingEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackingEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackingEntryUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerKind(); ok {
		if err := trackingentry.OwnerKindValidator(v); err != nil {
			return &ValidationError{Name: "owner_kind", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.owner_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := trackingentry.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.body": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackingEntry.agent"`)
	}
	return nil
}

func (_u *TrackingEntryUpdateOne) sqlSave(ctx context.Context) (_node *TrackingEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackingentry.Table, trackingentry.Columns, sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrackingEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trackingentry.FieldID)
		for _, f := range fields {
			if !trackingentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trackingentry.FieldID {
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
	if value, ok := _u.mutation.OwnerKind(); ok {
		_spec.SetField(trackingentry.FieldOwnerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(trackingentry.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(trackingentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(trackingentry.FieldBody, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trackingentry.AgentTable,
			Columns: []string{trackingentry.AgentColumn},
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
			Table:   trackingentry.AgentTable,
			Columns: []string{trackingentry.AgentColumn},
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
	_node = &TrackingEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
