// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/trackingentry"
)

// TrackingEntryCreate is the builder for creating a TrackingEntry entity.
type TrackingEntryCreate struct {
	config
	mutation *TrackingEntryMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *TrackingEntryCreate) SetAgentID(v uuid.UUID) *TrackingEntryCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetOwnerKind sets the "owner_kind" field.
func (_c *TrackingEntryCreate) SetOwnerKind(v string) *TrackingEntryCreate {
	_c.mutation.SetOwnerKind(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *TrackingEntryCreate) SetOwnerID(v uuid.UUID) *TrackingEntryCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TrackingEntryCreate) SetKind(v string) *TrackingEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *TrackingEntryCreate) SetNillableKind(v *string) *TrackingEntryCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *TrackingEntryCreate) SetBody(v string) *TrackingEntryCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrackingEntryCreate) SetCreatedAt(v time.Time) *TrackingEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrackingEntryCreate) SetNillableCreatedAt(v *time.Time) *TrackingEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrackingEntryCreate) SetID(v uuid.UUID) *TrackingEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrackingEntryCreate) SetNillableID(v *uuid.UUID) *TrackingEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *TrackingEntryCreate) SetAgent(v *Agent) *TrackingEntryCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the TrackingEntryMutation object of the builder.
func (_c *TrackingEntryCreate) Mutation() *TrackingEntryMutation {
	return _c.mutation
}

// Save creates the TrackingEntry in the database.
func (_c *TrackingEntryCreate) Save(ctx context.Context) (*TrackingEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrackingEntryCreate) SaveX(ctx context.Context) *TrackingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackingEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackingEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrackingEntryCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := trackingentry.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trackingentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trackingentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrackingEntryCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "TrackingEntry.agent_id"`)}
	}
	if _, ok := _c.mutation.OwnerKind(); !ok {
		return &ValidationError{Name: "owner_kind", err: errors.New(`ent: missing required field "TrackingEntry.owner_kind"`)}
	}
	if v, ok := _c.mutation.OwnerKind(); ok {
		if err := trackingentry.OwnerKindValidator(v); err != nil {
			return &ValidationError{Name: "owner_kind", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.owner_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "TrackingEntry.owner_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TrackingEntry.kind"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "TrackingEntry.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := trackingentry.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrackingEntry.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "TrackingEntry.agent"`)}
	}
	return nil
}

func (_c *TrackingEntryCreate) sqlSave(ctx context.Context) (*TrackingEntry, error) {
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

func (_c *TrackingEntryCreate) createSpec() (*TrackingEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TrackingEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trackingentry.Table, sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerKind(); ok {
		_spec.SetField(trackingentry.FieldOwnerKind, field.TypeString, value)
		_node.OwnerKind = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(trackingentry.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(trackingentry.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(trackingentry.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trackingentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrackingEntryCreateBulk is the builder for creating many TrackingEntry entities in bulk.
type TrackingEntryCreateBulk struct {
	config
	err      error
	builders []*TrackingEntryCreate
}

// Save creates the TrackingEntry entities in the database.
func (_c *TrackingEntryCreateBulk) Save(ctx context.Context) ([]*TrackingEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrackingEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackingEntryMutation)
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
func (_c *TrackingEntryCreateBulk) SaveX(ctx context.Context) []*TrackingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackingEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackingEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
