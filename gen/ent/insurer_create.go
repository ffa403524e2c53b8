// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
)

// InsurerCreate is the builder for creating a Insurer entity.
type InsurerCreate struct {
	config
	mutation *InsurerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *InsurerCreate) SetName(v string) *InsurerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *InsurerCreate) SetActive(v bool) *InsurerCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *InsurerCreate) SetNillableActive(v *bool) *InsurerCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsurerCreate) SetID(v uuid.UUID) *InsurerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InsurerCreate) SetNillableID(v *uuid.UUID) *InsurerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_c *InsurerCreate) AddPolicyIDs(ids ...uuid.UUID) *InsurerCreate {
	_c.mutation.AddPolicyIDs(ids...)
	return _c
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_c *InsurerCreate) AddPolicies(v ...*Poliza) *InsurerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPolicyIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the CommissionStatement entity by IDs.
func (_c *InsurerCreate) AddStatementIDs(ids ...uuid.UUID) *InsurerCreate {
	_c.mutation.AddStatementIDs(ids...)
	return _c
}

// AddStatements adds the "statements" edges to the CommissionStatement entity.
func (_c *InsurerCreate) AddStatements(v ...*CommissionStatement) *InsurerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatementIDs(ids...)
}

// Mutation returns the InsurerMutation object of the builder.
func (_c *InsurerCreate) Mutation() *InsurerMutation {
	return _c.mutation
}

// Save creates the Insurer in the database.
func (_c *InsurerCreate) Save(ctx context.Context) (*Insurer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsurerCreate) SaveX(ctx context.Context) *Insurer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsurerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsurerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsurerCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := insurer.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := insurer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsurerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Insurer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := insurer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Insurer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Insurer.active"`)}
	}
	return nil
}

func (_c *InsurerCreate) sqlSave(ctx context.Context) (*Insurer, error) {
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

func (_c *InsurerCreate) createSpec() (*Insurer, *sqlgraph.CreateSpec) {
	var (
		_node = &Insurer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insurer.Table, sqlgraph.NewFieldSpec(insurer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(insurer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(insurer.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if nodes := _c.mutation.PoliciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurer.PoliciesTable,
			Columns: []string{insurer.PoliciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poliza.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurer.StatementsTable,
			Columns: []string{insurer.StatementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionstatement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InsurerCreateBulk is the builder for creating many Insurer entities in bulk.
type InsurerCreateBulk struct {
	config
	err      error
	builders []*InsurerCreate
}

// Save creates the Insurer entities in the database.
func (_c *InsurerCreateBulk) Save(ctx context.Context) ([]*Insurer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insurer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsurerMutation)
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
func (_c *InsurerCreateBulk) SaveX(ctx context.Context) []*Insurer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsurerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsurerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
