// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
)

// CommissionLineCreate is the builder for creating a CommissionLine entity.
type CommissionLineCreate struct {
	config
	mutation *CommissionLineMutation
	hooks    []Hook
}

// SetStatementID sets the "statement_id" field.
func (_c *CommissionLineCreate) SetStatementID(v uuid.UUID) *CommissionLineCreate {
	_c.mutation.SetStatementID(v)
	return _c
}

// SetPolicyNumber sets the "policy_number" field.
func (_c *CommissionLineCreate) SetPolicyNumber(v string) *CommissionLineCreate {
	_c.mutation.SetPolicyNumber(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *CommissionLineCreate) SetConcept(v string) *CommissionLineCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_c *CommissionLineCreate) SetNillableConcept(v *string) *CommissionLineCreate {
	if v != nil {
		_c.SetConcept(*v)
	}
	return _c
}

// SetExpectedAmount sets the "expected_amount" field.
func (_c *CommissionLineCreate) SetExpectedAmount(v string) *CommissionLineCreate {
	_c.mutation.SetExpectedAmount(v)
	return _c
}

// SetNillableExpectedAmount sets the "expected_amount" field if the given value is not nil.
func (_c *CommissionLineCreate) SetNillableExpectedAmount(v *string) *CommissionLineCreate {
	if v != nil {
		_c.SetExpectedAmount(*v)
	}
	return _c
}

// SetPaidAmount sets the "paid_amount" field.
func (_c *CommissionLineCreate) SetPaidAmount(v string) *CommissionLineCreate {
	_c.mutation.SetPaidAmount(v)
	return _c
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_c *CommissionLineCreate) SetNillablePaidAmount(v *string) *CommissionLineCreate {
	if v != nil {
		_c.SetPaidAmount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommissionLineCreate) SetID(v uuid.UUID) *CommissionLineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CommissionLineCreate) SetNillableID(v *uuid.UUID) *CommissionLineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStatement sets the "statement" edge to the CommissionStatement entity.
func (_c *CommissionLineCreate) SetStatement(v *CommissionStatement) *CommissionLineCreate {
	return _c.SetStatementID(v.ID)
}

// Mutation returns the CommissionLineMutation object of the builder.
func (_c *CommissionLineCreate) Mutation() *CommissionLineMutation {
	return _c.mutation
}

// Save creates the CommissionLine in the database.
func (_c *CommissionLineCreate) Save(ctx context.Context) (*CommissionLine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommissionLineCreate) SaveX(ctx context.Context) *CommissionLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionLineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionLineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommissionLineCreate) defaults() {
	if _, ok := _c.mutation.ExpectedAmount(); !ok {
		v := commissionline.DefaultExpectedAmount
		_c.mutation.SetExpectedAmount(v)
	}
	if _, ok := _c.mutation.PaidAmount(); !ok {
		v := commissionline.DefaultPaidAmount
		_c.mutation.SetPaidAmount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := commissionline.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommissionLineCreate) check() error {
	if _, ok := _c.mutation.StatementID(); !ok {
		return &ValidationError{Name: "statement_id", err: errors.New(`ent: missing required field "CommissionLine.statement_id"`)}
	}
	if _, ok := _c.mutation.PolicyNumber(); !ok {
		return &ValidationError{Name: "policy_number", err: errors.New(`ent: missing required field "CommissionLine.policy_number"`)}
	}
	if v, ok := _c.mutation.PolicyNumber(); ok {
		if err := commissionline.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "CommissionLine.policy_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedAmount(); !ok {
		return &ValidationError{Name: "expected_amount", err: errors.New(`ent: missing required field "CommissionLine.expected_amount"`)}
	}
	if _, ok := _c.mutation.PaidAmount(); !ok {
		return &ValidationError{Name: "paid_amount", err: errors.New(`ent: missing required field "CommissionLine.paid_amount"`)}
	}
	if len(_c.mutation.StatementIDs()) == 0 {
		return &ValidationError{Name: "statement", err: errors.New(`ent: missing required edge "CommissionLine.statement"`)}
	}
	return nil
}

func (_c *CommissionLineCreate) sqlSave(ctx context.Context) (*CommissionLine, error) {
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

func (_c *CommissionLineCreate) createSpec() (*CommissionLine, *sqlgraph.CreateSpec) {
	var (
		_node = &CommissionLine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commissionline.Table, sqlgraph.NewFieldSpec(commissionline.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PolicyNumber(); ok {
		_spec.SetField(commissionline.FieldPolicyNumber, field.TypeString, value)
		_node.PolicyNumber = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(commissionline.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.ExpectedAmount(); ok {
		_spec.SetField(commissionline.FieldExpectedAmount, field.TypeString, value)
		_node.ExpectedAmount = value
	}
	if value, ok := _c.mutation.PaidAmount(); ok {
		_spec.SetField(commissionline.FieldPaidAmount, field.TypeString, value)
		_node.PaidAmount = value
	}
	if nodes := _c.mutation.StatementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionline.StatementTable,
			Columns: []string{commissionline.StatementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionstatement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StatementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommissionLineCreateBulk is the builder for creating many CommissionLine entities in bulk.
type CommissionLineCreateBulk struct {
	config
	err      error
	builders []*CommissionLineCreate
}

// Save creates the CommissionLine entities in the database.
func (_c *CommissionLineCreateBulk) Save(ctx context.Context) ([]*CommissionLine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommissionLine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommissionLineMutation)
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
func (_c *CommissionLineCreateBulk) SaveX(ctx context.Context) []*CommissionLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionLineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionLineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
