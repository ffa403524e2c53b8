// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
)

// BeneficiaryCreate is the builder for creating a Beneficiary entity.
type BeneficiaryCreate struct {
	config
	mutation *BeneficiaryMutation
	hooks    []Hook
}

// SetPolicyID sets the "policy_id" field.
func (_c *BeneficiaryCreate) SetPolicyID(v uuid.UUID) *BeneficiaryCreate {
	_c.mutation.SetPolicyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BeneficiaryCreate) SetName(v string) *BeneficiaryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *BeneficiaryCreate) SetPercentage(v float64) *BeneficiaryCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *BeneficiaryCreate) SetNillablePercentage(v *float64) *BeneficiaryCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BeneficiaryCreate) SetID(v uuid.UUID) *BeneficiaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BeneficiaryCreate) SetNillableID(v *uuid.UUID) *BeneficiaryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPolicy sets the "policy" edge to the Poliza entity.
func (_c *BeneficiaryCreate) SetPolicy(v *Poliza) *BeneficiaryCreate {
	return _c.SetPolicyID(v.ID)
}

// Mutation returns the BeneficiaryMutation object of the builder.
func (_c *BeneficiaryCreate) Mutation() *BeneficiaryMutation {
	return _c.mutation
}

// Save creates the Beneficiary in the database.
func (_c *BeneficiaryCreate) Save(ctx context.Context) (*Beneficiary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BeneficiaryCreate) SaveX(ctx context.Context) *Beneficiary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeneficiaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeneficiaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BeneficiaryCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := beneficiary.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BeneficiaryCreate) check() error {
	if _, ok := _c.mutation.PolicyID(); !ok {
		return &ValidationError{Name: "policy_id", err: errors.New(`ent: missing required field "Beneficiary.policy_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Beneficiary.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := beneficiary.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Beneficiary.name": %w`, err)}
		}
	}
	if len(_c.mutation.PolicyIDs()) == 0 {
		return &ValidationError{Name: "policy", err: errors.New(`ent: missing required edge "Beneficiary.policy"`)}
	}
	return nil
}

func (_c *BeneficiaryCreate) sqlSave(ctx context.Context) (*Beneficiary, error) {
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

func (_c *BeneficiaryCreate) createSpec() (*Beneficiary, *sqlgraph.CreateSpec) {
	var (
		_node = &Beneficiary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(beneficiary.Table, sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(beneficiary.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(beneficiary.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = &value
	}
	if nodes := _c.mutation.PolicyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   beneficiary.PolicyTable,
			Columns: []string{beneficiary.PolicyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poliza.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PolicyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BeneficiaryCreateBulk is the builder for creating many Beneficiary entities in bulk.
type BeneficiaryCreateBulk struct {
	config
	err      error
	builders []*BeneficiaryCreate
}

// Save creates the Beneficiary entities in the database.
func (_c *BeneficiaryCreateBulk) Save(ctx context.Context) ([]*Beneficiary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Beneficiary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BeneficiaryMutation)
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
func (_c *BeneficiaryCreateBulk) SaveX(ctx context.Context) []*Beneficiary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BeneficiaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BeneficiaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
