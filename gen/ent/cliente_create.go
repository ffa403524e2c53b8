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
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
)

// ClienteCreate is the builder for creating a Cliente entity.
type ClienteCreate struct {
	config
	mutation *ClienteMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *ClienteCreate) SetAgentID(v uuid.UUID) *ClienteCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *ClienteCreate) SetFirstName(v string) *ClienteCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetMiddleName sets the "middle_name" field.
func (_c *ClienteCreate) SetMiddleName(v string) *ClienteCreate {
	_c.mutation.SetMiddleName(v)
	return _c
}

// SetNillableMiddleName sets the "middle_name" field if the given value is not nil.
func (_c *ClienteCreate) SetNillableMiddleName(v *string) *ClienteCreate {
	if v != nil {
		_c.SetMiddleName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *ClienteCreate) SetLastName(v string) *ClienteCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetSecondLastName sets the "second_last_name" field.
func (_c *ClienteCreate) SetSecondLastName(v string) *ClienteCreate {
	_c.mutation.SetSecondLastName(v)
	return _c
}

// SetNillableSecondLastName sets the "second_last_name" field if the given value is not nil.
func (_c *ClienteCreate) SetNillableSecondLastName(v *string) *ClienteCreate {
	if v != nil {
		_c.SetSecondLastName(*v)
	}
	return _c
}

// SetRfc sets the "rfc" field.
func (_c *ClienteCreate) SetRfc(v string) *ClienteCreate {
	_c.mutation.SetRfc(v)
	return _c
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_c *ClienteCreate) SetNillableRfc(v *string) *ClienteCreate {
	if v != nil {
		_c.SetRfc(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ClienteCreate) SetEmail(v string) *ClienteCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ClienteCreate) SetNillableEmail(v *string) *ClienteCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClienteCreate) SetPhone(v string) *ClienteCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ClienteCreate) SetNillablePhone(v *string) *ClienteCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClienteCreate) SetCreatedAt(v time.Time) *ClienteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClienteCreate) SetNillableCreatedAt(v *time.Time) *ClienteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClienteCreate) SetUpdatedAt(v time.Time) *ClienteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClienteCreate) SetNillableUpdatedAt(v *time.Time) *ClienteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClienteCreate) SetID(v uuid.UUID) *ClienteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClienteCreate) SetNillableID(v *uuid.UUID) *ClienteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *ClienteCreate) SetAgent(v *Agent) *ClienteCreate {
	return _c.SetAgentID(v.ID)
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_c *ClienteCreate) AddPolicyIDs(ids ...uuid.UUID) *ClienteCreate {
	_c.mutation.AddPolicyIDs(ids...)
	return _c
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_c *ClienteCreate) AddPolicies(v ...*Poliza) *ClienteCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPolicyIDs(ids...)
}

// Mutation returns the ClienteMutation object of the builder.
func (_c *ClienteCreate) Mutation() *ClienteMutation {
	return _c.mutation
}

// Save creates the Cliente in the database.
func (_c *ClienteCreate) Save(ctx context.Context) (*Cliente, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClienteCreate) SaveX(ctx context.Context) *Cliente {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClienteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClienteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClienteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cliente.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cliente.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cliente.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClienteCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Cliente.agent_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Cliente.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := cliente.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Cliente.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "Cliente.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := cliente.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Cliente.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Cliente.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Cliente.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Cliente.agent"`)}
	}
	return nil
}

func (_c *ClienteCreate) sqlSave(ctx context.Context) (*Cliente, error) {
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

func (_c *ClienteCreate) createSpec() (*Cliente, *sqlgraph.CreateSpec) {
	var (
		_node = &Cliente{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cliente.Table, sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(cliente.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.MiddleName(); ok {
		_spec.SetField(cliente.FieldMiddleName, field.TypeString, value)
		_node.MiddleName = &value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(cliente.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.SecondLastName(); ok {
		_spec.SetField(cliente.FieldSecondLastName, field.TypeString, value)
		_node.SecondLastName = &value
	}
	if value, ok := _c.mutation.Rfc(); ok {
		_spec.SetField(cliente.FieldRfc, field.TypeString, value)
		_node.Rfc = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(cliente.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(cliente.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cliente.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cliente.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cliente.AgentTable,
			Columns: []string{cliente.AgentColumn},
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
	if nodes := _c.mutation.PoliciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliente.PoliciesTable,
			Columns: []string{cliente.PoliciesColumn},
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
	return _node, _spec
}

// ClienteCreateBulk is the builder for creating many Cliente entities in bulk.
type ClienteCreateBulk struct {
	config
	err      error
	builders []*ClienteCreate
}

// Save creates the Cliente entities in the database.
func (_c *ClienteCreateBulk) Save(ctx context.Context) ([]*Cliente, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Cliente, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClienteMutation)
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
func (_c *ClienteCreateBulk) SaveX(ctx context.Context) []*Cliente {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClienteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClienteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
