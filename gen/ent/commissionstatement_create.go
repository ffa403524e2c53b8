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
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
)

// CommissionStatementCreate is the builder for creating a CommissionStatement entity.
type CommissionStatementCreate struct {
	config
	mutation *CommissionStatementMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *CommissionStatementCreate) SetAgentID(v uuid.UUID) *CommissionStatementCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetInsurerID sets the "insurer_id" field.
func (_c *CommissionStatementCreate) SetInsurerID(v uuid.UUID) *CommissionStatementCreate {
	_c.mutation.SetInsurerID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *CommissionStatementCreate) SetPeriod(v string) *CommissionStatementCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetExpectedTotal sets the "expected_total" field.
func (_c *CommissionStatementCreate) SetExpectedTotal(v string) *CommissionStatementCreate {
	_c.mutation.SetExpectedTotal(v)
	return _c
}

// SetNillableExpectedTotal sets the "expected_total" field if the given value is not nil.
func (_c *CommissionStatementCreate) SetNillableExpectedTotal(v *string) *CommissionStatementCreate {
	if v != nil {
		_c.SetExpectedTotal(*v)
	}
	return _c
}

// SetPaidTotal sets the "paid_total" field.
func (_c *CommissionStatementCreate) SetPaidTotal(v string) *CommissionStatementCreate {
	_c.mutation.SetPaidTotal(v)
	return _c
}

// SetNillablePaidTotal sets the "paid_total" field if the given value is not nil.
func (_c *CommissionStatementCreate) SetNillablePaidTotal(v *string) *CommissionStatementCreate {
	if v != nil {
		_c.SetPaidTotal(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommissionStatementCreate) SetStatus(v string) *CommissionStatementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommissionStatementCreate) SetNillableStatus(v *string) *CommissionStatementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommissionStatementCreate) SetCreatedAt(v time.Time) *CommissionStatementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommissionStatementCreate) SetNillableCreatedAt(v *time.Time) *CommissionStatementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommissionStatementCreate) SetUpdatedAt(v time.Time) *CommissionStatementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommissionStatementCreate) SetNillableUpdatedAt(v *time.Time) *CommissionStatementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommissionStatementCreate) SetID(v uuid.UUID) *CommissionStatementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CommissionStatementCreate) SetNillableID(v *uuid.UUID) *CommissionStatementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *CommissionStatementCreate) SetAgent(v *Agent) *CommissionStatementCreate {
	return _c.SetAgentID(v.ID)
}

// SetInsurer sets the "insurer" edge to the Insurer entity.
func (_c *CommissionStatementCreate) SetInsurer(v *Insurer) *CommissionStatementCreate {
	return _c.SetInsurerID(v.ID)
}

// AddLineIDs adds the "lines" edge to the CommissionLine entity by IDs.
func (_c *CommissionStatementCreate) AddLineIDs(ids ...uuid.UUID) *CommissionStatementCreate {
	_c.mutation.AddLineIDs(ids...)
	return _c
}

// AddLines adds the "lines" edges to the CommissionLine entity.
func (_c *CommissionStatementCreate) AddLines(v ...*CommissionLine) *CommissionStatementCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineIDs(ids...)
}

// Mutation returns the CommissionStatementMutation object of the builder.
func (_c *CommissionStatementCreate) Mutation() *CommissionStatementMutation {
	return _c.mutation
}

// Save creates the CommissionStatement in the database.
func (_c *CommissionStatementCreate) Save(ctx context.Context) (*CommissionStatement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommissionStatementCreate) SaveX(ctx context.Context) *CommissionStatement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionStatementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionStatementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommissionStatementCreate) defaults() {
	if _, ok := _c.mutation.ExpectedTotal(); !ok {
		v := commissionstatement.DefaultExpectedTotal
		_c.mutation.SetExpectedTotal(v)
	}
	if _, ok := _c.mutation.PaidTotal(); !ok {
		v := commissionstatement.DefaultPaidTotal
		_c.mutation.SetPaidTotal(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := commissionstatement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commissionstatement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := commissionstatement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := commissionstatement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommissionStatementCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "CommissionStatement.agent_id"`)}
	}
	if _, ok := _c.mutation.InsurerID(); !ok {
		return &ValidationError{Name: "insurer_id", err: errors.New(`ent: missing required field "CommissionStatement.insurer_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "CommissionStatement.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := commissionstatement.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "CommissionStatement.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedTotal(); !ok {
		return &ValidationError{Name: "expected_total", err: errors.New(`ent: missing required field "CommissionStatement.expected_total"`)}
	}
	if _, ok := _c.mutation.PaidTotal(); !ok {
		return &ValidationError{Name: "paid_total", err: errors.New(`ent: missing required field "CommissionStatement.paid_total"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CommissionStatement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := commissionstatement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommissionStatement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommissionStatement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CommissionStatement.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "CommissionStatement.agent"`)}
	}
	if len(_c.mutation.InsurerIDs()) == 0 {
		return &ValidationError{Name: "insurer", err: errors.New(`ent: missing required edge "CommissionStatement.insurer"`)}
	}
	return nil
}

func (_c *CommissionStatementCreate) sqlSave(ctx context.Context) (*CommissionStatement, error) {
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

func (_c *CommissionStatementCreate) createSpec() (*CommissionStatement, *sqlgraph.CreateSpec) {
	var (
		_node = &CommissionStatement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commissionstatement.Table, sqlgraph.NewFieldSpec(commissionstatement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(commissionstatement.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.ExpectedTotal(); ok {
		_spec.SetField(commissionstatement.FieldExpectedTotal, field.TypeString, value)
		_node.ExpectedTotal = value
	}
	if value, ok := _c.mutation.PaidTotal(); ok {
		_spec.SetField(commissionstatement.FieldPaidTotal, field.TypeString, value)
		_node.PaidTotal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commissionstatement.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commissionstatement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionstatement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionstatement.AgentTable,
			Columns: []string{commissionstatement.AgentColumn},
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
	if nodes := _c.mutation.InsurerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionstatement.InsurerTable,
			Columns: []string{commissionstatement.InsurerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insurer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InsurerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   commissionstatement.LinesTable,
			Columns: []string{commissionstatement.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommissionStatementCreateBulk is the builder for creating many CommissionStatement entities in bulk.
type CommissionStatementCreateBulk struct {
	config
	err      error
	builders []*CommissionStatementCreate
}

// Save creates the CommissionStatement entities in the database.
func (_c *CommissionStatementCreateBulk) Save(ctx context.Context) ([]*CommissionStatement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommissionStatement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommissionStatementMutation)
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
func (_c *CommissionStatementCreateBulk) SaveX(ctx context.Context) []*CommissionStatement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionStatementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionStatementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
