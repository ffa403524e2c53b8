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
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// CommissionLineUpdate is the builder for updating CommissionLine entities.
type CommissionLineUpdate struct {
	config
	hooks    []Hook
	mutation *CommissionLineMutation
}

// Where appends a list predicates to the CommissionLineUpdate builder.
func (_u *CommissionLineUpdate) Where(ps ...predicate.CommissionLine) *CommissionLineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatementID sets the "statement_id" field.
func (_u *CommissionLineUpdate) SetStatementID(v uuid.UUID) *CommissionLineUpdate {
	_u.mutation.SetStatementID(v)
	return _u
}

// SetNillableStatementID sets the "statement_id" field if the given value is not nil.
func (_u *CommissionLineUpdate) SetNillableStatementID(v *uuid.UUID) *CommissionLineUpdate {
	if v != nil {
		_u.SetStatementID(*v)
	}
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *CommissionLineUpdate) SetPolicyNumber(v string) *CommissionLineUpdate {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *CommissionLineUpdate) SetNillablePolicyNumber(v *string) *CommissionLineUpdate {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *CommissionLineUpdate) SetConcept(v string) *CommissionLineUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *CommissionLineUpdate) SetNillableConcept(v *string) *CommissionLineUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *CommissionLineUpdate) ClearConcept() *CommissionLineUpdate {
	_u.mutation.ClearConcept()
	return _u
}

// SetExpectedAmount sets the "expected_amount" field.
func (_u *CommissionLineUpdate) SetExpectedAmount(v string) *CommissionLineUpdate {
	_u.mutation.SetExpectedAmount(v)
	return _u
}

// SetNillableExpectedAmount sets the "expected_amount" field if the given value is not nil.
func (_u *CommissionLineUpdate) SetNillableExpectedAmount(v *string) *CommissionLineUpdate {
	if v != nil {
		_u.SetExpectedAmount(*v)
	}
	return _u
}

// SetPaidAmount sets the "paid_amount" field.
func (_u *CommissionLineUpdate) SetPaidAmount(v string) *CommissionLineUpdate {
	_u.mutation.SetPaidAmount(v)
	return _u
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_u *CommissionLineUpdate) SetNillablePaidAmount(v *string) *CommissionLineUpdate {
	if v != nil {
		_u.SetPaidAmount(*v)
	}
	return _u
}

// SetStatement sets the "statement" edge to the CommissionStatement entity.
func (_u *CommissionLineUpdate) SetStatement(v *CommissionStatement) *CommissionLineUpdate {
	return _u.SetStatementID(v.ID)
}

// Mutation returns the CommissionLineMutation object of the builder.
func (_u *CommissionLineUpdate) Mutation() *CommissionLineMutation {
	return _u.mutation
}

// ClearStatement clears the "statement" edge to the CommissionStatement entity.
func (_u *CommissionLineUpdate) ClearStatement() *CommissionLineUpdate {
	_u.mutation.ClearStatement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommissionLineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionLineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommissionLineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionLineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionLineUpdate) check() error {
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := commissionline.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "CommissionLine.policy_number": %w`, err)}
		}
	}
	if _u.mutation.StatementCleared() && len(_u.mutation.StatementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommissionLine.statement"`)
	}
	return nil
}

func (_u *CommissionLineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionline.Table, commissionline.Columns, sqlgraph.NewFieldSpec(commissionline.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(commissionline.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(commissionline.FieldConcept, field.TypeString, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(commissionline.FieldConcept, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedAmount(); ok {
		_spec.SetField(commissionline.FieldExpectedAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaidAmount(); ok {
		_spec.SetField(commissionline.FieldPaidAmount, field.TypeString, value)
	}
	if _u.mutation.StatementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommissionLineUpdateOne is the builder for updating a single CommissionLine entity.
type CommissionLineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommissionLineMutation
}

// SetStatementID sets the "statement_id" field.
func (_u *CommissionLineUpdateOne) SetStatementID(v uuid.UUID) *CommissionLineUpdateOne {
	_u.mutation.SetStatementID(v)
	return _u
}

// SetNillableStatementID sets the "statement_id" field if the given value is not nil.
func (_u *CommissionLineUpdateOne) SetNillableStatementID(v *uuid.UUID) *CommissionLineUpdateOne {
	if v != nil {
		_u.SetStatementID(*v)
	}
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *CommissionLineUpdateOne) SetPolicyNumber(v string) *CommissionLineUpdateOne {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *CommissionLineUpdateOne) SetNillablePolicyNumber(v *string) *CommissionLineUpdateOne {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *CommissionLineUpdateOne) SetConcept(v string) *CommissionLineUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *CommissionLineUpdateOne) SetNillableConcept(v *string) *CommissionLineUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *CommissionLineUpdateOne) ClearConcept() *CommissionLineUpdateOne {
	_u.mutation.ClearConcept()
	return _u
}

// SetExpectedAmount sets the "expected_amount" field.
func (_u *CommissionLineUpdateOne) SetExpectedAmount(v string) *CommissionLineUpdateOne {
	_u.mutation.SetExpectedAmount(v)
	return _u
}

// SetNillableExpectedAmount sets the "expected_amount" field if the given value is not nil.
func (_u *CommissionLineUpdateOne) SetNillableExpectedAmount(v *string) *CommissionLineUpdateOne {
	if v != nil {
		_u.SetExpectedAmount(*v)
	}
	return _u
}

// SetPaidAmount sets the "paid_amount" field.
func (_u *CommissionLineUpdateOne) SetPaidAmount(v string) *CommissionLineUpdateOne {
	_u.mutation.SetPaidAmount(v)
	return _u
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_u *CommissionLineUpdateOne) SetNillablePaidAmount(v *string) *CommissionLineUpdateOne {
	if v != nil {
		_u.SetPaidAmount(*v)
	}
	return _u
}

// SetStatement sets the "statement" edge to the CommissionStatement entity.
func (_u *CommissionLineUpdateOne) SetStatement(v *CommissionStatement) *CommissionLineUpdateOne {
	return _u.SetStatementID(v.ID)
}

// Mutation returns the CommissionLineMutation object of the builder.
func (_u *CommissionLineUpdateOne) Mutation() *CommissionLineMutation {
	return _u.mutation
}

// ClearStatement clears the "statement" edge to the CommissionStatement entity.
func (_u *CommissionLineUpdateOne) ClearStatement() *CommissionLineUpdateOne {
	_u.mutation.ClearStatement()
	return _u
}

// Where appends a list predicates to the CommissionLineUpdate builder.
func (_u *CommissionLineUpdateOne) Where(ps ...predicate.CommissionLine) *CommissionLineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommissionLineUpdateOne) Select(field string, fields ...string) *CommissionLineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommissionLine entity.
func (_u *CommissionLineUpdateOne) Save(ctx context.Context) (*CommissionLine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionLineUpdateOne) SaveX(ctx context.Context) *CommissionLine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommissionLineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionLineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionLineUpdateOne) check() error {
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := commissionline.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "CommissionLine.policy_number": %w`, err)}
		}
	}
	if _u.mutation.StatementCleared() && len(_u.mutation.StatementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommissionLine.statement"`)
	}
	return nil
}

func (_u *CommissionLineUpdateOne) sqlSave(ctx context.Context) (_node *CommissionLine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionline.Table, commissionline.Columns, sqlgraph.NewFieldSpec(commissionline.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommissionLine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commissionline.FieldID)
		for _, f := range fields {
			if !commissionline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commissionline.FieldID {
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
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(commissionline.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(commissionline.FieldConcept, field.TypeString, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(commissionline.FieldConcept, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedAmount(); ok {
		_spec.SetField(commissionline.FieldExpectedAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaidAmount(); ok {
		_spec.SetField(commissionline.FieldPaidAmount, field.TypeString, value)
	}
	if _u.mutation.StatementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CommissionLine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
