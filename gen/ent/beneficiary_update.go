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
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// BeneficiaryUpdate is the builder for updating Beneficiary entities.
type BeneficiaryUpdate struct {
	config
	hooks    []Hook
	mutation *BeneficiaryMutation
}

// Where appends a list predicates to the BeneficiaryUpdate builder.
func (_u *BeneficiaryUpdate) Where(ps ...predicate.Beneficiary) *BeneficiaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPolicyID sets the "policy_id" field.
func (_u *BeneficiaryUpdate) SetPolicyID(v uuid.UUID) *BeneficiaryUpdate {
	_u.mutation.SetPolicyID(v)
	return _u
}

// SetNillablePolicyID sets the "policy_id" field if the given value is not nil.
func (_u *BeneficiaryUpdate) SetNillablePolicyID(v *uuid.UUID) *BeneficiaryUpdate {
	if v != nil {
		_u.SetPolicyID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BeneficiaryUpdate) SetName(v string) *BeneficiaryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BeneficiaryUpdate) SetNillableName(v *string) *BeneficiaryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *BeneficiaryUpdate) SetPercentage(v float64) *BeneficiaryUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *BeneficiaryUpdate) SetNillablePercentage(v *float64) *BeneficiaryUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *BeneficiaryUpdate) AddPercentage(v float64) *BeneficiaryUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// ClearPercentage clears the value of the "percentage" field.
func (_u *BeneficiaryUpdate) ClearPercentage() *BeneficiaryUpdate {
	_u.mutation.ClearPercentage()
	return _u
}

// SetPolicy sets the "policy" edge to the Poliza entity.
func (_u *BeneficiaryUpdate) SetPolicy(v *Poliza) *BeneficiaryUpdate {
	return _u.SetPolicyID(v.ID)
}

// Mutation returns the BeneficiaryMutation object of the builder.
func (_u *BeneficiaryUpdate) Mutation() *BeneficiaryMutation {
	return _u.mutation
}

// ClearPolicy clears the "policy" edge to the Poliza entity.
func (_u *BeneficiaryUpdate) ClearPolicy() *BeneficiaryUpdate {
	_u.mutation.ClearPolicy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BeneficiaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeneficiaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BeneficiaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeneficiaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BeneficiaryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := beneficiary.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Beneficiary.name": %w`, err)}
		}
	}
	if _u.mutation.PolicyCleared() && len(_u.mutation.PolicyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Beneficiary.policy"`)
	}
	return nil
}

func (_u *BeneficiaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(beneficiary.Table, beneficiary.Columns, sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(beneficiary.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(beneficiary.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(beneficiary.FieldPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.PercentageCleared() {
		_spec.ClearField(beneficiary.FieldPercentage, field.TypeFloat64)
	}
	if _u.mutation.PolicyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{beneficiary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BeneficiaryUpdateOne is the builder for updating a single Beneficiary entity.
type BeneficiaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BeneficiaryMutation
}

// SetPolicyID sets the "policy_id" field.
func (_u *BeneficiaryUpdateOne) SetPolicyID(v uuid.UUID) *BeneficiaryUpdateOne {
	_u.mutation.SetPolicyID(v)
	return _u
}

// SetNillablePolicyID sets the "policy_id" field if the given value is not nil.
func (_u *BeneficiaryUpdateOne) SetNillablePolicyID(v *uuid.UUID) *BeneficiaryUpdateOne {
	if v != nil {
		_u.SetPolicyID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BeneficiaryUpdateOne) SetName(v string) *BeneficiaryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BeneficiaryUpdateOne) SetNillableName(v *string) *BeneficiaryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *BeneficiaryUpdateOne) SetPercentage(v float64) *BeneficiaryUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *BeneficiaryUpdateOne) SetNillablePercentage(v *float64) *BeneficiaryUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *BeneficiaryUpdateOne) AddPercentage(v float64) *BeneficiaryUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// ClearPercentage clears the value of the "percentage" field.
func (_u *BeneficiaryUpdateOne) ClearPercentage() *BeneficiaryUpdateOne {
	_u.mutation.ClearPercentage()
	return _u
}

// SetPolicy sets the "policy" edge to the Poliza entity.
func (_u *BeneficiaryUpdateOne) SetPolicy(v *Poliza) *BeneficiaryUpdateOne {
	return _u.SetPolicyID(v.ID)
}

// Mutation returns the BeneficiaryMutation object of the builder.
func (_u *BeneficiaryUpdateOne) Mutation() *BeneficiaryMutation {
	return _u.mutation
}

// ClearPolicy clears the "policy" edge to the Poliza entity.
func (_u *BeneficiaryUpdateOne) ClearPolicy() *BeneficiaryUpdateOne {
	_u.mutation.ClearPolicy()
	return _u
}

// Where appends a list predicates to the BeneficiaryUpdate builder.
func (_u *BeneficiaryUpdateOne) Where(ps ...predicate.Beneficiary) *BeneficiaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BeneficiaryUpdateOne) Select(field string, fields ...string) *BeneficiaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Beneficiary entity.
func (_u *BeneficiaryUpdateOne) Save(ctx context.Context) (*Beneficiary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BeneficiaryUpdateOne) SaveX(ctx context.Context) *Beneficiary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BeneficiaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BeneficiaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BeneficiaryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := beneficiary.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Beneficiary.name": %w`, err)}
		}
	}
	if _u.mutation.PolicyCleared() && len(_u.mutation.PolicyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Beneficiary.policy"`)
	}
	return nil
}

func (_u *BeneficiaryUpdateOne) sqlSave(ctx context.Context) (_node *Beneficiary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(beneficiary.Table, beneficiary.Columns, sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Beneficiary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, beneficiary.FieldID)
		for _, f := range fields {
			if !beneficiary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != beneficiary.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(beneficiary.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(beneficiary.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(beneficiary.FieldPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.PercentageCleared() {
		_spec.ClearField(beneficiary.FieldPercentage, field.TypeFloat64)
	}
	if _u.mutation.PolicyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Beneficiary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{beneficiary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
