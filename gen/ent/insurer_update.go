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
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// InsurerUpdate is the builder for updating Insurer entities.
type InsurerUpdate struct {
	config
	hooks    []Hook
	mutation *InsurerMutation
}

// Where appends a list predicates to the InsurerUpdate builder.
func (_u *InsurerUpdate) Where(ps ...predicate.Insurer) *InsurerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *InsurerUpdate) SetName(v string) *InsurerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InsurerUpdate) SetNillableName(v *string) *InsurerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *InsurerUpdate) SetActive(v bool) *InsurerUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *InsurerUpdate) SetNillableActive(v *bool) *InsurerUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_u *InsurerUpdate) AddPolicyIDs(ids ...uuid.UUID) *InsurerUpdate {
	_u.mutation.AddPolicyIDs(ids...)
	return _u
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_u *InsurerUpdate) AddPolicies(v ...*Poliza) *InsurerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the CommissionStatement entity by IDs.
func (_u *InsurerUpdate) AddStatementIDs(ids ...uuid.UUID) *InsurerUpdate {
	_u.mutation.AddStatementIDs(ids...)
	return _u
}

// AddStatements adds the "statements" edges to the CommissionStatement entity.
func (_u *InsurerUpdate) AddStatements(v ...*CommissionStatement) *InsurerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatementIDs(ids...)
}

// Mutation returns the InsurerMutation object of the builder.
func (_u *InsurerUpdate) Mutation() *InsurerMutation {
	return _u.mutation
}

// ClearPolicies clears all "policies" edges to the Poliza entity.
func (_u *InsurerUpdate) ClearPolicies() *InsurerUpdate {
	_u.mutation.ClearPolicies()
	return _u
}

// RemovePolicyIDs removes the "policies" edge to Poliza entities by IDs.
func (_u *InsurerUpdate) RemovePolicyIDs(ids ...uuid.UUID) *InsurerUpdate {
	_u.mutation.RemovePolicyIDs(ids...)
	return _u
}

// RemovePolicies removes "policies" edges to Poliza entities.
func (_u *InsurerUpdate) RemovePolicies(v ...*Poliza) *InsurerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyIDs(ids...)
}

// ClearStatements clears all "statements" edges to the CommissionStatement entity.
func (_u *InsurerUpdate) ClearStatements() *InsurerUpdate {
	_u.mutation.ClearStatements()
	return _u
}

// RemoveStatementIDs removes the "statements" edge to CommissionStatement entities by IDs.
func (_u *InsurerUpdate) RemoveStatementIDs(ids ...uuid.UUID) *InsurerUpdate {
	_u.mutation.RemoveStatementIDs(ids...)
	return _u
}

// RemoveStatements removes "statements" edges to CommissionStatement entities.
func (_u *InsurerUpdate) RemoveStatements(v ...*CommissionStatement) *InsurerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsurerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsurerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsurerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsurerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsurerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := insurer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Insurer.name": %w`, err)}
		}
	}
	return nil
}

func (_u *InsurerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insurer.Table, insurer.Columns, sqlgraph.NewFieldSpec(insurer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(insurer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(insurer.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPoliciesIDs(); len(nodes) > 0 && !_u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PoliciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatementsIDs(); len(nodes) > 0 && !_u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insurer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsurerUpdateOne is the builder for updating a single Insurer entity.
type InsurerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsurerMutation
}

// SetName sets the "name" field.
func (_u *InsurerUpdateOne) SetName(v string) *InsurerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InsurerUpdateOne) SetNillableName(v *string) *InsurerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *InsurerUpdateOne) SetActive(v bool) *InsurerUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *InsurerUpdateOne) SetNillableActive(v *bool) *InsurerUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_u *InsurerUpdateOne) AddPolicyIDs(ids ...uuid.UUID) *InsurerUpdateOne {
	_u.mutation.AddPolicyIDs(ids...)
	return _u
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_u *InsurerUpdateOne) AddPolicies(v ...*Poliza) *InsurerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the CommissionStatement entity by IDs.
func (_u *InsurerUpdateOne) AddStatementIDs(ids ...uuid.UUID) *InsurerUpdateOne {
	_u.mutation.AddStatementIDs(ids...)
	return _u
}

// AddStatements adds the "statements" edges to the CommissionStatement entity.
func (_u *InsurerUpdateOne) AddStatements(v ...*CommissionStatement) *InsurerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatementIDs(ids...)
}

// Mutation returns the InsurerMutation object of the builder.
func (_u *InsurerUpdateOne) Mutation() *InsurerMutation {
	return _u.mutation
}

// ClearPolicies clears all "policies" edges to the Poliza entity.
func (_u *InsurerUpdateOne) ClearPolicies() *InsurerUpdateOne {
	_u.mutation.ClearPolicies()
	return _u
}

// RemovePolicyIDs removes the "policies" edge to Poliza entities by IDs.
func (_u *InsurerUpdateOne) RemovePolicyIDs(ids ...uuid.UUID) *InsurerUpdateOne {
	_u.mutation.RemovePolicyIDs(ids...)
	return _u
}

// RemovePolicies removes "policies" edges to Poliza entities.
func (_u *InsurerUpdateOne) RemovePolicies(v ...*Poliza) *InsurerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyIDs(ids...)
}

// ClearStatements clears all "statements" edges to the CommissionStatement entity.
func (_u *InsurerUpdateOne) ClearStatements() *InsurerUpdateOne {
	_u.mutation.ClearStatements()
	return _u
}

// RemoveStatementIDs removes the "statements" edge to CommissionStatement entities by IDs.
func (_u *InsurerUpdateOne) RemoveStatementIDs(ids ...uuid.UUID) *InsurerUpdateOne {
	_u.mutation.RemoveStatementIDs(ids...)
	return _u
}

// RemoveStatements removes "statements" edges to CommissionStatement entities.
func (_u *InsurerUpdateOne) RemoveStatements(v ...*CommissionStatement) *InsurerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatementIDs(ids...)
}

// Where appends a list predicates to the InsurerUpdate builder.
func (_u *InsurerUpdateOne) Where(ps ...predicate.Insurer) *InsurerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsurerUpdateOne) Select(field string, fields ...string) *InsurerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insurer entity.
func (_u *InsurerUpdateOne) Save(ctx context.Context) (*Insurer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsurerUpdateOne) SaveX(ctx context.Context) *Insurer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsurerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsurerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsurerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := insurer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Insurer.name": %w`, err)}
		}
	}
	return nil
}

func (_u *InsurerUpdateOne) sqlSave(ctx context.Context) (_node *Insurer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insurer.Table, insurer.Columns, sqlgraph.NewFieldSpec(insurer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insurer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insurer.FieldID)
		for _, f := range fields {
			if !insurer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insurer.FieldID {
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
		_spec.SetField(insurer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(insurer.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPoliciesIDs(); len(nodes) > 0 && !_u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PoliciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatementsIDs(); len(nodes) > 0 && !_u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Insurer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insurer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
