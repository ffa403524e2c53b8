// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// CommissionStatementUpdate is the builder for updating CommissionStatement entities.
type CommissionStatementUpdate struct {
	config
	hooks    []Hook
	mutation *CommissionStatementMutation
}

// Where appends a list predicates to the CommissionStatementUpdate builder.
func (_u *CommissionStatementUpdate) Where(ps ...predicate.CommissionStatement) *CommissionStatementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CommissionStatementUpdate) SetAgentID(v uuid.UUID) *CommissionStatementUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CommissionStatementUpdate) SetNillableAgentID(v *uuid.UUID) *CommissionStatementUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetInsurerID sets the "insurer_id" field.
func (_u *CommissionStatementUpdate) SetInsurerID(v uuid.UUID) *CommissionStatementUpdate {
	_u.mutation.SetInsurerID(v)
	return _u
}

// SetNillableInsurerID sets the "insurer_id" field if the given value is not nil.
func (_u *CommissionStatementUpdate) SetNillableInsurerID(v *uuid.UUID) *CommissionStatementUpdate {
	if v != nil {
		_u.SetInsurerID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *CommissionStatementUpdate) SetPeriod(v string) *CommissionStatementUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *CommissionStatementUpdate) SetNillablePeriod(v *string) *CommissionStatementUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetExpectedTotal sets the "expected_total" field.
func (_u *CommissionStatementUpdate) SetExpectedTotal(v string) *CommissionStatementUpdate {
	_u.mutation.SetExpectedTotal(v)
	return _u
}

// SetNillableExpectedTotal sets the "expected_total" field if the given value is not nil.
func (_u *CommissionStatementUpdate) SetNillableExpectedTotal(v *string) *CommissionStatementUpdate {
	if v != nil {
		_u.SetExpectedTotal(*v)
	}
	return _u
}

// SetPaidTotal sets the "paid_total" field.
func (_u *CommissionStatementUpdate) SetPaidTotal(v string) *CommissionStatementUpdate {
	_u.mutation.SetPaidTotal(v)
	return _u
}

// SetNillablePaidTotal sets the "paid_total" field if the given value is not nil.
func (_u *CommissionStatementUpdate) SetNillablePaidTotal(v *string) *CommissionStatementUpdate {
	if v != nil {
		_u.SetPaidTotal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionStatementUpdate) SetStatus(v string) *CommissionStatementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionStatementUpdate) SetNillableStatus(v *string) *CommissionStatementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CommissionStatementUpdate) SetCreatedAt(v time.Time) *CommissionStatementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CommissionStatementUpdate) SetNillableCreatedAt(v *time.Time) *CommissionStatementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommissionStatementUpdate) SetUpdatedAt(v time.Time) *CommissionStatementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *CommissionStatementUpdate) SetAgent(v *Agent) *CommissionStatementUpdate {
	return _u.SetAgentID(v.ID)
}

// SetInsurer sets the "insurer" edge to the Insurer entity.
func (_u *CommissionStatementUpdate) SetInsurer(v *Insurer) *CommissionStatementUpdate {
	return _u.SetInsurerID(v.ID)
}

// AddLineIDs adds the "lines" edge to the CommissionLine entity by IDs.
func (_u *CommissionStatementUpdate) AddLineIDs(ids ...uuid.UUID) *CommissionStatementUpdate {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the CommissionLine entity.
func (_u *CommissionStatementUpdate) AddLines(v ...*CommissionLine) *CommissionStatementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the CommissionStatementMutation object of the builder.
func (_u *CommissionStatementUpdate) Mutation() *CommissionStatementMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *CommissionStatementUpdate) ClearAgent() *CommissionStatementUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearInsurer clears the "insurer" edge to the Insurer entity.
func (_u *CommissionStatementUpdate) ClearInsurer() *CommissionStatementUpdate {
	_u.mutation.ClearInsurer()
	return _u
}

// ClearLines clears all "lines" edges to the CommissionLine entity.
func (_u *CommissionStatementUpdate) ClearLines() *CommissionStatementUpdate {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to CommissionLine entities by IDs.
func (_u *CommissionStatementUpdate) RemoveLineIDs(ids ...uuid.UUID) *CommissionStatementUpdate {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to CommissionLine entities.
func (_u *CommissionStatementUpdate) RemoveLines(v ...*CommissionLine) *CommissionStatementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommissionStatementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionStatementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommissionStatementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionStatementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommissionStatementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commissionstatement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionStatementUpdate) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := commissionstatement.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "CommissionStatement.period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commissionstatement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommissionStatement.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommissionStatement.agent"`)
	}
	if _u.mutation.InsurerCleared() && len(_u.mutation.InsurerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommissionStatement.insurer"`)
	}
	return nil
}

func (_u *CommissionStatementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionstatement.Table, commissionstatement.Columns, sqlgraph.NewFieldSpec(commissionstatement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(commissionstatement.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedTotal(); ok {
		_spec.SetField(commissionstatement.FieldExpectedTotal, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaidTotal(); ok {
		_spec.SetField(commissionstatement.FieldPaidTotal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commissionstatement.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(commissionstatement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionstatement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsurerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsurerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionstatement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommissionStatementUpdateOne is the builder for updating a single CommissionStatement entity.
type CommissionStatementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommissionStatementMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *CommissionStatementUpdateOne) SetAgentID(v uuid.UUID) *CommissionStatementUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CommissionStatementUpdateOne) SetNillableAgentID(v *uuid.UUID) *CommissionStatementUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetInsurerID sets the "insurer_id" field.
func (_u *CommissionStatementUpdateOne) SetInsurerID(v uuid.UUID) *CommissionStatementUpdateOne {
	_u.mutation.SetInsurerID(v)
	return _u
}

// SetNillableInsurerID sets the "insurer_id" field if the given value is not nil.
func (_u *CommissionStatementUpdateOne) SetNillableInsurerID(v *uuid.UUID) *CommissionStatementUpdateOne {
	if v != nil {
		_u.SetInsurerID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *CommissionStatementUpdateOne) SetPeriod(v string) *CommissionStatementUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *CommissionStatementUpdateOne) SetNillablePeriod(v *string) *CommissionStatementUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetExpectedTotal sets the "expected_total" field.
func (_u *CommissionStatementUpdateOne) SetExpectedTotal(v string) *CommissionStatementUpdateOne {
	_u.mutation.SetExpectedTotal(v)
	return _u
}

// SetNillableExpectedTotal sets the "expected_total" field if the given value is not nil.
func (_u *CommissionStatementUpdateOne) SetNillableExpectedTotal(v *string) *CommissionStatementUpdateOne {
	if v != nil {
		_u.SetExpectedTotal(*v)
	}
	return _u
}

// SetPaidTotal sets the "paid_total" field.
func (_u *CommissionStatementUpdateOne) SetPaidTotal(v string) *CommissionStatementUpdateOne {
	_u.mutation.SetPaidTotal(v)
	return _u
}

// SetNillablePaidTotal sets the "paid_total" field if the given value is not nil.
func (_u *CommissionStatementUpdateOne) SetNillablePaidTotal(v *string) *CommissionStatementUpdateOne {
	if v != nil {
		_u.SetPaidTotal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionStatementUpdateOne) SetStatus(v string) *CommissionStatementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionStatementUpdateOne) SetNillableStatus(v *string) *CommissionStatementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CommissionStatementUpdateOne) SetCreatedAt(v time.Time) *CommissionStatementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CommissionStatementUpdateOne) SetNillableCreatedAt(v *time.Time) *CommissionStatementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommissionStatementUpdateOne) SetUpdatedAt(v time.Time) *CommissionStatementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *CommissionStatementUpdateOne) SetAgent(v *Agent) *CommissionStatementUpdateOne {
	return _u.SetAgentID(v.ID)
}

// SetInsurer sets the "insurer" edge to the Insurer entity.
func (_u *CommissionStatementUpdateOne) SetInsurer(v *Insurer) *CommissionStatementUpdateOne {
	return _u.SetInsurerID(v.ID)
}

// AddLineIDs adds the "lines" edge to the CommissionLine entity by IDs.
func (_u *CommissionStatementUpdateOne) AddLineIDs(ids ...uuid.UUID) *CommissionStatementUpdateOne {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the CommissionLine entity.
func (_u *CommissionStatementUpdateOne) AddLines(v ...*CommissionLine) *CommissionStatementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the CommissionStatementMutation object of the builder.
func (_u *CommissionStatementUpdateOne) Mutation() *CommissionStatementMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *CommissionStatementUpdateOne) ClearAgent() *CommissionStatementUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearInsurer clears the "insurer" edge to the Insurer entity.
func (_u *CommissionStatementUpdateOne) ClearInsurer() *CommissionStatementUpdateOne {
	_u.mutation.ClearInsurer()
	return _u
}

// ClearLines clears all "lines" edges to the CommissionLine entity.
func (_u *CommissionStatementUpdateOne) ClearLines() *CommissionStatementUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to CommissionLine entities by IDs.
func (_u *CommissionStatementUpdateOne) RemoveLineIDs(ids ...uuid.UUID) *CommissionStatementUpdateOne {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to CommissionLine entities.
func (_u *CommissionStatementUpdateOne) RemoveLines(v ...*CommissionLine) *CommissionStatementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Where appends a list predicates to the CommissionStatementUpdate builder.
func (_u *CommissionStatementUpdateOne) Where(ps ...predicate.CommissionStatement) *CommissionStatementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommissionStatementUpdateOne) Select(field string, fields ...string) *CommissionStatementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommissionStatement entity.
func (_u *CommissionStatementUpdateOne) Save(ctx context.Context) (*CommissionStatement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionStatementUpdateOne) SaveX(ctx context.Context) *CommissionStatement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommissionStatementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionStatementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommissionStatementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commissionstatement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionStatementUpdateOne) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := commissionstatement.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "CommissionStatement.period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commissionstatement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommissionStatement.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommissionStatement.agent"`)
	}
	if _u.mutation.InsurerCleared() && len(_u.mutation.InsurerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommissionStatement.insurer"`)
	}
	return nil
}

func (_u *CommissionStatementUpdateOne) sqlSave(ctx context.Context) (_node *CommissionStatement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionstatement.Table, commissionstatement.Columns, sqlgraph.NewFieldSpec(commissionstatement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommissionStatement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commissionstatement.FieldID)
		for _, f := range fields {
			if !commissionstatement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commissionstatement.FieldID {
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
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(commissionstatement.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedTotal(); ok {
		_spec.SetField(commissionstatement.FieldExpectedTotal, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaidTotal(); ok {
		_spec.SetField(commissionstatement.FieldPaidTotal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commissionstatement.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(commissionstatement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionstatement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsurerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsurerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CommissionStatement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionstatement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
