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
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ClienteUpdate is the builder for updating Cliente entities.
type ClienteUpdate struct {
	config
	hooks    []Hook
	mutation *ClienteMutation
}

// Where appends a list predicates to the ClienteUpdate builder.
func (_u *ClienteUpdate) Where(ps ...predicate.Cliente) *ClienteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ClienteUpdate) SetAgentID(v uuid.UUID) *ClienteUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableAgentID(v *uuid.UUID) *ClienteUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ClienteUpdate) SetFirstName(v string) *ClienteUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableFirstName(v *string) *ClienteUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetMiddleName sets the "middle_name" field.
func (_u *ClienteUpdate) SetMiddleName(v string) *ClienteUpdate {
	_u.mutation.SetMiddleName(v)
	return _u
}

// SetNillableMiddleName sets the "middle_name" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableMiddleName(v *string) *ClienteUpdate {
	if v != nil {
		_u.SetMiddleName(*v)
	}
	return _u
}

// ClearMiddleName clears the value of the "middle_name" field.
func (_u *ClienteUpdate) ClearMiddleName() *ClienteUpdate {
	_u.mutation.ClearMiddleName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ClienteUpdate) SetLastName(v string) *ClienteUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableLastName(v *string) *ClienteUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetSecondLastName sets the "second_last_name" field.
func (_u *ClienteUpdate) SetSecondLastName(v string) *ClienteUpdate {
	_u.mutation.SetSecondLastName(v)
	return _u
}

// SetNillableSecondLastName sets the "second_last_name" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableSecondLastName(v *string) *ClienteUpdate {
	if v != nil {
		_u.SetSecondLastName(*v)
	}
	return _u
}

// ClearSecondLastName clears the value of the "second_last_name" field.
func (_u *ClienteUpdate) ClearSecondLastName() *ClienteUpdate {
	_u.mutation.ClearSecondLastName()
	return _u
}

// SetRfc sets the "rfc" field.
func (_u *ClienteUpdate) SetRfc(v string) *ClienteUpdate {
	_u.mutation.SetRfc(v)
	return _u
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableRfc(v *string) *ClienteUpdate {
	if v != nil {
		_u.SetRfc(*v)
	}
	return _u
}

// ClearRfc clears the value of the "rfc" field.
func (_u *ClienteUpdate) ClearRfc() *ClienteUpdate {
	_u.mutation.ClearRfc()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClienteUpdate) SetEmail(v string) *ClienteUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableEmail(v *string) *ClienteUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClienteUpdate) ClearEmail() *ClienteUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClienteUpdate) SetPhone(v string) *ClienteUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillablePhone(v *string) *ClienteUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClienteUpdate) ClearPhone() *ClienteUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClienteUpdate) SetCreatedAt(v time.Time) *ClienteUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClienteUpdate) SetNillableCreatedAt(v *time.Time) *ClienteUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClienteUpdate) SetUpdatedAt(v time.Time) *ClienteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *ClienteUpdate) SetAgent(v *Agent) *ClienteUpdate {
	return _u.SetAgentID(v.ID)
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_u *ClienteUpdate) AddPolicyIDs(ids ...uuid.UUID) *ClienteUpdate {
	_u.mutation.AddPolicyIDs(ids...)
	return _u
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_u *ClienteUpdate) AddPolicies(v ...*Poliza) *ClienteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyIDs(ids...)
}

// Mutation returns the ClienteMutation object of the builder.
func (_u *ClienteUpdate) Mutation() *ClienteMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *ClienteUpdate) ClearAgent() *ClienteUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearPolicies clears all "policies" edges to the Poliza entity.
func (_u *ClienteUpdate) ClearPolicies() *ClienteUpdate {
	_u.mutation.ClearPolicies()
	return _u
}

// RemovePolicyIDs removes the "policies" edge to Poliza entities by IDs.
func (_u *ClienteUpdate) RemovePolicyIDs(ids ...uuid.UUID) *ClienteUpdate {
	_u.mutation.RemovePolicyIDs(ids...)
	return _u
}

// RemovePolicies removes "policies" edges to Poliza entities.
func (_u *ClienteUpdate) RemovePolicies(v ...*Poliza) *ClienteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClienteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClienteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClienteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClienteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClienteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cliente.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClienteUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := cliente.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Cliente.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := cliente.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Cliente.last_name": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cliente.agent"`)
	}
	return nil
}

func (_u *ClienteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cliente.Table, cliente.Columns, sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(cliente.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MiddleName(); ok {
		_spec.SetField(cliente.FieldMiddleName, field.TypeString, value)
	}
	if _u.mutation.MiddleNameCleared() {
		_spec.ClearField(cliente.FieldMiddleName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(cliente.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondLastName(); ok {
		_spec.SetField(cliente.FieldSecondLastName, field.TypeString, value)
	}
	if _u.mutation.SecondLastNameCleared() {
		_spec.ClearField(cliente.FieldSecondLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Rfc(); ok {
		_spec.SetField(cliente.FieldRfc, field.TypeString, value)
	}
	if _u.mutation.RfcCleared() {
		_spec.ClearField(cliente.FieldRfc, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(cliente.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(cliente.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(cliente.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(cliente.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cliente.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cliente.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPoliciesIDs(); len(nodes) > 0 && !_u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PoliciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cliente.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClienteUpdateOne is the builder for updating a single Cliente entity.
type ClienteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClienteMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ClienteUpdateOne) SetAgentID(v uuid.UUID) *ClienteUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableAgentID(v *uuid.UUID) *ClienteUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ClienteUpdateOne) SetFirstName(v string) *ClienteUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableFirstName(v *string) *ClienteUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetMiddleName sets the "middle_name" field.
func (_u *ClienteUpdateOne) SetMiddleName(v string) *ClienteUpdateOne {
	_u.mutation.SetMiddleName(v)
	return _u
}

// SetNillableMiddleName sets the "middle_name" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableMiddleName(v *string) *ClienteUpdateOne {
	if v != nil {
		_u.SetMiddleName(*v)
	}
	return _u
}

// ClearMiddleName clears the value of the "middle_name" field.
func (_u *ClienteUpdateOne) ClearMiddleName() *ClienteUpdateOne {
	_u.mutation.ClearMiddleName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ClienteUpdateOne) SetLastName(v string) *ClienteUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableLastName(v *string) *ClienteUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetSecondLastName sets the "second_last_name" field.
func (_u *ClienteUpdateOne) SetSecondLastName(v string) *ClienteUpdateOne {
	_u.mutation.SetSecondLastName(v)
	return _u
}

// SetNillableSecondLastName sets the "second_last_name" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableSecondLastName(v *string) *ClienteUpdateOne {
	if v != nil {
		_u.SetSecondLastName(*v)
	}
	return _u
}

// ClearSecondLastName clears the value of the "second_last_name" field.
func (_u *ClienteUpdateOne) ClearSecondLastName() *ClienteUpdateOne {
	_u.mutation.ClearSecondLastName()
	return _u
}

// SetRfc sets the "rfc" field.
func (_u *ClienteUpdateOne) SetRfc(v string) *ClienteUpdateOne {
	_u.mutation.SetRfc(v)
	return _u
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableRfc(v *string) *ClienteUpdateOne {
	if v != nil {
		_u.SetRfc(*v)
	}
	return _u
}

// ClearRfc clears the value of the "rfc" field.
func (_u *ClienteUpdateOne) ClearRfc() *ClienteUpdateOne {
	_u.mutation.ClearRfc()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClienteUpdateOne) SetEmail(v string) *ClienteUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableEmail(v *string) *ClienteUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClienteUpdateOne) ClearEmail() *ClienteUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClienteUpdateOne) SetPhone(v string) *ClienteUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillablePhone(v *string) *ClienteUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClienteUpdateOne) ClearPhone() *ClienteUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClienteUpdateOne) SetCreatedAt(v time.Time) *ClienteUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClienteUpdateOne) SetNillableCreatedAt(v *time.Time) *ClienteUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClienteUpdateOne) SetUpdatedAt(v time.Time) *ClienteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *ClienteUpdateOne) SetAgent(v *Agent) *ClienteUpdateOne {
	return _u.SetAgentID(v.ID)
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_u *ClienteUpdateOne) AddPolicyIDs(ids ...uuid.UUID) *ClienteUpdateOne {
	_u.mutation.AddPolicyIDs(ids...)
	return _u
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_u *ClienteUpdateOne) AddPolicies(v ...*Poliza) *ClienteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyIDs(ids...)
}

// Mutation returns the ClienteMutation object of the builder.
func (_u *ClienteUpdateOne) Mutation() *ClienteMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *ClienteUpdateOne) ClearAgent() *ClienteUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearPolicies clears all "policies" edges to the Poliza entity.
func (_u *ClienteUpdateOne) ClearPolicies() *ClienteUpdateOne {
	_u.mutation.ClearPolicies()
	return _u
}

// RemovePolicyIDs removes the "policies" edge to Poliza entities by IDs.
func (_u *ClienteUpdateOne) RemovePolicyIDs(ids ...uuid.UUID) *ClienteUpdateOne {
	_u.mutation.RemovePolicyIDs(ids...)
	return _u
}

// RemovePolicies removes "policies" edges to Poliza entities.
func (_u *ClienteUpdateOne) RemovePolicies(v ...*Poliza) *ClienteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyIDs(ids...)
}

// Where appends a list predicates to the ClienteUpdate builder.
func (_u *ClienteUpdateOne) Where(ps ...predicate.Cliente) *ClienteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClienteUpdateOne) Select(field string, fields ...string) *ClienteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Cliente entity.
func (_u *ClienteUpdateOne) Save(ctx context.Context) (*Cliente, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClienteUpdateOne) SaveX(ctx context.Context) *Cliente {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClienteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClienteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClienteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cliente.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClienteUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := cliente.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Cliente.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := cliente.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Cliente.last_name": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cliente.agent"`)
	}
	return nil
}

func (_u *ClienteUpdateOne) sqlSave(ctx context.Context) (_node *Cliente, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cliente.Table, cliente.Columns, sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Cliente.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cliente.FieldID)
		for _, f := range fields {
			if !cliente.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cliente.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(cliente.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MiddleName(); ok {
		_spec.SetField(cliente.FieldMiddleName, field.TypeString, value)
	}
	if _u.mutation.MiddleNameCleared() {
		_spec.ClearField(cliente.FieldMiddleName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(cliente.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondLastName(); ok {
		_spec.SetField(cliente.FieldSecondLastName, field.TypeString, value)
	}
	if _u.mutation.SecondLastNameCleared() {
		_spec.ClearField(cliente.FieldSecondLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Rfc(); ok {
		_spec.SetField(cliente.FieldRfc, field.TypeString, value)
	}
	if _u.mutation.RfcCleared() {
		_spec.ClearField(cliente.FieldRfc, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(cliente.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(cliente.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(cliente.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(cliente.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cliente.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cliente.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPoliciesIDs(); len(nodes) > 0 && !_u.mutation.PoliciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PoliciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Cliente{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cliente.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
