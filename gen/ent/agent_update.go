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
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/lead"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
	"github.com/insurtech-mx/polizas-crm/gen/ent/trackingentry"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *AgentUpdate) SetEmail(v string) *AgentUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEmail(v *string) *AgentUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRfc sets the "rfc" field.
func (_u *AgentUpdate) SetRfc(v string) *AgentUpdate {
	_u.mutation.SetRfc(v)
	return _u
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRfc(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRfc(*v)
	}
	return _u
}

// ClearRfc clears the value of the "rfc" field.
func (_u *AgentUpdate) ClearRfc() *AgentUpdate {
	_u.mutation.ClearRfc()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentUpdate) SetCreatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCreatedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddClientIDs adds the "clients" edge to the Cliente entity by IDs.
func (_u *AgentUpdate) AddClientIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.AddClientIDs(ids...)
	return _u
}

// AddClients adds the "clients" edges to the Cliente entity.
func (_u *AgentUpdate) AddClients(v ...*Cliente) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *AgentUpdate) AddLeadIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *AgentUpdate) AddLeads(v ...*Lead) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_u *AgentUpdate) AddPolicyIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.AddPolicyIDs(ids...)
	return _u
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_u *AgentUpdate) AddPolicies(v ...*Poliza) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyIDs(ids...)
}

// AddImportIDs adds the "imports" edge to the PolicyAIImport entity by IDs.
func (_u *AgentUpdate) AddImportIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.AddImportIDs(ids...)
	return _u
}

// AddImports adds the "imports" edges to the PolicyAIImport entity.
func (_u *AgentUpdate) AddImports(v ...*PolicyAIImport) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportIDs(ids...)
}

// AddTrackingEntryIDs adds the "tracking_entries" edge to the TrackingEntry entity by IDs.
func (_u *AgentUpdate) AddTrackingEntryIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.AddTrackingEntryIDs(ids...)
	return _u
}

// AddTrackingEntries adds the "tracking_entries" edges to the TrackingEntry entity.
func (_u *AgentUpdate) AddTrackingEntries(v ...*TrackingEntry) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackingEntryIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the CommissionStatement entity by IDs.
func (_u *AgentUpdate) AddStatementIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.AddStatementIDs(ids...)
	return _u
}

// AddStatements adds the "statements" edges to the CommissionStatement entity.
func (_u *AgentUpdate) AddStatements(v ...*CommissionStatement) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatementIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearClients clears all "clients" edges to the Cliente entity.
func (_u *AgentUpdate) ClearClients() *AgentUpdate {
	_u.mutation.ClearClients()
	return _u
}

// RemoveClientIDs removes the "clients" edge to Cliente entities by IDs.
func (_u *AgentUpdate) RemoveClientIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.RemoveClientIDs(ids...)
	return _u
}

// RemoveClients removes "clients" edges to Cliente entities.
func (_u *AgentUpdate) RemoveClients(v ...*Cliente) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *AgentUpdate) ClearLeads() *AgentUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *AgentUpdate) RemoveLeadIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *AgentUpdate) RemoveLeads(v ...*Lead) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearPolicies clears all "policies" edges to the Poliza entity.
func (_u *AgentUpdate) ClearPolicies() *AgentUpdate {
	_u.mutation.ClearPolicies()
	return _u
}

// RemovePolicyIDs removes the "policies" edge to Poliza entities by IDs.
func (_u *AgentUpdate) RemovePolicyIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.RemovePolicyIDs(ids...)
	return _u
}

// RemovePolicies removes "policies" edges to Poliza entities.
func (_u *AgentUpdate) RemovePolicies(v ...*Poliza) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyIDs(ids...)
}

// ClearImports clears all "imports" edges to the PolicyAIImport entity.
func (_u *AgentUpdate) ClearImports() *AgentUpdate {
	_u.mutation.ClearImports()
	return _u
}

// RemoveImportIDs removes the "imports" edge to PolicyAIImport entities by IDs.
func (_u *AgentUpdate) RemoveImportIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.RemoveImportIDs(ids...)
	return _u
}

// RemoveImports removes "imports" edges to PolicyAIImport entities.
func (_u *AgentUpdate) RemoveImports(v ...*PolicyAIImport) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportIDs(ids...)
}

// ClearTrackingEntries clears all "tracking_entries" edges to the TrackingEntry entity.
func (_u *AgentUpdate) ClearTrackingEntries() *AgentUpdate {
	_u.mutation.ClearTrackingEntries()
	return _u
}

// RemoveTrackingEntryIDs removes the "tracking_entries" edge to TrackingEntry entities by IDs.
func (_u *AgentUpdate) RemoveTrackingEntryIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.RemoveTrackingEntryIDs(ids...)
	return _u
}

// RemoveTrackingEntries removes "tracking_entries" edges to TrackingEntry entities.
func (_u *AgentUpdate) RemoveTrackingEntries(v ...*TrackingEntry) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackingEntryIDs(ids...)
}

// ClearStatements clears all "statements" edges to the CommissionStatement entity.
func (_u *AgentUpdate) ClearStatements() *AgentUpdate {
	_u.mutation.ClearStatements()
	return _u
}

// RemoveStatementIDs removes the "statements" edge to CommissionStatement entities by IDs.
func (_u *AgentUpdate) RemoveStatementIDs(ids ...uuid.UUID) *AgentUpdate {
	_u.mutation.RemoveStatementIDs(ids...)
	return _u
}

// RemoveStatements removes "statements" edges to CommissionStatement entities.
func (_u *AgentUpdate) RemoveStatements(v ...*CommissionStatement) *AgentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := agent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Agent.email": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(agent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rfc(); ok {
		_spec.SetField(agent.FieldRfc, field.TypeString, value)
	}
	if _u.mutation.RfcCleared() {
		_spec.ClearField(agent.FieldRfc, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClientsTable,
			Columns: []string{agent.ClientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientsIDs(); len(nodes) > 0 && !_u.mutation.ClientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClientsTable,
			Columns: []string{agent.ClientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClientsTable,
			Columns: []string{agent.ClientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.LeadsTable,
			Columns: []string{agent.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.LeadsTable,
			Columns: []string{agent.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.LeadsTable,
			Columns: []string{agent.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeUUID),
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
			Table:   agent.PoliciesTable,
			Columns: []string{agent.PoliciesColumn},
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
			Table:   agent.PoliciesTable,
			Columns: []string{agent.PoliciesColumn},
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
			Table:   agent.PoliciesTable,
			Columns: []string{agent.PoliciesColumn},
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
	if _u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImportsTable,
			Columns: []string{agent.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportsIDs(); len(nodes) > 0 && !_u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImportsTable,
			Columns: []string{agent.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImportsTable,
			Columns: []string{agent.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackingEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TrackingEntriesTable,
			Columns: []string{agent.TrackingEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackingEntriesIDs(); len(nodes) > 0 && !_u.mutation.TrackingEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TrackingEntriesTable,
			Columns: []string{agent.TrackingEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackingEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TrackingEntriesTable,
			Columns: []string{agent.TrackingEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
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
			Table:   agent.StatementsTable,
			Columns: []string{agent.StatementsColumn},
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
			Table:   agent.StatementsTable,
			Columns: []string{agent.StatementsColumn},
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
			Table:   agent.StatementsTable,
			Columns: []string{agent.StatementsColumn},
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
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *AgentUpdateOne) SetEmail(v string) *AgentUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEmail(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRfc sets the "rfc" field.
func (_u *AgentUpdateOne) SetRfc(v string) *AgentUpdateOne {
	_u.mutation.SetRfc(v)
	return _u
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRfc(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRfc(*v)
	}
	return _u
}

// ClearRfc clears the value of the "rfc" field.
func (_u *AgentUpdateOne) ClearRfc() *AgentUpdateOne {
	_u.mutation.ClearRfc()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentUpdateOne) SetCreatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCreatedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddClientIDs adds the "clients" edge to the Cliente entity by IDs.
func (_u *AgentUpdateOne) AddClientIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.AddClientIDs(ids...)
	return _u
}

// AddClients adds the "clients" edges to the Cliente entity.
func (_u *AgentUpdateOne) AddClients(v ...*Cliente) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *AgentUpdateOne) AddLeadIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *AgentUpdateOne) AddLeads(v ...*Lead) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by IDs.
func (_u *AgentUpdateOne) AddPolicyIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.AddPolicyIDs(ids...)
	return _u
}

// AddPolicies adds the "policies" edges to the Poliza entity.
func (_u *AgentUpdateOne) AddPolicies(v ...*Poliza) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyIDs(ids...)
}

// AddImportIDs adds the "imports" edge to the PolicyAIImport entity by IDs.
func (_u *AgentUpdateOne) AddImportIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.AddImportIDs(ids...)
	return _u
}

// AddImports adds the "imports" edges to the PolicyAIImport entity.
func (_u *AgentUpdateOne) AddImports(v ...*PolicyAIImport) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportIDs(ids...)
}

// AddTrackingEntryIDs adds the "tracking_entries" edge to the TrackingEntry entity by IDs.
func (_u *AgentUpdateOne) AddTrackingEntryIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.AddTrackingEntryIDs(ids...)
	return _u
}

// AddTrackingEntries adds the "tracking_entries" edges to the TrackingEntry entity.
func (_u *AgentUpdateOne) AddTrackingEntries(v ...*TrackingEntry) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackingEntryIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the CommissionStatement entity by IDs.
func (_u *AgentUpdateOne) AddStatementIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.AddStatementIDs(ids...)
	return _u
}

// AddStatements adds the "statements" edges to the CommissionStatement entity.
func (_u *AgentUpdateOne) AddStatements(v ...*CommissionStatement) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatementIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearClients clears all "clients" edges to the Cliente entity.
func (_u *AgentUpdateOne) ClearClients() *AgentUpdateOne {
	_u.mutation.ClearClients()
	return _u
}

// RemoveClientIDs removes the "clients" edge to Cliente entities by IDs.
func (_u *AgentUpdateOne) RemoveClientIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.RemoveClientIDs(ids...)
	return _u
}

// RemoveClients removes "clients" edges to Cliente entities.
func (_u *AgentUpdateOne) RemoveClients(v ...*Cliente) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *AgentUpdateOne) ClearLeads() *AgentUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *AgentUpdateOne) RemoveLeadIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *AgentUpdateOne) RemoveLeads(v ...*Lead) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearPolicies clears all "policies" edges to the Poliza entity.
func (_u *AgentUpdateOne) ClearPolicies() *AgentUpdateOne {
	_u.mutation.ClearPolicies()
	return _u
}

// RemovePolicyIDs removes the "policies" edge to Poliza entities by IDs.
func (_u *AgentUpdateOne) RemovePolicyIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.RemovePolicyIDs(ids...)
	return _u
}

// RemovePolicies removes "policies" edges to Poliza entities.
func (_u *AgentUpdateOne) RemovePolicies(v ...*Poliza) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyIDs(ids...)
}

// ClearImports clears all "imports" edges to the PolicyAIImport entity.
func (_u *AgentUpdateOne) ClearImports() *AgentUpdateOne {
	_u.mutation.ClearImports()
	return _u
}

// RemoveImportIDs removes the "imports" edge to PolicyAIImport entities by IDs.
func (_u *AgentUpdateOne) RemoveImportIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.RemoveImportIDs(ids...)
	return _u
}

// RemoveImports removes "imports" edges to PolicyAIImport entities.
func (_u *AgentUpdateOne) RemoveImports(v ...*PolicyAIImport) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportIDs(ids...)
}

// ClearTrackingEntries clears all "tracking_entries" edges to the TrackingEntry entity.
func (_u *AgentUpdateOne) ClearTrackingEntries() *AgentUpdateOne {
	_u.mutation.ClearTrackingEntries()
	return _u
}

// RemoveTrackingEntryIDs removes the "tracking_entries" edge to TrackingEntry entities by IDs.
func (_u *AgentUpdateOne) RemoveTrackingEntryIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.RemoveTrackingEntryIDs(ids...)
	return _u
}

// RemoveTrackingEntries removes "tracking_entries" edges to TrackingEntry entities.
func (_u *AgentUpdateOne) RemoveTrackingEntries(v ...*TrackingEntry) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackingEntryIDs(ids...)
}

// ClearStatements clears all "statements" edges to the CommissionStatement entity.
func (_u *AgentUpdateOne) ClearStatements() *AgentUpdateOne {
	_u.mutation.ClearStatements()
	return _u
}

// RemoveStatementIDs removes the "statements" edge to CommissionStatement entities by IDs.
func (_u *AgentUpdateOne) RemoveStatementIDs(ids ...uuid.UUID) *AgentUpdateOne {
	_u.mutation.RemoveStatementIDs(ids...)
	return _u
}

// RemoveStatements removes "statements" edges to CommissionStatement entities.
func (_u *AgentUpdateOne) RemoveStatements(v ...*CommissionStatement) *AgentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatementIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := agent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Agent.email": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(agent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rfc(); ok {
		_spec.SetField(agent.FieldRfc, field.TypeString, value)
	}
	if _u.mutation.RfcCleared() {
		_spec.ClearField(agent.FieldRfc, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClientsTable,
			Columns: []string{agent.ClientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientsIDs(); len(nodes) > 0 && !_u.mutation.ClientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClientsTable,
			Columns: []string{agent.ClientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClientsTable,
			Columns: []string{agent.ClientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.LeadsTable,
			Columns: []string{agent.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.LeadsTable,
			Columns: []string{agent.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.LeadsTable,
			Columns: []string{agent.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeUUID),
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
			Table:   agent.PoliciesTable,
			Columns: []string{agent.PoliciesColumn},
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
			Table:   agent.PoliciesTable,
			Columns: []string{agent.PoliciesColumn},
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
			Table:   agent.PoliciesTable,
			Columns: []string{agent.PoliciesColumn},
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
	if _u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImportsTable,
			Columns: []string{agent.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportsIDs(); len(nodes) > 0 && !_u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImportsTable,
			Columns: []string{agent.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ImportsTable,
			Columns: []string{agent.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyaiimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackingEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TrackingEntriesTable,
			Columns: []string{agent.TrackingEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackingEntriesIDs(); len(nodes) > 0 && !_u.mutation.TrackingEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TrackingEntriesTable,
			Columns: []string{agent.TrackingEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackingEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TrackingEntriesTable,
			Columns: []string{agent.TrackingEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
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
			Table:   agent.StatementsTable,
			Columns: []string{agent.StatementsColumn},
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
			Table:   agent.StatementsTable,
			Columns: []string{agent.StatementsColumn},
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
			Table:   agent.StatementsTable,
			Columns: []string{agent.StatementsColumn},
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
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
