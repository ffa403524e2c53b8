// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/lead"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
	"github.com/insurtech-mx/polizas-crm/gen/ent/trackingentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent               = "Agent"
	TypeBeneficiary         = "Beneficiary"
	TypeCliente             = "Cliente"
	TypeCommissionLine      = "CommissionLine"
	TypeCommissionStatement = "CommissionStatement"
	TypeInsurer             = "Insurer"
	TypeLead                = "Lead"
	TypePolicyAIImport      = "PolicyAIImport"
	TypePoliza              = "Poliza"
	TypeTrackingEntry       = "TrackingEntry"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	name                    *string
	email                   *string
	rfc                     *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	clients                 map[uuid.UUID]struct{}
	removedclients          map[uuid.UUID]struct{}
	clearedclients          bool
	leads                   map[uuid.UUID]struct{}
	removedleads            map[uuid.UUID]struct{}
	clearedleads            bool
	policies                map[uuid.UUID]struct{}
	removedpolicies         map[uuid.UUID]struct{}
	clearedpolicies         bool
	imports                 map[uuid.UUID]struct{}
	removedimports          map[uuid.UUID]struct{}
	clearedimports          bool
	tracking_entries        map[uuid.UUID]struct{}
	removedtracking_entries map[uuid.UUID]struct{}
	clearedtracking_entries bool
	statements              map[uuid.UUID]struct{}
	removedstatements       map[uuid.UUID]struct{}
	clearedstatements       bool
	done                    bool
	oldValue                func(context.Context) (*Agent, error)
	predicates              []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id uuid.UUID) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *AgentMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AgentMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AgentMutation) ResetEmail() {
	m.email = nil
}

// SetRfc sets the "rfc" field.
func (m *AgentMutation) SetRfc(s string) {
	m.rfc = &s
}

// Rfc returns the value of the "rfc" field in the mutation.
func (m *AgentMutation) Rfc() (r string, exists bool) {
	v := m.rfc
	if v == nil {
		return
	}
	return *v, true
}

// OldRfc returns the old "rfc" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRfc(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRfc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRfc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRfc: %w", err)
	}
	return oldValue.Rfc, nil
}

// ClearRfc clears the value of the "rfc" field.
func (m *AgentMutation) ClearRfc() {
	m.rfc = nil
	m.clearedFields[agent.FieldRfc] = struct{}{}
}

// RfcCleared returns if the "rfc" field was cleared in this mutation.
func (m *AgentMutation) RfcCleared() bool {
	_, ok := m.clearedFields[agent.FieldRfc]
	return ok
}

// ResetRfc resets all changes to the "rfc" field.
func (m *AgentMutation) ResetRfc() {
	m.rfc = nil
	delete(m.clearedFields, agent.FieldRfc)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddClientIDs adds the "clients" edge to the Cliente entity by ids.
func (m *AgentMutation) AddClientIDs(ids ...uuid.UUID) {
	if m.clients == nil {
		m.clients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.clients[ids[i]] = struct{}{}
	}
}

// ClearClients clears the "clients" edge to the Cliente entity.
func (m *AgentMutation) ClearClients() {
	m.clearedclients = true
}

// ClientsCleared reports if the "clients" edge to the Cliente entity was cleared.
func (m *AgentMutation) ClientsCleared() bool {
	return m.clearedclients
}

// RemoveClientIDs removes the "clients" edge to the Cliente entity by IDs.
func (m *AgentMutation) RemoveClientIDs(ids ...uuid.UUID) {
	if m.removedclients == nil {
		m.removedclients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.clients, ids[i])
		m.removedclients[ids[i]] = struct{}{}
	}
}

// RemovedClients returns the removed IDs of the "clients" edge to the Cliente entity.
func (m *AgentMutation) RemovedClientsIDs() (ids []uuid.UUID) {
	for id := range m.removedclients {
		ids = append(ids, id)
	}
	return
}

// ClientsIDs returns the "clients" edge IDs in the mutation.
func (m *AgentMutation) ClientsIDs() (ids []uuid.UUID) {
	for id := range m.clients {
		ids = append(ids, id)
	}
	return
}

// ResetClients resets all changes to the "clients" edge.
func (m *AgentMutation) ResetClients() {
	m.clients = nil
	m.clearedclients = false
	m.removedclients = nil
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *AgentMutation) AddLeadIDs(ids ...uuid.UUID) {
	if m.leads == nil {
		m.leads = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *AgentMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *AgentMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *AgentMutation) RemoveLeadIDs(ids ...uuid.UUID) {
	if m.removedleads == nil {
		m.removedleads = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *AgentMutation) RemovedLeadsIDs() (ids []uuid.UUID) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *AgentMutation) LeadsIDs() (ids []uuid.UUID) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *AgentMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by ids.
func (m *AgentMutation) AddPolicyIDs(ids ...uuid.UUID) {
	if m.policies == nil {
		m.policies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.policies[ids[i]] = struct{}{}
	}
}

// ClearPolicies clears the "policies" edge to the Poliza entity.
func (m *AgentMutation) ClearPolicies() {
	m.clearedpolicies = true
}

// PoliciesCleared reports if the "policies" edge to the Poliza entity was cleared.
func (m *AgentMutation) PoliciesCleared() bool {
	return m.clearedpolicies
}

// RemovePolicyIDs removes the "policies" edge to the Poliza entity by IDs.
func (m *AgentMutation) RemovePolicyIDs(ids ...uuid.UUID) {
	if m.removedpolicies == nil {
		m.removedpolicies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.policies, ids[i])
		m.removedpolicies[ids[i]] = struct{}{}
	}
}

// RemovedPolicies returns the removed IDs of the "policies" edge to the Poliza entity.
func (m *AgentMutation) RemovedPoliciesIDs() (ids []uuid.UUID) {
	for id := range m.removedpolicies {
		ids = append(ids, id)
	}
	return
}

// PoliciesIDs returns the "policies" edge IDs in the mutation.
func (m *AgentMutation) PoliciesIDs() (ids []uuid.UUID) {
	for id := range m.policies {
		ids = append(ids, id)
	}
	return
}

// ResetPolicies resets all changes to the "policies" edge.
func (m *AgentMutation) ResetPolicies() {
	m.policies = nil
	m.clearedpolicies = false
	m.removedpolicies = nil
}

// AddImportIDs adds the "imports" edge to the PolicyAIImport entity by ids.
func (m *AgentMutation) AddImportIDs(ids ...uuid.UUID) {
	if m.imports == nil {
		m.imports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.imports[ids[i]] = struct{}{}
	}
}

// ClearImports clears the "imports" edge to the PolicyAIImport entity.
func (m *AgentMutation) ClearImports() {
	m.clearedimports = true
}

// ImportsCleared reports if the "imports" edge to the PolicyAIImport entity was cleared.
func (m *AgentMutation) ImportsCleared() bool {
	return m.clearedimports
}

// RemoveImportIDs removes the "imports" edge to the PolicyAIImport entity by IDs.
func (m *AgentMutation) RemoveImportIDs(ids ...uuid.UUID) {
	if m.removedimports == nil {
		m.removedimports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.imports, ids[i])
		m.removedimports[ids[i]] = struct{}{}
	}
}

// RemovedImports returns the removed IDs of the "imports" edge to the PolicyAIImport entity.
func (m *AgentMutation) RemovedImportsIDs() (ids []uuid.UUID) {
	for id := range m.removedimports {
		ids = append(ids, id)
	}
	return
}

// ImportsIDs returns the "imports" edge IDs in the mutation.
func (m *AgentMutation) ImportsIDs() (ids []uuid.UUID) {
	for id := range m.imports {
		ids = append(ids, id)
	}
	return
}

// ResetImports resets all changes to the "imports" edge.
func (m *AgentMutation) ResetImports() {
	m.imports = nil
	m.clearedimports = false
	m.removedimports = nil
}

// AddTrackingEntryIDs adds the "tracking_entries" edge to the TrackingEntry entity by ids.
func (m *AgentMutation) AddTrackingEntryIDs(ids ...uuid.UUID) {
	if m.tracking_entries == nil {
		m.tracking_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tracking_entries[ids[i]] = struct{}{}
	}
}

// ClearTrackingEntries clears the "tracking_entries" edge to the TrackingEntry entity.
func (m *AgentMutation) ClearTrackingEntries() {
	m.clearedtracking_entries = true
}

// TrackingEntriesCleared reports if the "tracking_entries" edge to the TrackingEntry entity was cleared.
func (m *AgentMutation) TrackingEntriesCleared() bool {
	return m.clearedtracking_entries
}

// RemoveTrackingEntryIDs removes the "tracking_entries" edge to the TrackingEntry entity by IDs.
func (m *AgentMutation) RemoveTrackingEntryIDs(ids ...uuid.UUID) {
	if m.removedtracking_entries == nil {
		m.removedtracking_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tracking_entries, ids[i])
		m.removedtracking_entries[ids[i]] = struct{}{}
	}
}

// RemovedTrackingEntries returns the removed IDs of the "tracking_entries" edge to the TrackingEntry entity.
func (m *AgentMutation) RemovedTrackingEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedtracking_entries {
		ids = append(ids, id)
	}
	return
}

// TrackingEntriesIDs returns the "tracking_entries" edge IDs in the mutation.
func (m *AgentMutation) TrackingEntriesIDs() (ids []uuid.UUID) {
	for id := range m.tracking_entries {
		ids = append(ids, id)
	}
	return
}

// ResetTrackingEntries resets all changes to the "tracking_entries" edge.
func (m *AgentMutation) ResetTrackingEntries() {
	m.tracking_entries = nil
	m.clearedtracking_entries = false
	m.removedtracking_entries = nil
}

// AddStatementIDs adds the "statements" edge to the CommissionStatement entity by ids.
func (m *AgentMutation) AddStatementIDs(ids ...uuid.UUID) {
	if m.statements == nil {
		m.statements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.statements[ids[i]] = struct{}{}
	}
}

// ClearStatements clears the "statements" edge to the CommissionStatement entity.
func (m *AgentMutation) ClearStatements() {
	m.clearedstatements = true
}

// StatementsCleared reports if the "statements" edge to the CommissionStatement entity was cleared.
func (m *AgentMutation) StatementsCleared() bool {
	return m.clearedstatements
}

// RemoveStatementIDs removes the "statements" edge to the CommissionStatement entity by IDs.
func (m *AgentMutation) RemoveStatementIDs(ids ...uuid.UUID) {
	if m.removedstatements == nil {
		m.removedstatements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.statements, ids[i])
		m.removedstatements[ids[i]] = struct{}{}
	}
}

// RemovedStatements returns the removed IDs of the "statements" edge to the CommissionStatement entity.
func (m *AgentMutation) RemovedStatementsIDs() (ids []uuid.UUID) {
	for id := range m.removedstatements {
		ids = append(ids, id)
	}
	return
}

// StatementsIDs returns the "statements" edge IDs in the mutation.
func (m *AgentMutation) StatementsIDs() (ids []uuid.UUID) {
	for id := range m.statements {
		ids = append(ids, id)
	}
	return
}

// ResetStatements resets all changes to the "statements" edge.
func (m *AgentMutation) ResetStatements() {
	m.statements = nil
	m.clearedstatements = false
	m.removedstatements = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.email != nil {
		fields = append(fields, agent.FieldEmail)
	}
	if m.rfc != nil {
		fields = append(fields, agent.FieldRfc)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldEmail:
		return m.Email()
	case agent.FieldRfc:
		return m.Rfc()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldEmail:
		return m.OldEmail(ctx)
	case agent.FieldRfc:
		return m.OldRfc(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case agent.FieldRfc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRfc(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldRfc) {
		fields = append(fields, agent.FieldRfc)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldRfc:
		m.ClearRfc()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldEmail:
		m.ResetEmail()
		return nil
	case agent.FieldRfc:
		m.ResetRfc()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clients != nil {
		edges = append(edges, agent.EdgeClients)
	}
	if m.leads != nil {
		edges = append(edges, agent.EdgeLeads)
	}
	if m.policies != nil {
		edges = append(edges, agent.EdgePolicies)
	}
	if m.imports != nil {
		edges = append(edges, agent.EdgeImports)
	}
	if m.tracking_entries != nil {
		edges = append(edges, agent.EdgeTrackingEntries)
	}
	if m.statements != nil {
		edges = append(edges, agent.EdgeStatements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeClients:
		ids := make([]ent.Value, 0, len(m.clients))
		for id := range m.clients {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.policies))
		for id := range m.policies {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeImports:
		ids := make([]ent.Value, 0, len(m.imports))
		for id := range m.imports {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeTrackingEntries:
		ids := make([]ent.Value, 0, len(m.tracking_entries))
		for id := range m.tracking_entries {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeStatements:
		ids := make([]ent.Value, 0, len(m.statements))
		for id := range m.statements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedclients != nil {
		edges = append(edges, agent.EdgeClients)
	}
	if m.removedleads != nil {
		edges = append(edges, agent.EdgeLeads)
	}
	if m.removedpolicies != nil {
		edges = append(edges, agent.EdgePolicies)
	}
	if m.removedimports != nil {
		edges = append(edges, agent.EdgeImports)
	}
	if m.removedtracking_entries != nil {
		edges = append(edges, agent.EdgeTrackingEntries)
	}
	if m.removedstatements != nil {
		edges = append(edges, agent.EdgeStatements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeClients:
		ids := make([]ent.Value, 0, len(m.removedclients))
		for id := range m.removedclients {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.removedpolicies))
		for id := range m.removedpolicies {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeImports:
		ids := make([]ent.Value, 0, len(m.removedimports))
		for id := range m.removedimports {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeTrackingEntries:
		ids := make([]ent.Value, 0, len(m.removedtracking_entries))
		for id := range m.removedtracking_entries {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeStatements:
		ids := make([]ent.Value, 0, len(m.removedstatements))
		for id := range m.removedstatements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedclients {
		edges = append(edges, agent.EdgeClients)
	}
	if m.clearedleads {
		edges = append(edges, agent.EdgeLeads)
	}
	if m.clearedpolicies {
		edges = append(edges, agent.EdgePolicies)
	}
	if m.clearedimports {
		edges = append(edges, agent.EdgeImports)
	}
	if m.clearedtracking_entries {
		edges = append(edges, agent.EdgeTrackingEntries)
	}
	if m.clearedstatements {
		edges = append(edges, agent.EdgeStatements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeClients:
		return m.clearedclients
	case agent.EdgeLeads:
		return m.clearedleads
	case agent.EdgePolicies:
		return m.clearedpolicies
	case agent.EdgeImports:
		return m.clearedimports
	case agent.EdgeTrackingEntries:
		return m.clearedtracking_entries
	case agent.EdgeStatements:
		return m.clearedstatements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeClients:
		m.ResetClients()
		return nil
	case agent.EdgeLeads:
		m.ResetLeads()
		return nil
	case agent.EdgePolicies:
		m.ResetPolicies()
		return nil
	case agent.EdgeImports:
		m.ResetImports()
		return nil
	case agent.EdgeTrackingEntries:
		m.ResetTrackingEntries()
		return nil
	case agent.EdgeStatements:
		m.ResetStatements()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// BeneficiaryMutation represents an operation that mutates the Beneficiary nodes in the graph.
type BeneficiaryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	percentage    *float64
	addpercentage *float64
	clearedFields map[string]struct{}
	policy        *uuid.UUID
	clearedpolicy bool
	done          bool
	oldValue      func(context.Context) (*Beneficiary, error)
	predicates    []predicate.Beneficiary
}

var _ ent.Mutation = (*BeneficiaryMutation)(nil)

// beneficiaryOption allows management of the mutation configuration using functional options.
type beneficiaryOption func(*BeneficiaryMutation)

// newBeneficiaryMutation creates new mutation for the Beneficiary entity.
func newBeneficiaryMutation(c config, op Op, opts ...beneficiaryOption) *BeneficiaryMutation {
	m := &BeneficiaryMutation{
		config:        c,
		op:            op,
		typ:           TypeBeneficiary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBeneficiaryID sets the ID field of the mutation.
func withBeneficiaryID(id uuid.UUID) beneficiaryOption {
	return func(m *BeneficiaryMutation) {
		var (
			err   error
			once  sync.Once
			value *Beneficiary
		)
		m.oldValue = func(ctx context.Context) (*Beneficiary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Beneficiary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBeneficiary sets the old Beneficiary of the mutation.
func withBeneficiary(node *Beneficiary) beneficiaryOption {
	return func(m *BeneficiaryMutation) {
		m.oldValue = func(context.Context) (*Beneficiary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BeneficiaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BeneficiaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Beneficiary entities.
func (m *BeneficiaryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BeneficiaryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BeneficiaryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Beneficiary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPolicyID sets the "policy_id" field.
func (m *BeneficiaryMutation) SetPolicyID(u uuid.UUID) {
	m.policy = &u
}

// PolicyID returns the value of the "policy_id" field in the mutation.
func (m *BeneficiaryMutation) PolicyID() (r uuid.UUID, exists bool) {
	v := m.policy
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyID returns the old "policy_id" field's value of the Beneficiary entity.
// If the Beneficiary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeneficiaryMutation) OldPolicyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyID: %w", err)
	}
	return oldValue.PolicyID, nil
}

// ResetPolicyID resets all changes to the "policy_id" field.
func (m *BeneficiaryMutation) ResetPolicyID() {
	m.policy = nil
}

// SetName sets the "name" field.
func (m *BeneficiaryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BeneficiaryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Beneficiary entity.
// If the Beneficiary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeneficiaryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BeneficiaryMutation) ResetName() {
	m.name = nil
}

// SetPercentage sets the "percentage" field.
func (m *BeneficiaryMutation) SetPercentage(f float64) {
	m.percentage = &f
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *BeneficiaryMutation) Percentage() (r float64, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the Beneficiary entity.
// If the Beneficiary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BeneficiaryMutation) OldPercentage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds f to the "percentage" field.
func (m *BeneficiaryMutation) AddPercentage(f float64) {
	if m.addpercentage != nil {
		*m.addpercentage += f
	} else {
		m.addpercentage = &f
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *BeneficiaryMutation) AddedPercentage() (r float64, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ClearPercentage clears the value of the "percentage" field.
func (m *BeneficiaryMutation) ClearPercentage() {
	m.percentage = nil
	m.addpercentage = nil
	m.clearedFields[beneficiary.FieldPercentage] = struct{}{}
}

// PercentageCleared returns if the "percentage" field was cleared in this mutation.
func (m *BeneficiaryMutation) PercentageCleared() bool {
	_, ok := m.clearedFields[beneficiary.FieldPercentage]
	return ok
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *BeneficiaryMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
	delete(m.clearedFields, beneficiary.FieldPercentage)
}

// ClearPolicy clears the "policy" edge to the Poliza entity.
func (m *BeneficiaryMutation) ClearPolicy() {
	m.clearedpolicy = true
	m.clearedFields[beneficiary.FieldPolicyID] = struct{}{}
}

// PolicyCleared reports if the "policy" edge to the Poliza entity was cleared.
func (m *BeneficiaryMutation) PolicyCleared() bool {
	return m.clearedpolicy
}

// PolicyIDs returns the "policy" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PolicyID instead. It exists only for internal usage by the builders.
func (m *BeneficiaryMutation) PolicyIDs() (ids []uuid.UUID) {
	if id := m.policy; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPolicy resets all changes to the "policy" edge.
func (m *BeneficiaryMutation) ResetPolicy() {
	m.policy = nil
	m.clearedpolicy = false
}

// Where appends a list predicates to the BeneficiaryMutation builder.
func (m *BeneficiaryMutation) Where(ps ...predicate.Beneficiary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BeneficiaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BeneficiaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Beneficiary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BeneficiaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BeneficiaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Beneficiary).
func (m *BeneficiaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BeneficiaryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.policy != nil {
		fields = append(fields, beneficiary.FieldPolicyID)
	}
	if m.name != nil {
		fields = append(fields, beneficiary.FieldName)
	}
	if m.percentage != nil {
		fields = append(fields, beneficiary.FieldPercentage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BeneficiaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case beneficiary.FieldPolicyID:
		return m.PolicyID()
	case beneficiary.FieldName:
		return m.Name()
	case beneficiary.FieldPercentage:
		return m.Percentage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BeneficiaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case beneficiary.FieldPolicyID:
		return m.OldPolicyID(ctx)
	case beneficiary.FieldName:
		return m.OldName(ctx)
	case beneficiary.FieldPercentage:
		return m.OldPercentage(ctx)
	}
	return nil, fmt.Errorf("unknown Beneficiary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeneficiaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case beneficiary.FieldPolicyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyID(v)
		return nil
	case beneficiary.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case beneficiary.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown Beneficiary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BeneficiaryMutation) AddedFields() []string {
	var fields []string
	if m.addpercentage != nil {
		fields = append(fields, beneficiary.FieldPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BeneficiaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case beneficiary.FieldPercentage:
		return m.AddedPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BeneficiaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case beneficiary.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown Beneficiary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BeneficiaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(beneficiary.FieldPercentage) {
		fields = append(fields, beneficiary.FieldPercentage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BeneficiaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BeneficiaryMutation) ClearField(name string) error {
	switch name {
	case beneficiary.FieldPercentage:
		m.ClearPercentage()
		return nil
	}
	return fmt.Errorf("unknown Beneficiary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BeneficiaryMutation) ResetField(name string) error {
	switch name {
	case beneficiary.FieldPolicyID:
		m.ResetPolicyID()
		return nil
	case beneficiary.FieldName:
		m.ResetName()
		return nil
	case beneficiary.FieldPercentage:
		m.ResetPercentage()
		return nil
	}
	return fmt.Errorf("unknown Beneficiary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BeneficiaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.policy != nil {
		edges = append(edges, beneficiary.EdgePolicy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BeneficiaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case beneficiary.EdgePolicy:
		if id := m.policy; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BeneficiaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BeneficiaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BeneficiaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpolicy {
		edges = append(edges, beneficiary.EdgePolicy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BeneficiaryMutation) EdgeCleared(name string) bool {
	switch name {
	case beneficiary.EdgePolicy:
		return m.clearedpolicy
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BeneficiaryMutation) ClearEdge(name string) error {
	switch name {
	case beneficiary.EdgePolicy:
		m.ClearPolicy()
		return nil
	}
	return fmt.Errorf("unknown Beneficiary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BeneficiaryMutation) ResetEdge(name string) error {
	switch name {
	case beneficiary.EdgePolicy:
		m.ResetPolicy()
		return nil
	}
	return fmt.Errorf("unknown Beneficiary edge %s", name)
}

// ClienteMutation represents an operation that mutates the Cliente nodes in the graph.
type ClienteMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	first_name       *string
	middle_name      *string
	last_name        *string
	second_last_name *string
	rfc              *string
	email            *string
	phone            *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	agent            *uuid.UUID
	clearedagent     bool
	policies         map[uuid.UUID]struct{}
	removedpolicies  map[uuid.UUID]struct{}
	clearedpolicies  bool
	done             bool
	oldValue         func(context.Context) (*Cliente, error)
	predicates       []predicate.Cliente
}

var _ ent.Mutation = (*ClienteMutation)(nil)

// clienteOption allows management of the mutation configuration using functional options.
type clienteOption func(*ClienteMutation)

// newClienteMutation creates new mutation for the Cliente entity.
func newClienteMutation(c config, op Op, opts ...clienteOption) *ClienteMutation {
	m := &ClienteMutation{
		config:        c,
		op:            op,
		typ:           TypeCliente,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClienteID sets the ID field of the mutation.
func withClienteID(id uuid.UUID) clienteOption {
	return func(m *ClienteMutation) {
		var (
			err   error
			once  sync.Once
			value *Cliente
		)
		m.oldValue = func(ctx context.Context) (*Cliente, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cliente.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCliente sets the old Cliente of the mutation.
func withCliente(node *Cliente) clienteOption {
	return func(m *ClienteMutation) {
		m.oldValue = func(context.Context) (*Cliente, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClienteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClienteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Cliente entities.
func (m *ClienteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClienteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClienteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cliente.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ClienteMutation) SetAgentID(u uuid.UUID) {
	m.agent = &u
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ClienteMutation) AgentID() (r uuid.UUID, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldAgentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ClienteMutation) ResetAgentID() {
	m.agent = nil
}

// SetFirstName sets the "first_name" field.
func (m *ClienteMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *ClienteMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *ClienteMutation) ResetFirstName() {
	m.first_name = nil
}

// SetMiddleName sets the "middle_name" field.
func (m *ClienteMutation) SetMiddleName(s string) {
	m.middle_name = &s
}

// MiddleName returns the value of the "middle_name" field in the mutation.
func (m *ClienteMutation) MiddleName() (r string, exists bool) {
	v := m.middle_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMiddleName returns the old "middle_name" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldMiddleName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMiddleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMiddleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMiddleName: %w", err)
	}
	return oldValue.MiddleName, nil
}

// ClearMiddleName clears the value of the "middle_name" field.
func (m *ClienteMutation) ClearMiddleName() {
	m.middle_name = nil
	m.clearedFields[cliente.FieldMiddleName] = struct{}{}
}

// MiddleNameCleared returns if the "middle_name" field was cleared in this mutation.
func (m *ClienteMutation) MiddleNameCleared() bool {
	_, ok := m.clearedFields[cliente.FieldMiddleName]
	return ok
}

// ResetMiddleName resets all changes to the "middle_name" field.
func (m *ClienteMutation) ResetMiddleName() {
	m.middle_name = nil
	delete(m.clearedFields, cliente.FieldMiddleName)
}

// SetLastName sets the "last_name" field.
func (m *ClienteMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *ClienteMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *ClienteMutation) ResetLastName() {
	m.last_name = nil
}

// SetSecondLastName sets the "second_last_name" field.
func (m *ClienteMutation) SetSecondLastName(s string) {
	m.second_last_name = &s
}

// SecondLastName returns the value of the "second_last_name" field in the mutation.
func (m *ClienteMutation) SecondLastName() (r string, exists bool) {
	v := m.second_last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondLastName returns the old "second_last_name" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldSecondLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondLastName: %w", err)
	}
	return oldValue.SecondLastName, nil
}

// ClearSecondLastName clears the value of the "second_last_name" field.
func (m *ClienteMutation) ClearSecondLastName() {
	m.second_last_name = nil
	m.clearedFields[cliente.FieldSecondLastName] = struct{}{}
}

// SecondLastNameCleared returns if the "second_last_name" field was cleared in this mutation.
func (m *ClienteMutation) SecondLastNameCleared() bool {
	_, ok := m.clearedFields[cliente.FieldSecondLastName]
	return ok
}

// ResetSecondLastName resets all changes to the "second_last_name" field.
func (m *ClienteMutation) ResetSecondLastName() {
	m.second_last_name = nil
	delete(m.clearedFields, cliente.FieldSecondLastName)
}

// SetRfc sets the "rfc" field.
func (m *ClienteMutation) SetRfc(s string) {
	m.rfc = &s
}

// Rfc returns the value of the "rfc" field in the mutation.
func (m *ClienteMutation) Rfc() (r string, exists bool) {
	v := m.rfc
	if v == nil {
		return
	}
	return *v, true
}

// OldRfc returns the old "rfc" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldRfc(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRfc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRfc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRfc: %w", err)
	}
	return oldValue.Rfc, nil
}

// ClearRfc clears the value of the "rfc" field.
func (m *ClienteMutation) ClearRfc() {
	m.rfc = nil
	m.clearedFields[cliente.FieldRfc] = struct{}{}
}

// RfcCleared returns if the "rfc" field was cleared in this mutation.
func (m *ClienteMutation) RfcCleared() bool {
	_, ok := m.clearedFields[cliente.FieldRfc]
	return ok
}

// ResetRfc resets all changes to the "rfc" field.
func (m *ClienteMutation) ResetRfc() {
	m.rfc = nil
	delete(m.clearedFields, cliente.FieldRfc)
}

// SetEmail sets the "email" field.
func (m *ClienteMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ClienteMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ClienteMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[cliente.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ClienteMutation) EmailCleared() bool {
	_, ok := m.clearedFields[cliente.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ClienteMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, cliente.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *ClienteMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClienteMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ClienteMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[cliente.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ClienteMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[cliente.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClienteMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, cliente.FieldPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClienteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClienteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClienteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClienteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClienteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cliente entity.
// If the Cliente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClienteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClienteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *ClienteMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[cliente.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *ClienteMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ClienteMutation) AgentIDs() (ids []uuid.UUID) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ClienteMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by ids.
func (m *ClienteMutation) AddPolicyIDs(ids ...uuid.UUID) {
	if m.policies == nil {
		m.policies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.policies[ids[i]] = struct{}{}
	}
}

// ClearPolicies clears the "policies" edge to the Poliza entity.
func (m *ClienteMutation) ClearPolicies() {
	m.clearedpolicies = true
}

// PoliciesCleared reports if the "policies" edge to the Poliza entity was cleared.
func (m *ClienteMutation) PoliciesCleared() bool {
	return m.clearedpolicies
}

// RemovePolicyIDs removes the "policies" edge to the Poliza entity by IDs.
func (m *ClienteMutation) RemovePolicyIDs(ids ...uuid.UUID) {
	if m.removedpolicies == nil {
		m.removedpolicies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.policies, ids[i])
		m.removedpolicies[ids[i]] = struct{}{}
	}
}

// RemovedPolicies returns the removed IDs of the "policies" edge to the Poliza entity.
func (m *ClienteMutation) RemovedPoliciesIDs() (ids []uuid.UUID) {
	for id := range m.removedpolicies {
		ids = append(ids, id)
	}
	return
}

// PoliciesIDs returns the "policies" edge IDs in the mutation.
func (m *ClienteMutation) PoliciesIDs() (ids []uuid.UUID) {
	for id := range m.policies {
		ids = append(ids, id)
	}
	return
}

// ResetPolicies resets all changes to the "policies" edge.
func (m *ClienteMutation) ResetPolicies() {
	m.policies = nil
	m.clearedpolicies = false
	m.removedpolicies = nil
}

// Where appends a list predicates to the ClienteMutation builder.
func (m *ClienteMutation) Where(ps ...predicate.Cliente) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClienteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClienteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cliente, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClienteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClienteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cliente).
func (m *ClienteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClienteMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent != nil {
		fields = append(fields, cliente.FieldAgentID)
	}
	if m.first_name != nil {
		fields = append(fields, cliente.FieldFirstName)
	}
	if m.middle_name != nil {
		fields = append(fields, cliente.FieldMiddleName)
	}
	if m.last_name != nil {
		fields = append(fields, cliente.FieldLastName)
	}
	if m.second_last_name != nil {
		fields = append(fields, cliente.FieldSecondLastName)
	}
	if m.rfc != nil {
		fields = append(fields, cliente.FieldRfc)
	}
	if m.email != nil {
		fields = append(fields, cliente.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, cliente.FieldPhone)
	}
	if m.created_at != nil {
		fields = append(fields, cliente.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cliente.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClienteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cliente.FieldAgentID:
		return m.AgentID()
	case cliente.FieldFirstName:
		return m.FirstName()
	case cliente.FieldMiddleName:
		return m.MiddleName()
	case cliente.FieldLastName:
		return m.LastName()
	case cliente.FieldSecondLastName:
		return m.SecondLastName()
	case cliente.FieldRfc:
		return m.Rfc()
	case cliente.FieldEmail:
		return m.Email()
	case cliente.FieldPhone:
		return m.Phone()
	case cliente.FieldCreatedAt:
		return m.CreatedAt()
	case cliente.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClienteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cliente.FieldAgentID:
		return m.OldAgentID(ctx)
	case cliente.FieldFirstName:
		return m.OldFirstName(ctx)
	case cliente.FieldMiddleName:
		return m.OldMiddleName(ctx)
	case cliente.FieldLastName:
		return m.OldLastName(ctx)
	case cliente.FieldSecondLastName:
		return m.OldSecondLastName(ctx)
	case cliente.FieldRfc:
		return m.OldRfc(ctx)
	case cliente.FieldEmail:
		return m.OldEmail(ctx)
	case cliente.FieldPhone:
		return m.OldPhone(ctx)
	case cliente.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cliente.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cliente field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClienteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cliente.FieldAgentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case cliente.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case cliente.FieldMiddleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMiddleName(v)
		return nil
	case cliente.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case cliente.FieldSecondLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondLastName(v)
		return nil
	case cliente.FieldRfc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRfc(v)
		return nil
	case cliente.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case cliente.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case cliente.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cliente.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cliente field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClienteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClienteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClienteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Cliente numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClienteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cliente.FieldMiddleName) {
		fields = append(fields, cliente.FieldMiddleName)
	}
	if m.FieldCleared(cliente.FieldSecondLastName) {
		fields = append(fields, cliente.FieldSecondLastName)
	}
	if m.FieldCleared(cliente.FieldRfc) {
		fields = append(fields, cliente.FieldRfc)
	}
	if m.FieldCleared(cliente.FieldEmail) {
		fields = append(fields, cliente.FieldEmail)
	}
	if m.FieldCleared(cliente.FieldPhone) {
		fields = append(fields, cliente.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClienteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClienteMutation) ClearField(name string) error {
	switch name {
	case cliente.FieldMiddleName:
		m.ClearMiddleName()
		return nil
	case cliente.FieldSecondLastName:
		m.ClearSecondLastName()
		return nil
	case cliente.FieldRfc:
		m.ClearRfc()
		return nil
	case cliente.FieldEmail:
		m.ClearEmail()
		return nil
	case cliente.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown Cliente nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClienteMutation) ResetField(name string) error {
	switch name {
	case cliente.FieldAgentID:
		m.ResetAgentID()
		return nil
	case cliente.FieldFirstName:
		m.ResetFirstName()
		return nil
	case cliente.FieldMiddleName:
		m.ResetMiddleName()
		return nil
	case cliente.FieldLastName:
		m.ResetLastName()
		return nil
	case cliente.FieldSecondLastName:
		m.ResetSecondLastName()
		return nil
	case cliente.FieldRfc:
		m.ResetRfc()
		return nil
	case cliente.FieldEmail:
		m.ResetEmail()
		return nil
	case cliente.FieldPhone:
		m.ResetPhone()
		return nil
	case cliente.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cliente.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cliente field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClienteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agent != nil {
		edges = append(edges, cliente.EdgeAgent)
	}
	if m.policies != nil {
		edges = append(edges, cliente.EdgePolicies)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClienteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cliente.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case cliente.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.policies))
		for id := range m.policies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClienteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpolicies != nil {
		edges = append(edges, cliente.EdgePolicies)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClienteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cliente.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.removedpolicies))
		for id := range m.removedpolicies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClienteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagent {
		edges = append(edges, cliente.EdgeAgent)
	}
	if m.clearedpolicies {
		edges = append(edges, cliente.EdgePolicies)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClienteMutation) EdgeCleared(name string) bool {
	switch name {
	case cliente.EdgeAgent:
		return m.clearedagent
	case cliente.EdgePolicies:
		return m.clearedpolicies
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClienteMutation) ClearEdge(name string) error {
	switch name {
	case cliente.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Cliente unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClienteMutation) ResetEdge(name string) error {
	switch name {
	case cliente.EdgeAgent:
		m.ResetAgent()
		return nil
	case cliente.EdgePolicies:
		m.ResetPolicies()
		return nil
	}
	return fmt.Errorf("unknown Cliente edge %s", name)
}

// CommissionLineMutation represents an operation that mutates the CommissionLine nodes in the graph.
type CommissionLineMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	policy_number    *string
	concept          *string
	expected_amount  *string
	paid_amount      *string
	clearedFields    map[string]struct{}
	statement        *uuid.UUID
	clearedstatement bool
	done             bool
	oldValue         func(context.Context) (*CommissionLine, error)
	predicates       []predicate.CommissionLine
}

var _ ent.Mutation = (*CommissionLineMutation)(nil)

// commissionlineOption allows management of the mutation configuration using functional options.
type commissionlineOption func(*CommissionLineMutation)

// newCommissionLineMutation creates new mutation for the CommissionLine entity.
func newCommissionLineMutation(c config, op Op, opts ...commissionlineOption) *CommissionLineMutation {
	m := &CommissionLineMutation{
		config:        c,
		op:            op,
		typ:           TypeCommissionLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommissionLineID sets the ID field of the mutation.
func withCommissionLineID(id uuid.UUID) commissionlineOption {
	return func(m *CommissionLineMutation) {
		var (
			err   error
			once  sync.Once
			value *CommissionLine
		)
		m.oldValue = func(ctx context.Context) (*CommissionLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommissionLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommissionLine sets the old CommissionLine of the mutation.
func withCommissionLine(node *CommissionLine) commissionlineOption {
	return func(m *CommissionLineMutation) {
		m.oldValue = func(context.Context) (*CommissionLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommissionLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommissionLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommissionLine entities.
func (m *CommissionLineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommissionLineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommissionLineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommissionLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatementID sets the "statement_id" field.
func (m *CommissionLineMutation) SetStatementID(u uuid.UUID) {
	m.statement = &u
}

// StatementID returns the value of the "statement_id" field in the mutation.
func (m *CommissionLineMutation) StatementID() (r uuid.UUID, exists bool) {
	v := m.statement
	if v == nil {
		return
	}
	return *v, true
}

// OldStatementID returns the old "statement_id" field's value of the CommissionLine entity.
// If the CommissionLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionLineMutation) OldStatementID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatementID: %w", err)
	}
	return oldValue.StatementID, nil
}

// ResetStatementID resets all changes to the "statement_id" field.
func (m *CommissionLineMutation) ResetStatementID() {
	m.statement = nil
}

// SetPolicyNumber sets the "policy_number" field.
func (m *CommissionLineMutation) SetPolicyNumber(s string) {
	m.policy_number = &s
}

// PolicyNumber returns the value of the "policy_number" field in the mutation.
func (m *CommissionLineMutation) PolicyNumber() (r string, exists bool) {
	v := m.policy_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumber returns the old "policy_number" field's value of the CommissionLine entity.
// If the CommissionLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionLineMutation) OldPolicyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumber: %w", err)
	}
	return oldValue.PolicyNumber, nil
}

// ResetPolicyNumber resets all changes to the "policy_number" field.
func (m *CommissionLineMutation) ResetPolicyNumber() {
	m.policy_number = nil
}

// SetConcept sets the "concept" field.
func (m *CommissionLineMutation) SetConcept(s string) {
	m.concept = &s
}

// Concept returns the value of the "concept" field in the mutation.
func (m *CommissionLineMutation) Concept() (r string, exists bool) {
	v := m.concept
	if v == nil {
		return
	}
	return *v, true
}

// OldConcept returns the old "concept" field's value of the CommissionLine entity.
// If the CommissionLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionLineMutation) OldConcept(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcept is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcept requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcept: %w", err)
	}
	return oldValue.Concept, nil
}

// ClearConcept clears the value of the "concept" field.
func (m *CommissionLineMutation) ClearConcept() {
	m.concept = nil
	m.clearedFields[commissionline.FieldConcept] = struct{}{}
}

// ConceptCleared returns if the "concept" field was cleared in this mutation.
func (m *CommissionLineMutation) ConceptCleared() bool {
	_, ok := m.clearedFields[commissionline.FieldConcept]
	return ok
}

// ResetConcept resets all changes to the "concept" field.
func (m *CommissionLineMutation) ResetConcept() {
	m.concept = nil
	delete(m.clearedFields, commissionline.FieldConcept)
}

// SetExpectedAmount sets the "expected_amount" field.
func (m *CommissionLineMutation) SetExpectedAmount(s string) {
	m.expected_amount = &s
}

// ExpectedAmount returns the value of the "expected_amount" field in the mutation.
func (m *CommissionLineMutation) ExpectedAmount() (r string, exists bool) {
	v := m.expected_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedAmount returns the old "expected_amount" field's value of the CommissionLine entity.
// If the CommissionLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionLineMutation) OldExpectedAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedAmount: %w", err)
	}
	return oldValue.ExpectedAmount, nil
}

// ResetExpectedAmount resets all changes to the "expected_amount" field.
func (m *CommissionLineMutation) ResetExpectedAmount() {
	m.expected_amount = nil
}

// SetPaidAmount sets the "paid_amount" field.
func (m *CommissionLineMutation) SetPaidAmount(s string) {
	m.paid_amount = &s
}

// PaidAmount returns the value of the "paid_amount" field in the mutation.
func (m *CommissionLineMutation) PaidAmount() (r string, exists bool) {
	v := m.paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAmount returns the old "paid_amount" field's value of the CommissionLine entity.
// If the CommissionLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionLineMutation) OldPaidAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAmount: %w", err)
	}
	return oldValue.PaidAmount, nil
}

// ResetPaidAmount resets all changes to the "paid_amount" field.
func (m *CommissionLineMutation) ResetPaidAmount() {
	m.paid_amount = nil
}

// ClearStatement clears the "statement" edge to the CommissionStatement entity.
func (m *CommissionLineMutation) ClearStatement() {
	m.clearedstatement = true
	m.clearedFields[commissionline.FieldStatementID] = struct{}{}
}

// StatementCleared reports if the "statement" edge to the CommissionStatement entity was cleared.
func (m *CommissionLineMutation) StatementCleared() bool {
	return m.clearedstatement
}

// StatementIDs returns the "statement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StatementID instead. It exists only for internal usage by the builders.
func (m *CommissionLineMutation) StatementIDs() (ids []uuid.UUID) {
	if id := m.statement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStatement resets all changes to the "statement" edge.
func (m *CommissionLineMutation) ResetStatement() {
	m.statement = nil
	m.clearedstatement = false
}

// Where appends a list predicates to the CommissionLineMutation builder.
func (m *CommissionLineMutation) Where(ps ...predicate.CommissionLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommissionLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommissionLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommissionLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommissionLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommissionLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommissionLine).
func (m *CommissionLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommissionLineMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.statement != nil {
		fields = append(fields, commissionline.FieldStatementID)
	}
	if m.policy_number != nil {
		fields = append(fields, commissionline.FieldPolicyNumber)
	}
	if m.concept != nil {
		fields = append(fields, commissionline.FieldConcept)
	}
	if m.expected_amount != nil {
		fields = append(fields, commissionline.FieldExpectedAmount)
	}
	if m.paid_amount != nil {
		fields = append(fields, commissionline.FieldPaidAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommissionLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commissionline.FieldStatementID:
		return m.StatementID()
	case commissionline.FieldPolicyNumber:
		return m.PolicyNumber()
	case commissionline.FieldConcept:
		return m.Concept()
	case commissionline.FieldExpectedAmount:
		return m.ExpectedAmount()
	case commissionline.FieldPaidAmount:
		return m.PaidAmount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommissionLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commissionline.FieldStatementID:
		return m.OldStatementID(ctx)
	case commissionline.FieldPolicyNumber:
		return m.OldPolicyNumber(ctx)
	case commissionline.FieldConcept:
		return m.OldConcept(ctx)
	case commissionline.FieldExpectedAmount:
		return m.OldExpectedAmount(ctx)
	case commissionline.FieldPaidAmount:
		return m.OldPaidAmount(ctx)
	}
	return nil, fmt.Errorf("unknown CommissionLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commissionline.FieldStatementID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatementID(v)
		return nil
	case commissionline.FieldPolicyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumber(v)
		return nil
	case commissionline.FieldConcept:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcept(v)
		return nil
	case commissionline.FieldExpectedAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedAmount(v)
		return nil
	case commissionline.FieldPaidAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAmount(v)
		return nil
	}
	return fmt.Errorf("unknown CommissionLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommissionLineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommissionLineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommissionLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommissionLineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commissionline.FieldConcept) {
		fields = append(fields, commissionline.FieldConcept)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommissionLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommissionLineMutation) ClearField(name string) error {
	switch name {
	case commissionline.FieldConcept:
		m.ClearConcept()
		return nil
	}
	return fmt.Errorf("unknown CommissionLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommissionLineMutation) ResetField(name string) error {
	switch name {
	case commissionline.FieldStatementID:
		m.ResetStatementID()
		return nil
	case commissionline.FieldPolicyNumber:
		m.ResetPolicyNumber()
		return nil
	case commissionline.FieldConcept:
		m.ResetConcept()
		return nil
	case commissionline.FieldExpectedAmount:
		m.ResetExpectedAmount()
		return nil
	case commissionline.FieldPaidAmount:
		m.ResetPaidAmount()
		return nil
	}
	return fmt.Errorf("unknown CommissionLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommissionLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.statement != nil {
		edges = append(edges, commissionline.EdgeStatement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommissionLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commissionline.EdgeStatement:
		if id := m.statement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommissionLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommissionLineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommissionLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstatement {
		edges = append(edges, commissionline.EdgeStatement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommissionLineMutation) EdgeCleared(name string) bool {
	switch name {
	case commissionline.EdgeStatement:
		return m.clearedstatement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommissionLineMutation) ClearEdge(name string) error {
	switch name {
	case commissionline.EdgeStatement:
		m.ClearStatement()
		return nil
	}
	return fmt.Errorf("unknown CommissionLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommissionLineMutation) ResetEdge(name string) error {
	switch name {
	case commissionline.EdgeStatement:
		m.ResetStatement()
		return nil
	}
	return fmt.Errorf("unknown CommissionLine edge %s", name)
}

// CommissionStatementMutation represents an operation that mutates the CommissionStatement nodes in the graph.
type CommissionStatementMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	period         *string
	expected_total *string
	paid_total     *string
	status         *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	agent          *uuid.UUID
	clearedagent   bool
	insurer        *uuid.UUID
	clearedinsurer bool
	lines          map[uuid.UUID]struct{}
	removedlines   map[uuid.UUID]struct{}
	clearedlines   bool
	done           bool
	oldValue       func(context.Context) (*CommissionStatement, error)
	predicates     []predicate.CommissionStatement
}

var _ ent.Mutation = (*CommissionStatementMutation)(nil)

// commissionstatementOption allows management of the mutation configuration using functional options.
type commissionstatementOption func(*CommissionStatementMutation)

// newCommissionStatementMutation creates new mutation for the CommissionStatement entity.
func newCommissionStatementMutation(c config, op Op, opts ...commissionstatementOption) *CommissionStatementMutation {
	m := &CommissionStatementMutation{
		config:        c,
		op:            op,
		typ:           TypeCommissionStatement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommissionStatementID sets the ID field of the mutation.
func withCommissionStatementID(id uuid.UUID) commissionstatementOption {
	return func(m *CommissionStatementMutation) {
		var (
			err   error
			once  sync.Once
			value *CommissionStatement
		)
		m.oldValue = func(ctx context.Context) (*CommissionStatement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommissionStatement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommissionStatement sets the old CommissionStatement of the mutation.
func withCommissionStatement(node *CommissionStatement) commissionstatementOption {
	return func(m *CommissionStatementMutation) {
		m.oldValue = func(context.Context) (*CommissionStatement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommissionStatementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommissionStatementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommissionStatement entities.
func (m *CommissionStatementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommissionStatementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommissionStatementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommissionStatement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *CommissionStatementMutation) SetAgentID(u uuid.UUID) {
	m.agent = &u
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CommissionStatementMutation) AgentID() (r uuid.UUID, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldAgentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CommissionStatementMutation) ResetAgentID() {
	m.agent = nil
}

// SetInsurerID sets the "insurer_id" field.
func (m *CommissionStatementMutation) SetInsurerID(u uuid.UUID) {
	m.insurer = &u
}

// InsurerID returns the value of the "insurer_id" field in the mutation.
func (m *CommissionStatementMutation) InsurerID() (r uuid.UUID, exists bool) {
	v := m.insurer
	if v == nil {
		return
	}
	return *v, true
}

// OldInsurerID returns the old "insurer_id" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldInsurerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsurerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsurerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsurerID: %w", err)
	}
	return oldValue.InsurerID, nil
}

// ResetInsurerID resets all changes to the "insurer_id" field.
func (m *CommissionStatementMutation) ResetInsurerID() {
	m.insurer = nil
}

// SetPeriod sets the "period" field.
func (m *CommissionStatementMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *CommissionStatementMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *CommissionStatementMutation) ResetPeriod() {
	m.period = nil
}

// SetExpectedTotal sets the "expected_total" field.
func (m *CommissionStatementMutation) SetExpectedTotal(s string) {
	m.expected_total = &s
}

// ExpectedTotal returns the value of the "expected_total" field in the mutation.
func (m *CommissionStatementMutation) ExpectedTotal() (r string, exists bool) {
	v := m.expected_total
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedTotal returns the old "expected_total" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldExpectedTotal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedTotal: %w", err)
	}
	return oldValue.ExpectedTotal, nil
}

// ResetExpectedTotal resets all changes to the "expected_total" field.
func (m *CommissionStatementMutation) ResetExpectedTotal() {
	m.expected_total = nil
}

// SetPaidTotal sets the "paid_total" field.
func (m *CommissionStatementMutation) SetPaidTotal(s string) {
	m.paid_total = &s
}

// PaidTotal returns the value of the "paid_total" field in the mutation.
func (m *CommissionStatementMutation) PaidTotal() (r string, exists bool) {
	v := m.paid_total
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidTotal returns the old "paid_total" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldPaidTotal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidTotal: %w", err)
	}
	return oldValue.PaidTotal, nil
}

// ResetPaidTotal resets all changes to the "paid_total" field.
func (m *CommissionStatementMutation) ResetPaidTotal() {
	m.paid_total = nil
}

// SetStatus sets the "status" field.
func (m *CommissionStatementMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CommissionStatementMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommissionStatementMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CommissionStatementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommissionStatementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommissionStatementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommissionStatementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommissionStatementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CommissionStatement entity.
// If the CommissionStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionStatementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommissionStatementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *CommissionStatementMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[commissionstatement.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *CommissionStatementMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *CommissionStatementMutation) AgentIDs() (ids []uuid.UUID) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *CommissionStatementMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearInsurer clears the "insurer" edge to the Insurer entity.
func (m *CommissionStatementMutation) ClearInsurer() {
	m.clearedinsurer = true
	m.clearedFields[commissionstatement.FieldInsurerID] = struct{}{}
}

// InsurerCleared reports if the "insurer" edge to the Insurer entity was cleared.
func (m *CommissionStatementMutation) InsurerCleared() bool {
	return m.clearedinsurer
}

// InsurerIDs returns the "insurer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InsurerID instead. It exists only for internal usage by the builders.
func (m *CommissionStatementMutation) InsurerIDs() (ids []uuid.UUID) {
	if id := m.insurer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInsurer resets all changes to the "insurer" edge.
func (m *CommissionStatementMutation) ResetInsurer() {
	m.insurer = nil
	m.clearedinsurer = false
}

// AddLineIDs adds the "lines" edge to the CommissionLine entity by ids.
func (m *CommissionStatementMutation) AddLineIDs(ids ...uuid.UUID) {
	if m.lines == nil {
		m.lines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lines[ids[i]] = struct{}{}
	}
}

// ClearLines clears the "lines" edge to the CommissionLine entity.
func (m *CommissionStatementMutation) ClearLines() {
	m.clearedlines = true
}

// LinesCleared reports if the "lines" edge to the CommissionLine entity was cleared.
func (m *CommissionStatementMutation) LinesCleared() bool {
	return m.clearedlines
}

// RemoveLineIDs removes the "lines" edge to the CommissionLine entity by IDs.
func (m *CommissionStatementMutation) RemoveLineIDs(ids ...uuid.UUID) {
	if m.removedlines == nil {
		m.removedlines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lines, ids[i])
		m.removedlines[ids[i]] = struct{}{}
	}
}

// RemovedLines returns the removed IDs of the "lines" edge to the CommissionLine entity.
func (m *CommissionStatementMutation) RemovedLinesIDs() (ids []uuid.UUID) {
	for id := range m.removedlines {
		ids = append(ids, id)
	}
	return
}

// LinesIDs returns the "lines" edge IDs in the mutation.
func (m *CommissionStatementMutation) LinesIDs() (ids []uuid.UUID) {
	for id := range m.lines {
		ids = append(ids, id)
	}
	return
}

// ResetLines resets all changes to the "lines" edge.
func (m *CommissionStatementMutation) ResetLines() {
	m.lines = nil
	m.clearedlines = false
	m.removedlines = nil
}

// Where appends a list predicates to the CommissionStatementMutation builder.
func (m *CommissionStatementMutation) Where(ps ...predicate.CommissionStatement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommissionStatementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommissionStatementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommissionStatement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommissionStatementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommissionStatementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommissionStatement).
func (m *CommissionStatementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommissionStatementMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent != nil {
		fields = append(fields, commissionstatement.FieldAgentID)
	}
	if m.insurer != nil {
		fields = append(fields, commissionstatement.FieldInsurerID)
	}
	if m.period != nil {
		fields = append(fields, commissionstatement.FieldPeriod)
	}
	if m.expected_total != nil {
		fields = append(fields, commissionstatement.FieldExpectedTotal)
	}
	if m.paid_total != nil {
		fields = append(fields, commissionstatement.FieldPaidTotal)
	}
	if m.status != nil {
		fields = append(fields, commissionstatement.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, commissionstatement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, commissionstatement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommissionStatementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commissionstatement.FieldAgentID:
		return m.AgentID()
	case commissionstatement.FieldInsurerID:
		return m.InsurerID()
	case commissionstatement.FieldPeriod:
		return m.Period()
	case commissionstatement.FieldExpectedTotal:
		return m.ExpectedTotal()
	case commissionstatement.FieldPaidTotal:
		return m.PaidTotal()
	case commissionstatement.FieldStatus:
		return m.Status()
	case commissionstatement.FieldCreatedAt:
		return m.CreatedAt()
	case commissionstatement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommissionStatementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commissionstatement.FieldAgentID:
		return m.OldAgentID(ctx)
	case commissionstatement.FieldInsurerID:
		return m.OldInsurerID(ctx)
	case commissionstatement.FieldPeriod:
		return m.OldPeriod(ctx)
	case commissionstatement.FieldExpectedTotal:
		return m.OldExpectedTotal(ctx)
	case commissionstatement.FieldPaidTotal:
		return m.OldPaidTotal(ctx)
	case commissionstatement.FieldStatus:
		return m.OldStatus(ctx)
	case commissionstatement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commissionstatement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CommissionStatement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionStatementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commissionstatement.FieldAgentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case commissionstatement.FieldInsurerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsurerID(v)
		return nil
	case commissionstatement.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case commissionstatement.FieldExpectedTotal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedTotal(v)
		return nil
	case commissionstatement.FieldPaidTotal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidTotal(v)
		return nil
	case commissionstatement.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commissionstatement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commissionstatement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CommissionStatement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommissionStatementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommissionStatementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionStatementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommissionStatement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommissionStatementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommissionStatementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommissionStatementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CommissionStatement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommissionStatementMutation) ResetField(name string) error {
	switch name {
	case commissionstatement.FieldAgentID:
		m.ResetAgentID()
		return nil
	case commissionstatement.FieldInsurerID:
		m.ResetInsurerID()
		return nil
	case commissionstatement.FieldPeriod:
		m.ResetPeriod()
		return nil
	case commissionstatement.FieldExpectedTotal:
		m.ResetExpectedTotal()
		return nil
	case commissionstatement.FieldPaidTotal:
		m.ResetPaidTotal()
		return nil
	case commissionstatement.FieldStatus:
		m.ResetStatus()
		return nil
	case commissionstatement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commissionstatement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CommissionStatement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommissionStatementMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.agent != nil {
		edges = append(edges, commissionstatement.EdgeAgent)
	}
	if m.insurer != nil {
		edges = append(edges, commissionstatement.EdgeInsurer)
	}
	if m.lines != nil {
		edges = append(edges, commissionstatement.EdgeLines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommissionStatementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commissionstatement.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case commissionstatement.EdgeInsurer:
		if id := m.insurer; id != nil {
			return []ent.Value{*id}
		}
	case commissionstatement.EdgeLines:
		ids := make([]ent.Value, 0, len(m.lines))
		for id := range m.lines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommissionStatementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedlines != nil {
		edges = append(edges, commissionstatement.EdgeLines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommissionStatementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case commissionstatement.EdgeLines:
		ids := make([]ent.Value, 0, len(m.removedlines))
		for id := range m.removedlines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommissionStatementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedagent {
		edges = append(edges, commissionstatement.EdgeAgent)
	}
	if m.clearedinsurer {
		edges = append(edges, commissionstatement.EdgeInsurer)
	}
	if m.clearedlines {
		edges = append(edges, commissionstatement.EdgeLines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommissionStatementMutation) EdgeCleared(name string) bool {
	switch name {
	case commissionstatement.EdgeAgent:
		return m.clearedagent
	case commissionstatement.EdgeInsurer:
		return m.clearedinsurer
	case commissionstatement.EdgeLines:
		return m.clearedlines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommissionStatementMutation) ClearEdge(name string) error {
	switch name {
	case commissionstatement.EdgeAgent:
		m.ClearAgent()
		return nil
	case commissionstatement.EdgeInsurer:
		m.ClearInsurer()
		return nil
	}
	return fmt.Errorf("unknown CommissionStatement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommissionStatementMutation) ResetEdge(name string) error {
	switch name {
	case commissionstatement.EdgeAgent:
		m.ResetAgent()
		return nil
	case commissionstatement.EdgeInsurer:
		m.ResetInsurer()
		return nil
	case commissionstatement.EdgeLines:
		m.ResetLines()
		return nil
	}
	return fmt.Errorf("unknown CommissionStatement edge %s", name)
}

// InsurerMutation represents an operation that mutates the Insurer nodes in the graph.
type InsurerMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	active            *bool
	clearedFields     map[string]struct{}
	policies          map[uuid.UUID]struct{}
	removedpolicies   map[uuid.UUID]struct{}
	clearedpolicies   bool
	statements        map[uuid.UUID]struct{}
	removedstatements map[uuid.UUID]struct{}
	clearedstatements bool
	done              bool
	oldValue          func(context.Context) (*Insurer, error)
	predicates        []predicate.Insurer
}

var _ ent.Mutation = (*InsurerMutation)(nil)

// insurerOption allows management of the mutation configuration using functional options.
type insurerOption func(*InsurerMutation)

// newInsurerMutation creates new mutation for the Insurer entity.
func newInsurerMutation(c config, op Op, opts ...insurerOption) *InsurerMutation {
	m := &InsurerMutation{
		config:        c,
		op:            op,
		typ:           TypeInsurer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsurerID sets the ID field of the mutation.
func withInsurerID(id uuid.UUID) insurerOption {
	return func(m *InsurerMutation) {
		var (
			err   error
			once  sync.Once
			value *Insurer
		)
		m.oldValue = func(ctx context.Context) (*Insurer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insurer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsurer sets the old Insurer of the mutation.
func withInsurer(node *Insurer) insurerOption {
	return func(m *InsurerMutation) {
		m.oldValue = func(context.Context) (*Insurer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsurerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsurerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insurer entities.
func (m *InsurerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsurerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsurerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insurer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *InsurerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InsurerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Insurer entity.
// If the Insurer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InsurerMutation) ResetName() {
	m.name = nil
}

// SetActive sets the "active" field.
func (m *InsurerMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *InsurerMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Insurer entity.
// If the Insurer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurerMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *InsurerMutation) ResetActive() {
	m.active = nil
}

// AddPolicyIDs adds the "policies" edge to the Poliza entity by ids.
func (m *InsurerMutation) AddPolicyIDs(ids ...uuid.UUID) {
	if m.policies == nil {
		m.policies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.policies[ids[i]] = struct{}{}
	}
}

// ClearPolicies clears the "policies" edge to the Poliza entity.
func (m *InsurerMutation) ClearPolicies() {
	m.clearedpolicies = true
}

// PoliciesCleared reports if the "policies" edge to the Poliza entity was cleared.
func (m *InsurerMutation) PoliciesCleared() bool {
	return m.clearedpolicies
}

// RemovePolicyIDs removes the "policies" edge to the Poliza entity by IDs.
func (m *InsurerMutation) RemovePolicyIDs(ids ...uuid.UUID) {
	if m.removedpolicies == nil {
		m.removedpolicies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.policies, ids[i])
		m.removedpolicies[ids[i]] = struct{}{}
	}
}

// RemovedPolicies returns the removed IDs of the "policies" edge to the Poliza entity.
func (m *InsurerMutation) RemovedPoliciesIDs() (ids []uuid.UUID) {
	for id := range m.removedpolicies {
		ids = append(ids, id)
	}
	return
}

// PoliciesIDs returns the "policies" edge IDs in the mutation.
func (m *InsurerMutation) PoliciesIDs() (ids []uuid.UUID) {
	for id := range m.policies {
		ids = append(ids, id)
	}
	return
}

// ResetPolicies resets all changes to the "policies" edge.
func (m *InsurerMutation) ResetPolicies() {
	m.policies = nil
	m.clearedpolicies = false
	m.removedpolicies = nil
}

// AddStatementIDs adds the "statements" edge to the CommissionStatement entity by ids.
func (m *InsurerMutation) AddStatementIDs(ids ...uuid.UUID) {
	if m.statements == nil {
		m.statements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.statements[ids[i]] = struct{}{}
	}
}

// ClearStatements clears the "statements" edge to the CommissionStatement entity.
func (m *InsurerMutation) ClearStatements() {
	m.clearedstatements = true
}

// StatementsCleared reports if the "statements" edge to the CommissionStatement entity was cleared.
func (m *InsurerMutation) StatementsCleared() bool {
	return m.clearedstatements
}

// RemoveStatementIDs removes the "statements" edge to the CommissionStatement entity by IDs.
func (m *InsurerMutation) RemoveStatementIDs(ids ...uuid.UUID) {
	if m.removedstatements == nil {
		m.removedstatements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.statements, ids[i])
		m.removedstatements[ids[i]] = struct{}{}
	}
}

// RemovedStatements returns the removed IDs of the "statements" edge to the CommissionStatement entity.
func (m *InsurerMutation) RemovedStatementsIDs() (ids []uuid.UUID) {
	for id := range m.removedstatements {
		ids = append(ids, id)
	}
	return
}

// StatementsIDs returns the "statements" edge IDs in the mutation.
func (m *InsurerMutation) StatementsIDs() (ids []uuid.UUID) {
	for id := range m.statements {
		ids = append(ids, id)
	}
	return
}

// ResetStatements resets all changes to the "statements" edge.
func (m *InsurerMutation) ResetStatements() {
	m.statements = nil
	m.clearedstatements = false
	m.removedstatements = nil
}

// Where appends a list predicates to the InsurerMutation builder.
func (m *InsurerMutation) Where(ps ...predicate.Insurer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsurerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsurerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insurer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsurerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsurerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insurer).
func (m *InsurerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsurerMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, insurer.FieldName)
	}
	if m.active != nil {
		fields = append(fields, insurer.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsurerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insurer.FieldName:
		return m.Name()
	case insurer.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsurerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insurer.FieldName:
		return m.OldName(ctx)
	case insurer.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Insurer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsurerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insurer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case insurer.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Insurer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsurerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsurerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsurerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Insurer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsurerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsurerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsurerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Insurer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsurerMutation) ResetField(name string) error {
	switch name {
	case insurer.FieldName:
		m.ResetName()
		return nil
	case insurer.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Insurer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsurerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.policies != nil {
		edges = append(edges, insurer.EdgePolicies)
	}
	if m.statements != nil {
		edges = append(edges, insurer.EdgeStatements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsurerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insurer.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.policies))
		for id := range m.policies {
			ids = append(ids, id)
		}
		return ids
	case insurer.EdgeStatements:
		ids := make([]ent.Value, 0, len(m.statements))
		for id := range m.statements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsurerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpolicies != nil {
		edges = append(edges, insurer.EdgePolicies)
	}
	if m.removedstatements != nil {
		edges = append(edges, insurer.EdgeStatements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsurerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case insurer.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.removedpolicies))
		for id := range m.removedpolicies {
			ids = append(ids, id)
		}
		return ids
	case insurer.EdgeStatements:
		ids := make([]ent.Value, 0, len(m.removedstatements))
		for id := range m.removedstatements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsurerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpolicies {
		edges = append(edges, insurer.EdgePolicies)
	}
	if m.clearedstatements {
		edges = append(edges, insurer.EdgeStatements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsurerMutation) EdgeCleared(name string) bool {
	switch name {
	case insurer.EdgePolicies:
		return m.clearedpolicies
	case insurer.EdgeStatements:
		return m.clearedstatements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsurerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Insurer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsurerMutation) ResetEdge(name string) error {
	switch name {
	case insurer.EdgePolicies:
		m.ResetPolicies()
		return nil
	case insurer.EdgeStatements:
		m.ResetStatements()
		return nil
	}
	return fmt.Errorf("unknown Insurer edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	full_name     *string
	phone         *string
	email         *string
	source        *string
	status        *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	agent         *uuid.UUID
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*Lead, error)
	predicates    []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id uuid.UUID) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lead entities.
func (m *LeadMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *LeadMutation) SetAgentID(u uuid.UUID) {
	m.agent = &u
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LeadMutation) AgentID() (r uuid.UUID, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAgentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LeadMutation) ResetAgentID() {
	m.agent = nil
}

// SetFullName sets the "full_name" field.
func (m *LeadMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *LeadMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *LeadMutation) ResetFullName() {
	m.full_name = nil
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *LeadMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[lead.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *LeadMutation) EmailCleared() bool {
	_, ok := m.clearedFields[lead.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, lead.FieldEmail)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *LeadMutation) ClearSource() {
	m.source = nil
	m.clearedFields[lead.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *LeadMutation) SourceCleared() bool {
	_, ok := m.clearedFields[lead.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, lead.FieldSource)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *LeadMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[lead.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *LeadMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) AgentIDs() (ids []uuid.UUID) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *LeadMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent != nil {
		fields = append(fields, lead.FieldAgentID)
	}
	if m.full_name != nil {
		fields = append(fields, lead.FieldFullName)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldAgentID:
		return m.AgentID()
	case lead.FieldFullName:
		return m.FullName()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldAgentID:
		return m.OldAgentID(ctx)
	case lead.FieldFullName:
		return m.OldFullName(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldAgentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case lead.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldEmail) {
		fields = append(fields, lead.FieldEmail)
	}
	if m.FieldCleared(lead.FieldSource) {
		fields = append(fields, lead.FieldSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldEmail:
		m.ClearEmail()
		return nil
	case lead.FieldSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldAgentID:
		m.ResetAgentID()
		return nil
	case lead.FieldFullName:
		m.ResetFullName()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, lead.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, lead.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	case lead.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// PolicyAIImportMutation represents an operation that mutates the PolicyAIImport nodes in the graph.
type PolicyAIImportMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	client_id               *uuid.UUID
	storage_disk            *string
	file_path               *string
	original_filename       *string
	mime_type               *string
	status                  *string
	processing_stage        *string
	processing_heartbeat_at *time.Time
	processing_ended_at     *time.Time
	extracted_text          *string
	ai_data                 *json.RawMessage
	appendai_data           json.RawMessage
	ai_confidence           *json.RawMessage
	appendai_confidence     json.RawMessage
	missing_fields          *[]string
	appendmissing_fields    []string
	error_message           *string
	took_ms                 *int64
	addtook_ms              *int64
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	agent                   *uuid.UUID
	clearedagent            bool
	done                    bool
	oldValue                func(context.Context) (*PolicyAIImport, error)
	predicates              []predicate.PolicyAIImport
}

var _ ent.Mutation = (*PolicyAIImportMutation)(nil)

// policyaiimportOption allows management of the mutation configuration using functional options.
type policyaiimportOption func(*PolicyAIImportMutation)

// newPolicyAIImportMutation creates new mutation for the PolicyAIImport entity.
func newPolicyAIImportMutation(c config, op Op, opts ...policyaiimportOption) *PolicyAIImportMutation {
	m := &PolicyAIImportMutation{
		config:        c,
		op:            op,
		typ:           TypePolicyAIImport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolicyAIImportID sets the ID field of the mutation.
func withPolicyAIImportID(id uuid.UUID) policyaiimportOption {
	return func(m *PolicyAIImportMutation) {
		var (
			err   error
			once  sync.Once
			value *PolicyAIImport
		)
		m.oldValue = func(ctx context.Context) (*PolicyAIImport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PolicyAIImport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPolicyAIImport sets the old PolicyAIImport of the mutation.
func withPolicyAIImport(node *PolicyAIImport) policyaiimportOption {
	return func(m *PolicyAIImportMutation) {
		m.oldValue = func(context.Context) (*PolicyAIImport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolicyAIImportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolicyAIImportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PolicyAIImport entities.
func (m *PolicyAIImportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolicyAIImportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolicyAIImportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PolicyAIImport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *PolicyAIImportMutation) SetAgentID(u uuid.UUID) {
	m.agent = &u
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *PolicyAIImportMutation) AgentID() (r uuid.UUID, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldAgentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *PolicyAIImportMutation) ResetAgentID() {
	m.agent = nil
}

// SetClientID sets the "client_id" field.
func (m *PolicyAIImportMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *PolicyAIImportMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldClientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *PolicyAIImportMutation) ClearClientID() {
	m.client_id = nil
	m.clearedFields[policyaiimport.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *PolicyAIImportMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *PolicyAIImportMutation) ResetClientID() {
	m.client_id = nil
	delete(m.clearedFields, policyaiimport.FieldClientID)
}

// SetStorageDisk sets the "storage_disk" field.
func (m *PolicyAIImportMutation) SetStorageDisk(s string) {
	m.storage_disk = &s
}

// StorageDisk returns the value of the "storage_disk" field in the mutation.
func (m *PolicyAIImportMutation) StorageDisk() (r string, exists bool) {
	v := m.storage_disk
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageDisk returns the old "storage_disk" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldStorageDisk(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageDisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageDisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageDisk: %w", err)
	}
	return oldValue.StorageDisk, nil
}

// ResetStorageDisk resets all changes to the "storage_disk" field.
func (m *PolicyAIImportMutation) ResetStorageDisk() {
	m.storage_disk = nil
}

// SetFilePath sets the "file_path" field.
func (m *PolicyAIImportMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *PolicyAIImportMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *PolicyAIImportMutation) ResetFilePath() {
	m.file_path = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *PolicyAIImportMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *PolicyAIImportMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *PolicyAIImportMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetMimeType sets the "mime_type" field.
func (m *PolicyAIImportMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *PolicyAIImportMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *PolicyAIImportMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetStatus sets the "status" field.
func (m *PolicyAIImportMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PolicyAIImportMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PolicyAIImportMutation) ResetStatus() {
	m.status = nil
}

// SetProcessingStage sets the "processing_stage" field.
func (m *PolicyAIImportMutation) SetProcessingStage(s string) {
	m.processing_stage = &s
}

// ProcessingStage returns the value of the "processing_stage" field in the mutation.
func (m *PolicyAIImportMutation) ProcessingStage() (r string, exists bool) {
	v := m.processing_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStage returns the old "processing_stage" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldProcessingStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStage: %w", err)
	}
	return oldValue.ProcessingStage, nil
}

// ClearProcessingStage clears the value of the "processing_stage" field.
func (m *PolicyAIImportMutation) ClearProcessingStage() {
	m.processing_stage = nil
	m.clearedFields[policyaiimport.FieldProcessingStage] = struct{}{}
}

// ProcessingStageCleared returns if the "processing_stage" field was cleared in this mutation.
func (m *PolicyAIImportMutation) ProcessingStageCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldProcessingStage]
	return ok
}

// ResetProcessingStage resets all changes to the "processing_stage" field.
func (m *PolicyAIImportMutation) ResetProcessingStage() {
	m.processing_stage = nil
	delete(m.clearedFields, policyaiimport.FieldProcessingStage)
}

// SetProcessingHeartbeatAt sets the "processing_heartbeat_at" field.
func (m *PolicyAIImportMutation) SetProcessingHeartbeatAt(t time.Time) {
	m.processing_heartbeat_at = &t
}

// ProcessingHeartbeatAt returns the value of the "processing_heartbeat_at" field in the mutation.
func (m *PolicyAIImportMutation) ProcessingHeartbeatAt() (r time.Time, exists bool) {
	v := m.processing_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingHeartbeatAt returns the old "processing_heartbeat_at" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldProcessingHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingHeartbeatAt: %w", err)
	}
	return oldValue.ProcessingHeartbeatAt, nil
}

// ClearProcessingHeartbeatAt clears the value of the "processing_heartbeat_at" field.
func (m *PolicyAIImportMutation) ClearProcessingHeartbeatAt() {
	m.processing_heartbeat_at = nil
	m.clearedFields[policyaiimport.FieldProcessingHeartbeatAt] = struct{}{}
}

// ProcessingHeartbeatAtCleared returns if the "processing_heartbeat_at" field was cleared in this mutation.
func (m *PolicyAIImportMutation) ProcessingHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldProcessingHeartbeatAt]
	return ok
}

// ResetProcessingHeartbeatAt resets all changes to the "processing_heartbeat_at" field.
func (m *PolicyAIImportMutation) ResetProcessingHeartbeatAt() {
	m.processing_heartbeat_at = nil
	delete(m.clearedFields, policyaiimport.FieldProcessingHeartbeatAt)
}

// SetProcessingEndedAt sets the "processing_ended_at" field.
func (m *PolicyAIImportMutation) SetProcessingEndedAt(t time.Time) {
	m.processing_ended_at = &t
}

// ProcessingEndedAt returns the value of the "processing_ended_at" field in the mutation.
func (m *PolicyAIImportMutation) ProcessingEndedAt() (r time.Time, exists bool) {
	v := m.processing_ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingEndedAt returns the old "processing_ended_at" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldProcessingEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingEndedAt: %w", err)
	}
	return oldValue.ProcessingEndedAt, nil
}

// ClearProcessingEndedAt clears the value of the "processing_ended_at" field.
func (m *PolicyAIImportMutation) ClearProcessingEndedAt() {
	m.processing_ended_at = nil
	m.clearedFields[policyaiimport.FieldProcessingEndedAt] = struct{}{}
}

// ProcessingEndedAtCleared returns if the "processing_ended_at" field was cleared in this mutation.
func (m *PolicyAIImportMutation) ProcessingEndedAtCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldProcessingEndedAt]
	return ok
}

// ResetProcessingEndedAt resets all changes to the "processing_ended_at" field.
func (m *PolicyAIImportMutation) ResetProcessingEndedAt() {
	m.processing_ended_at = nil
	delete(m.clearedFields, policyaiimport.FieldProcessingEndedAt)
}

// SetExtractedText sets the "extracted_text" field.
func (m *PolicyAIImportMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *PolicyAIImportMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *PolicyAIImportMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[policyaiimport.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *PolicyAIImportMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *PolicyAIImportMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, policyaiimport.FieldExtractedText)
}

// SetAiData sets the "ai_data" field.
func (m *PolicyAIImportMutation) SetAiData(jm json.RawMessage) {
	m.ai_data = &jm
	m.appendai_data = nil
}

// AiData returns the value of the "ai_data" field in the mutation.
func (m *PolicyAIImportMutation) AiData() (r json.RawMessage, exists bool) {
	v := m.ai_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAiData returns the old "ai_data" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldAiData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiData: %w", err)
	}
	return oldValue.AiData, nil
}

// AppendAiData adds jm to the "ai_data" field.
func (m *PolicyAIImportMutation) AppendAiData(jm json.RawMessage) {
	m.appendai_data = append(m.appendai_data, jm...)
}

// AppendedAiData returns the list of values that were appended to the "ai_data" field in this mutation.
func (m *PolicyAIImportMutation) AppendedAiData() (json.RawMessage, bool) {
	if len(m.appendai_data) == 0 {
		return nil, false
	}
	return m.appendai_data, true
}

// ClearAiData clears the value of the "ai_data" field.
func (m *PolicyAIImportMutation) ClearAiData() {
	m.ai_data = nil
	m.appendai_data = nil
	m.clearedFields[policyaiimport.FieldAiData] = struct{}{}
}

// AiDataCleared returns if the "ai_data" field was cleared in this mutation.
func (m *PolicyAIImportMutation) AiDataCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldAiData]
	return ok
}

// ResetAiData resets all changes to the "ai_data" field.
func (m *PolicyAIImportMutation) ResetAiData() {
	m.ai_data = nil
	m.appendai_data = nil
	delete(m.clearedFields, policyaiimport.FieldAiData)
}

// SetAiConfidence sets the "ai_confidence" field.
func (m *PolicyAIImportMutation) SetAiConfidence(jm json.RawMessage) {
	m.ai_confidence = &jm
	m.appendai_confidence = nil
}

// AiConfidence returns the value of the "ai_confidence" field in the mutation.
func (m *PolicyAIImportMutation) AiConfidence() (r json.RawMessage, exists bool) {
	v := m.ai_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAiConfidence returns the old "ai_confidence" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldAiConfidence(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiConfidence: %w", err)
	}
	return oldValue.AiConfidence, nil
}

// AppendAiConfidence adds jm to the "ai_confidence" field.
func (m *PolicyAIImportMutation) AppendAiConfidence(jm json.RawMessage) {
	m.appendai_confidence = append(m.appendai_confidence, jm...)
}

// AppendedAiConfidence returns the list of values that were appended to the "ai_confidence" field in this mutation.
func (m *PolicyAIImportMutation) AppendedAiConfidence() (json.RawMessage, bool) {
	if len(m.appendai_confidence) == 0 {
		return nil, false
	}
	return m.appendai_confidence, true
}

// ClearAiConfidence clears the value of the "ai_confidence" field.
func (m *PolicyAIImportMutation) ClearAiConfidence() {
	m.ai_confidence = nil
	m.appendai_confidence = nil
	m.clearedFields[policyaiimport.FieldAiConfidence] = struct{}{}
}

// AiConfidenceCleared returns if the "ai_confidence" field was cleared in this mutation.
func (m *PolicyAIImportMutation) AiConfidenceCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldAiConfidence]
	return ok
}

// ResetAiConfidence resets all changes to the "ai_confidence" field.
func (m *PolicyAIImportMutation) ResetAiConfidence() {
	m.ai_confidence = nil
	m.appendai_confidence = nil
	delete(m.clearedFields, policyaiimport.FieldAiConfidence)
}

// SetMissingFields sets the "missing_fields" field.
func (m *PolicyAIImportMutation) SetMissingFields(s []string) {
	m.missing_fields = &s
	m.appendmissing_fields = nil
}

// MissingFields returns the value of the "missing_fields" field in the mutation.
func (m *PolicyAIImportMutation) MissingFields() (r []string, exists bool) {
	v := m.missing_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldMissingFields returns the old "missing_fields" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldMissingFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissingFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissingFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissingFields: %w", err)
	}
	return oldValue.MissingFields, nil
}

// AppendMissingFields adds s to the "missing_fields" field.
func (m *PolicyAIImportMutation) AppendMissingFields(s []string) {
	m.appendmissing_fields = append(m.appendmissing_fields, s...)
}

// AppendedMissingFields returns the list of values that were appended to the "missing_fields" field in this mutation.
func (m *PolicyAIImportMutation) AppendedMissingFields() ([]string, bool) {
	if len(m.appendmissing_fields) == 0 {
		return nil, false
	}
	return m.appendmissing_fields, true
}

// ClearMissingFields clears the value of the "missing_fields" field.
func (m *PolicyAIImportMutation) ClearMissingFields() {
	m.missing_fields = nil
	m.appendmissing_fields = nil
	m.clearedFields[policyaiimport.FieldMissingFields] = struct{}{}
}

// MissingFieldsCleared returns if the "missing_fields" field was cleared in this mutation.
func (m *PolicyAIImportMutation) MissingFieldsCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldMissingFields]
	return ok
}

// ResetMissingFields resets all changes to the "missing_fields" field.
func (m *PolicyAIImportMutation) ResetMissingFields() {
	m.missing_fields = nil
	m.appendmissing_fields = nil
	delete(m.clearedFields, policyaiimport.FieldMissingFields)
}

// SetErrorMessage sets the "error_message" field.
func (m *PolicyAIImportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PolicyAIImportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PolicyAIImportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[policyaiimport.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PolicyAIImportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PolicyAIImportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, policyaiimport.FieldErrorMessage)
}

// SetTookMs sets the "took_ms" field.
func (m *PolicyAIImportMutation) SetTookMs(i int64) {
	m.took_ms = &i
	m.addtook_ms = nil
}

// TookMs returns the value of the "took_ms" field in the mutation.
func (m *PolicyAIImportMutation) TookMs() (r int64, exists bool) {
	v := m.took_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTookMs returns the old "took_ms" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldTookMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTookMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTookMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTookMs: %w", err)
	}
	return oldValue.TookMs, nil
}

// AddTookMs adds i to the "took_ms" field.
func (m *PolicyAIImportMutation) AddTookMs(i int64) {
	if m.addtook_ms != nil {
		*m.addtook_ms += i
	} else {
		m.addtook_ms = &i
	}
}

// AddedTookMs returns the value that was added to the "took_ms" field in this mutation.
func (m *PolicyAIImportMutation) AddedTookMs() (r int64, exists bool) {
	v := m.addtook_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearTookMs clears the value of the "took_ms" field.
func (m *PolicyAIImportMutation) ClearTookMs() {
	m.took_ms = nil
	m.addtook_ms = nil
	m.clearedFields[policyaiimport.FieldTookMs] = struct{}{}
}

// TookMsCleared returns if the "took_ms" field was cleared in this mutation.
func (m *PolicyAIImportMutation) TookMsCleared() bool {
	_, ok := m.clearedFields[policyaiimport.FieldTookMs]
	return ok
}

// ResetTookMs resets all changes to the "took_ms" field.
func (m *PolicyAIImportMutation) ResetTookMs() {
	m.took_ms = nil
	m.addtook_ms = nil
	delete(m.clearedFields, policyaiimport.FieldTookMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *PolicyAIImportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PolicyAIImportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PolicyAIImportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PolicyAIImportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PolicyAIImportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PolicyAIImport entity.
// If the PolicyAIImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyAIImportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PolicyAIImportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *PolicyAIImportMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[policyaiimport.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *PolicyAIImportMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *PolicyAIImportMutation) AgentIDs() (ids []uuid.UUID) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *PolicyAIImportMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the PolicyAIImportMutation builder.
func (m *PolicyAIImportMutation) Where(ps ...predicate.PolicyAIImport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolicyAIImportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolicyAIImportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PolicyAIImport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolicyAIImportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolicyAIImportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PolicyAIImport).
func (m *PolicyAIImportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolicyAIImportMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.agent != nil {
		fields = append(fields, policyaiimport.FieldAgentID)
	}
	if m.client_id != nil {
		fields = append(fields, policyaiimport.FieldClientID)
	}
	if m.storage_disk != nil {
		fields = append(fields, policyaiimport.FieldStorageDisk)
	}
	if m.file_path != nil {
		fields = append(fields, policyaiimport.FieldFilePath)
	}
	if m.original_filename != nil {
		fields = append(fields, policyaiimport.FieldOriginalFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, policyaiimport.FieldMimeType)
	}
	if m.status != nil {
		fields = append(fields, policyaiimport.FieldStatus)
	}
	if m.processing_stage != nil {
		fields = append(fields, policyaiimport.FieldProcessingStage)
	}
	if m.processing_heartbeat_at != nil {
		fields = append(fields, policyaiimport.FieldProcessingHeartbeatAt)
	}
	if m.processing_ended_at != nil {
		fields = append(fields, policyaiimport.FieldProcessingEndedAt)
	}
	if m.extracted_text != nil {
		fields = append(fields, policyaiimport.FieldExtractedText)
	}
	if m.ai_data != nil {
		fields = append(fields, policyaiimport.FieldAiData)
	}
	if m.ai_confidence != nil {
		fields = append(fields, policyaiimport.FieldAiConfidence)
	}
	if m.missing_fields != nil {
		fields = append(fields, policyaiimport.FieldMissingFields)
	}
	if m.error_message != nil {
		fields = append(fields, policyaiimport.FieldErrorMessage)
	}
	if m.took_ms != nil {
		fields = append(fields, policyaiimport.FieldTookMs)
	}
	if m.created_at != nil {
		fields = append(fields, policyaiimport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, policyaiimport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolicyAIImportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case policyaiimport.FieldAgentID:
		return m.AgentID()
	case policyaiimport.FieldClientID:
		return m.ClientID()
	case policyaiimport.FieldStorageDisk:
		return m.StorageDisk()
	case policyaiimport.FieldFilePath:
		return m.FilePath()
	case policyaiimport.FieldOriginalFilename:
		return m.OriginalFilename()
	case policyaiimport.FieldMimeType:
		return m.MimeType()
	case policyaiimport.FieldStatus:
		return m.Status()
	case policyaiimport.FieldProcessingStage:
		return m.ProcessingStage()
	case policyaiimport.FieldProcessingHeartbeatAt:
		return m.ProcessingHeartbeatAt()
	case policyaiimport.FieldProcessingEndedAt:
		return m.ProcessingEndedAt()
	case policyaiimport.FieldExtractedText:
		return m.ExtractedText()
	case policyaiimport.FieldAiData:
		return m.AiData()
	case policyaiimport.FieldAiConfidence:
		return m.AiConfidence()
	case policyaiimport.FieldMissingFields:
		return m.MissingFields()
	case policyaiimport.FieldErrorMessage:
		return m.ErrorMessage()
	case policyaiimport.FieldTookMs:
		return m.TookMs()
	case policyaiimport.FieldCreatedAt:
		return m.CreatedAt()
	case policyaiimport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolicyAIImportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case policyaiimport.FieldAgentID:
		return m.OldAgentID(ctx)
	case policyaiimport.FieldClientID:
		return m.OldClientID(ctx)
	case policyaiimport.FieldStorageDisk:
		return m.OldStorageDisk(ctx)
	case policyaiimport.FieldFilePath:
		return m.OldFilePath(ctx)
	case policyaiimport.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case policyaiimport.FieldMimeType:
		return m.OldMimeType(ctx)
	case policyaiimport.FieldStatus:
		return m.OldStatus(ctx)
	case policyaiimport.FieldProcessingStage:
		return m.OldProcessingStage(ctx)
	case policyaiimport.FieldProcessingHeartbeatAt:
		return m.OldProcessingHeartbeatAt(ctx)
	case policyaiimport.FieldProcessingEndedAt:
		return m.OldProcessingEndedAt(ctx)
	case policyaiimport.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case policyaiimport.FieldAiData:
		return m.OldAiData(ctx)
	case policyaiimport.FieldAiConfidence:
		return m.OldAiConfidence(ctx)
	case policyaiimport.FieldMissingFields:
		return m.OldMissingFields(ctx)
	case policyaiimport.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case policyaiimport.FieldTookMs:
		return m.OldTookMs(ctx)
	case policyaiimport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case policyaiimport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PolicyAIImport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyAIImportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case policyaiimport.FieldAgentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case policyaiimport.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case policyaiimport.FieldStorageDisk:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageDisk(v)
		return nil
	case policyaiimport.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case policyaiimport.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case policyaiimport.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case policyaiimport.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case policyaiimport.FieldProcessingStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStage(v)
		return nil
	case policyaiimport.FieldProcessingHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingHeartbeatAt(v)
		return nil
	case policyaiimport.FieldProcessingEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingEndedAt(v)
		return nil
	case policyaiimport.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case policyaiimport.FieldAiData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiData(v)
		return nil
	case policyaiimport.FieldAiConfidence:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiConfidence(v)
		return nil
	case policyaiimport.FieldMissingFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissingFields(v)
		return nil
	case policyaiimport.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case policyaiimport.FieldTookMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTookMs(v)
		return nil
	case policyaiimport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case policyaiimport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyAIImport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolicyAIImportMutation) AddedFields() []string {
	var fields []string
	if m.addtook_ms != nil {
		fields = append(fields, policyaiimport.FieldTookMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolicyAIImportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case policyaiimport.FieldTookMs:
		return m.AddedTookMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyAIImportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case policyaiimport.FieldTookMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTookMs(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyAIImport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolicyAIImportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(policyaiimport.FieldClientID) {
		fields = append(fields, policyaiimport.FieldClientID)
	}
	if m.FieldCleared(policyaiimport.FieldProcessingStage) {
		fields = append(fields, policyaiimport.FieldProcessingStage)
	}
	if m.FieldCleared(policyaiimport.FieldProcessingHeartbeatAt) {
		fields = append(fields, policyaiimport.FieldProcessingHeartbeatAt)
	}
	if m.FieldCleared(policyaiimport.FieldProcessingEndedAt) {
		fields = append(fields, policyaiimport.FieldProcessingEndedAt)
	}
	if m.FieldCleared(policyaiimport.FieldExtractedText) {
		fields = append(fields, policyaiimport.FieldExtractedText)
	}
	if m.FieldCleared(policyaiimport.FieldAiData) {
		fields = append(fields, policyaiimport.FieldAiData)
	}
	if m.FieldCleared(policyaiimport.FieldAiConfidence) {
		fields = append(fields, policyaiimport.FieldAiConfidence)
	}
	if m.FieldCleared(policyaiimport.FieldMissingFields) {
		fields = append(fields, policyaiimport.FieldMissingFields)
	}
	if m.FieldCleared(policyaiimport.FieldErrorMessage) {
		fields = append(fields, policyaiimport.FieldErrorMessage)
	}
	if m.FieldCleared(policyaiimport.FieldTookMs) {
		fields = append(fields, policyaiimport.FieldTookMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolicyAIImportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolicyAIImportMutation) ClearField(name string) error {
	switch name {
	case policyaiimport.FieldClientID:
		m.ClearClientID()
		return nil
	case policyaiimport.FieldProcessingStage:
		m.ClearProcessingStage()
		return nil
	case policyaiimport.FieldProcessingHeartbeatAt:
		m.ClearProcessingHeartbeatAt()
		return nil
	case policyaiimport.FieldProcessingEndedAt:
		m.ClearProcessingEndedAt()
		return nil
	case policyaiimport.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case policyaiimport.FieldAiData:
		m.ClearAiData()
		return nil
	case policyaiimport.FieldAiConfidence:
		m.ClearAiConfidence()
		return nil
	case policyaiimport.FieldMissingFields:
		m.ClearMissingFields()
		return nil
	case policyaiimport.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case policyaiimport.FieldTookMs:
		m.ClearTookMs()
		return nil
	}
	return fmt.Errorf("unknown PolicyAIImport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolicyAIImportMutation) ResetField(name string) error {
	switch name {
	case policyaiimport.FieldAgentID:
		m.ResetAgentID()
		return nil
	case policyaiimport.FieldClientID:
		m.ResetClientID()
		return nil
	case policyaiimport.FieldStorageDisk:
		m.ResetStorageDisk()
		return nil
	case policyaiimport.FieldFilePath:
		m.ResetFilePath()
		return nil
	case policyaiimport.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case policyaiimport.FieldMimeType:
		m.ResetMimeType()
		return nil
	case policyaiimport.FieldStatus:
		m.ResetStatus()
		return nil
	case policyaiimport.FieldProcessingStage:
		m.ResetProcessingStage()
		return nil
	case policyaiimport.FieldProcessingHeartbeatAt:
		m.ResetProcessingHeartbeatAt()
		return nil
	case policyaiimport.FieldProcessingEndedAt:
		m.ResetProcessingEndedAt()
		return nil
	case policyaiimport.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case policyaiimport.FieldAiData:
		m.ResetAiData()
		return nil
	case policyaiimport.FieldAiConfidence:
		m.ResetAiConfidence()
		return nil
	case policyaiimport.FieldMissingFields:
		m.ResetMissingFields()
		return nil
	case policyaiimport.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case policyaiimport.FieldTookMs:
		m.ResetTookMs()
		return nil
	case policyaiimport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case policyaiimport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PolicyAIImport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolicyAIImportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, policyaiimport.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolicyAIImportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case policyaiimport.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolicyAIImportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolicyAIImportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolicyAIImportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, policyaiimport.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolicyAIImportMutation) EdgeCleared(name string) bool {
	switch name {
	case policyaiimport.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolicyAIImportMutation) ClearEdge(name string) error {
	switch name {
	case policyaiimport.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown PolicyAIImport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolicyAIImportMutation) ResetEdge(name string) error {
	switch name {
	case policyaiimport.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown PolicyAIImport edge %s", name)
}

// PolizaMutation represents an operation that mutates the Poliza nodes in the graph.
type PolizaMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	insured_client_id    *uuid.UUID
	product_name         *string
	policy_number        *string
	valid_from           *time.Time
	valid_to             *time.Time
	currency             *string
	payment_frequency    *string
	premium_total        *string
	status               *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	agent                *uuid.UUID
	clearedagent         bool
	client               *uuid.UUID
	clearedclient        bool
	insurer              *uuid.UUID
	clearedinsurer       bool
	beneficiaries        map[uuid.UUID]struct{}
	removedbeneficiaries map[uuid.UUID]struct{}
	clearedbeneficiaries bool
	done                 bool
	oldValue             func(context.Context) (*Poliza, error)
	predicates           []predicate.Poliza
}

var _ ent.Mutation = (*PolizaMutation)(nil)

// polizaOption allows management of the mutation configuration using functional options.
type polizaOption func(*PolizaMutation)

// newPolizaMutation creates new mutation for the Poliza entity.
func newPolizaMutation(c config, op Op, opts ...polizaOption) *PolizaMutation {
	m := &PolizaMutation{
		config:        c,
		op:            op,
		typ:           TypePoliza,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolizaID sets the ID field of the mutation.
func withPolizaID(id uuid.UUID) polizaOption {
	return func(m *PolizaMutation) {
		var (
			err   error
			once  sync.Once
			value *Poliza
		)
		m.oldValue = func(ctx context.Context) (*Poliza, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Poliza.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPoliza sets the old Poliza of the mutation.
func withPoliza(node *Poliza) polizaOption {
	return func(m *PolizaMutation) {
		m.oldValue = func(context.Context) (*Poliza, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolizaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolizaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Poliza entities.
func (m *PolizaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolizaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolizaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Poliza.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *PolizaMutation) SetAgentID(u uuid.UUID) {
	m.agent = &u
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *PolizaMutation) AgentID() (r uuid.UUID, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldAgentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *PolizaMutation) ResetAgentID() {
	m.agent = nil
}

// SetClientID sets the "client_id" field.
func (m *PolizaMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *PolizaMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *PolizaMutation) ResetClientID() {
	m.client = nil
}

// SetInsuredClientID sets the "insured_client_id" field.
func (m *PolizaMutation) SetInsuredClientID(u uuid.UUID) {
	m.insured_client_id = &u
}

// InsuredClientID returns the value of the "insured_client_id" field in the mutation.
func (m *PolizaMutation) InsuredClientID() (r uuid.UUID, exists bool) {
	v := m.insured_client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuredClientID returns the old "insured_client_id" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldInsuredClientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuredClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuredClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuredClientID: %w", err)
	}
	return oldValue.InsuredClientID, nil
}

// ClearInsuredClientID clears the value of the "insured_client_id" field.
func (m *PolizaMutation) ClearInsuredClientID() {
	m.insured_client_id = nil
	m.clearedFields[poliza.FieldInsuredClientID] = struct{}{}
}

// InsuredClientIDCleared returns if the "insured_client_id" field was cleared in this mutation.
func (m *PolizaMutation) InsuredClientIDCleared() bool {
	_, ok := m.clearedFields[poliza.FieldInsuredClientID]
	return ok
}

// ResetInsuredClientID resets all changes to the "insured_client_id" field.
func (m *PolizaMutation) ResetInsuredClientID() {
	m.insured_client_id = nil
	delete(m.clearedFields, poliza.FieldInsuredClientID)
}

// SetInsurerID sets the "insurer_id" field.
func (m *PolizaMutation) SetInsurerID(u uuid.UUID) {
	m.insurer = &u
}

// InsurerID returns the value of the "insurer_id" field in the mutation.
func (m *PolizaMutation) InsurerID() (r uuid.UUID, exists bool) {
	v := m.insurer
	if v == nil {
		return
	}
	return *v, true
}

// OldInsurerID returns the old "insurer_id" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldInsurerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsurerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsurerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsurerID: %w", err)
	}
	return oldValue.InsurerID, nil
}

// ResetInsurerID resets all changes to the "insurer_id" field.
func (m *PolizaMutation) ResetInsurerID() {
	m.insurer = nil
}

// SetProductName sets the "product_name" field.
func (m *PolizaMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *PolizaMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldProductName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ClearProductName clears the value of the "product_name" field.
func (m *PolizaMutation) ClearProductName() {
	m.product_name = nil
	m.clearedFields[poliza.FieldProductName] = struct{}{}
}

// ProductNameCleared returns if the "product_name" field was cleared in this mutation.
func (m *PolizaMutation) ProductNameCleared() bool {
	_, ok := m.clearedFields[poliza.FieldProductName]
	return ok
}

// ResetProductName resets all changes to the "product_name" field.
func (m *PolizaMutation) ResetProductName() {
	m.product_name = nil
	delete(m.clearedFields, poliza.FieldProductName)
}

// SetPolicyNumber sets the "policy_number" field.
func (m *PolizaMutation) SetPolicyNumber(s string) {
	m.policy_number = &s
}

// PolicyNumber returns the value of the "policy_number" field in the mutation.
func (m *PolizaMutation) PolicyNumber() (r string, exists bool) {
	v := m.policy_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumber returns the old "policy_number" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldPolicyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumber: %w", err)
	}
	return oldValue.PolicyNumber, nil
}

// ResetPolicyNumber resets all changes to the "policy_number" field.
func (m *PolizaMutation) ResetPolicyNumber() {
	m.policy_number = nil
}

// SetValidFrom sets the "valid_from" field.
func (m *PolizaMutation) SetValidFrom(t time.Time) {
	m.valid_from = &t
}

// ValidFrom returns the value of the "valid_from" field in the mutation.
func (m *PolizaMutation) ValidFrom() (r time.Time, exists bool) {
	v := m.valid_from
	if v == nil {
		return
	}
	return *v, true
}

// OldValidFrom returns the old "valid_from" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldValidFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidFrom: %w", err)
	}
	return oldValue.ValidFrom, nil
}

// ResetValidFrom resets all changes to the "valid_from" field.
func (m *PolizaMutation) ResetValidFrom() {
	m.valid_from = nil
}

// SetValidTo sets the "valid_to" field.
func (m *PolizaMutation) SetValidTo(t time.Time) {
	m.valid_to = &t
}

// ValidTo returns the value of the "valid_to" field in the mutation.
func (m *PolizaMutation) ValidTo() (r time.Time, exists bool) {
	v := m.valid_to
	if v == nil {
		return
	}
	return *v, true
}

// OldValidTo returns the old "valid_to" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldValidTo(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidTo: %w", err)
	}
	return oldValue.ValidTo, nil
}

// ResetValidTo resets all changes to the "valid_to" field.
func (m *PolizaMutation) ResetValidTo() {
	m.valid_to = nil
}

// SetCurrency sets the "currency" field.
func (m *PolizaMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *PolizaMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *PolizaMutation) ResetCurrency() {
	m.currency = nil
}

// SetPaymentFrequency sets the "payment_frequency" field.
func (m *PolizaMutation) SetPaymentFrequency(s string) {
	m.payment_frequency = &s
}

// PaymentFrequency returns the value of the "payment_frequency" field in the mutation.
func (m *PolizaMutation) PaymentFrequency() (r string, exists bool) {
	v := m.payment_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentFrequency returns the old "payment_frequency" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldPaymentFrequency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentFrequency: %w", err)
	}
	return oldValue.PaymentFrequency, nil
}

// ClearPaymentFrequency clears the value of the "payment_frequency" field.
func (m *PolizaMutation) ClearPaymentFrequency() {
	m.payment_frequency = nil
	m.clearedFields[poliza.FieldPaymentFrequency] = struct{}{}
}

// PaymentFrequencyCleared returns if the "payment_frequency" field was cleared in this mutation.
func (m *PolizaMutation) PaymentFrequencyCleared() bool {
	_, ok := m.clearedFields[poliza.FieldPaymentFrequency]
	return ok
}

// ResetPaymentFrequency resets all changes to the "payment_frequency" field.
func (m *PolizaMutation) ResetPaymentFrequency() {
	m.payment_frequency = nil
	delete(m.clearedFields, poliza.FieldPaymentFrequency)
}

// SetPremiumTotal sets the "premium_total" field.
func (m *PolizaMutation) SetPremiumTotal(s string) {
	m.premium_total = &s
}

// PremiumTotal returns the value of the "premium_total" field in the mutation.
func (m *PolizaMutation) PremiumTotal() (r string, exists bool) {
	v := m.premium_total
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiumTotal returns the old "premium_total" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldPremiumTotal(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiumTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiumTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiumTotal: %w", err)
	}
	return oldValue.PremiumTotal, nil
}

// ClearPremiumTotal clears the value of the "premium_total" field.
func (m *PolizaMutation) ClearPremiumTotal() {
	m.premium_total = nil
	m.clearedFields[poliza.FieldPremiumTotal] = struct{}{}
}

// PremiumTotalCleared returns if the "premium_total" field was cleared in this mutation.
func (m *PolizaMutation) PremiumTotalCleared() bool {
	_, ok := m.clearedFields[poliza.FieldPremiumTotal]
	return ok
}

// ResetPremiumTotal resets all changes to the "premium_total" field.
func (m *PolizaMutation) ResetPremiumTotal() {
	m.premium_total = nil
	delete(m.clearedFields, poliza.FieldPremiumTotal)
}

// SetStatus sets the "status" field.
func (m *PolizaMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PolizaMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PolizaMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PolizaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PolizaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PolizaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PolizaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PolizaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Poliza entity.
// If the Poliza object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolizaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PolizaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *PolizaMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[poliza.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *PolizaMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *PolizaMutation) AgentIDs() (ids []uuid.UUID) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *PolizaMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearClient clears the "client" edge to the Cliente entity.
func (m *PolizaMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[poliza.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the Cliente entity was cleared.
func (m *PolizaMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *PolizaMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *PolizaMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// ClearInsurer clears the "insurer" edge to the Insurer entity.
func (m *PolizaMutation) ClearInsurer() {
	m.clearedinsurer = true
	m.clearedFields[poliza.FieldInsurerID] = struct{}{}
}

// InsurerCleared reports if the "insurer" edge to the Insurer entity was cleared.
func (m *PolizaMutation) InsurerCleared() bool {
	return m.clearedinsurer
}

// InsurerIDs returns the "insurer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InsurerID instead. It exists only for internal usage by the builders.
func (m *PolizaMutation) InsurerIDs() (ids []uuid.UUID) {
	if id := m.insurer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInsurer resets all changes to the "insurer" edge.
func (m *PolizaMutation) ResetInsurer() {
	m.insurer = nil
	m.clearedinsurer = false
}

// AddBeneficiaryIDs adds the "beneficiaries" edge to the Beneficiary entity by ids.
func (m *PolizaMutation) AddBeneficiaryIDs(ids ...uuid.UUID) {
	if m.beneficiaries == nil {
		m.beneficiaries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.beneficiaries[ids[i]] = struct{}{}
	}
}

// ClearBeneficiaries clears the "beneficiaries" edge to the Beneficiary entity.
func (m *PolizaMutation) ClearBeneficiaries() {
	m.clearedbeneficiaries = true
}

// BeneficiariesCleared reports if the "beneficiaries" edge to the Beneficiary entity was cleared.
func (m *PolizaMutation) BeneficiariesCleared() bool {
	return m.clearedbeneficiaries
}

// RemoveBeneficiaryIDs removes the "beneficiaries" edge to the Beneficiary entity by IDs.
func (m *PolizaMutation) RemoveBeneficiaryIDs(ids ...uuid.UUID) {
	if m.removedbeneficiaries == nil {
		m.removedbeneficiaries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.beneficiaries, ids[i])
		m.removedbeneficiaries[ids[i]] = struct{}{}
	}
}

// RemovedBeneficiaries returns the removed IDs of the "beneficiaries" edge to the Beneficiary entity.
func (m *PolizaMutation) RemovedBeneficiariesIDs() (ids []uuid.UUID) {
	for id := range m.removedbeneficiaries {
		ids = append(ids, id)
	}
	return
}

// BeneficiariesIDs returns the "beneficiaries" edge IDs in the mutation.
func (m *PolizaMutation) BeneficiariesIDs() (ids []uuid.UUID) {
	for id := range m.beneficiaries {
		ids = append(ids, id)
	}
	return
}

// ResetBeneficiaries resets all changes to the "beneficiaries" edge.
func (m *PolizaMutation) ResetBeneficiaries() {
	m.beneficiaries = nil
	m.clearedbeneficiaries = false
	m.removedbeneficiaries = nil
}

// Where appends a list predicates to the PolizaMutation builder.
func (m *PolizaMutation) Where(ps ...predicate.Poliza) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolizaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolizaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Poliza, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolizaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolizaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Poliza).
func (m *PolizaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolizaMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.agent != nil {
		fields = append(fields, poliza.FieldAgentID)
	}
	if m.client != nil {
		fields = append(fields, poliza.FieldClientID)
	}
	if m.insured_client_id != nil {
		fields = append(fields, poliza.FieldInsuredClientID)
	}
	if m.insurer != nil {
		fields = append(fields, poliza.FieldInsurerID)
	}
	if m.product_name != nil {
		fields = append(fields, poliza.FieldProductName)
	}
	if m.policy_number != nil {
		fields = append(fields, poliza.FieldPolicyNumber)
	}
	if m.valid_from != nil {
		fields = append(fields, poliza.FieldValidFrom)
	}
	if m.valid_to != nil {
		fields = append(fields, poliza.FieldValidTo)
	}
	if m.currency != nil {
		fields = append(fields, poliza.FieldCurrency)
	}
	if m.payment_frequency != nil {
		fields = append(fields, poliza.FieldPaymentFrequency)
	}
	if m.premium_total != nil {
		fields = append(fields, poliza.FieldPremiumTotal)
	}
	if m.status != nil {
		fields = append(fields, poliza.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, poliza.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, poliza.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolizaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case poliza.FieldAgentID:
		return m.AgentID()
	case poliza.FieldClientID:
		return m.ClientID()
	case poliza.FieldInsuredClientID:
		return m.InsuredClientID()
	case poliza.FieldInsurerID:
		return m.InsurerID()
	case poliza.FieldProductName:
		return m.ProductName()
	case poliza.FieldPolicyNumber:
		return m.PolicyNumber()
	case poliza.FieldValidFrom:
		return m.ValidFrom()
	case poliza.FieldValidTo:
		return m.ValidTo()
	case poliza.FieldCurrency:
		return m.Currency()
	case poliza.FieldPaymentFrequency:
		return m.PaymentFrequency()
	case poliza.FieldPremiumTotal:
		return m.PremiumTotal()
	case poliza.FieldStatus:
		return m.Status()
	case poliza.FieldCreatedAt:
		return m.CreatedAt()
	case poliza.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolizaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case poliza.FieldAgentID:
		return m.OldAgentID(ctx)
	case poliza.FieldClientID:
		return m.OldClientID(ctx)
	case poliza.FieldInsuredClientID:
		return m.OldInsuredClientID(ctx)
	case poliza.FieldInsurerID:
		return m.OldInsurerID(ctx)
	case poliza.FieldProductName:
		return m.OldProductName(ctx)
	case poliza.FieldPolicyNumber:
		return m.OldPolicyNumber(ctx)
	case poliza.FieldValidFrom:
		return m.OldValidFrom(ctx)
	case poliza.FieldValidTo:
		return m.OldValidTo(ctx)
	case poliza.FieldCurrency:
		return m.OldCurrency(ctx)
	case poliza.FieldPaymentFrequency:
		return m.OldPaymentFrequency(ctx)
	case poliza.FieldPremiumTotal:
		return m.OldPremiumTotal(ctx)
	case poliza.FieldStatus:
		return m.OldStatus(ctx)
	case poliza.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case poliza.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Poliza field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolizaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case poliza.FieldAgentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case poliza.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case poliza.FieldInsuredClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuredClientID(v)
		return nil
	case poliza.FieldInsurerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsurerID(v)
		return nil
	case poliza.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case poliza.FieldPolicyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumber(v)
		return nil
	case poliza.FieldValidFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidFrom(v)
		return nil
	case poliza.FieldValidTo:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidTo(v)
		return nil
	case poliza.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case poliza.FieldPaymentFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentFrequency(v)
		return nil
	case poliza.FieldPremiumTotal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiumTotal(v)
		return nil
	case poliza.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case poliza.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case poliza.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Poliza field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolizaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolizaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolizaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Poliza numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolizaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(poliza.FieldInsuredClientID) {
		fields = append(fields, poliza.FieldInsuredClientID)
	}
	if m.FieldCleared(poliza.FieldProductName) {
		fields = append(fields, poliza.FieldProductName)
	}
	if m.FieldCleared(poliza.FieldPaymentFrequency) {
		fields = append(fields, poliza.FieldPaymentFrequency)
	}
	if m.FieldCleared(poliza.FieldPremiumTotal) {
		fields = append(fields, poliza.FieldPremiumTotal)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolizaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolizaMutation) ClearField(name string) error {
	switch name {
	case poliza.FieldInsuredClientID:
		m.ClearInsuredClientID()
		return nil
	case poliza.FieldProductName:
		m.ClearProductName()
		return nil
	case poliza.FieldPaymentFrequency:
		m.ClearPaymentFrequency()
		return nil
	case poliza.FieldPremiumTotal:
		m.ClearPremiumTotal()
		return nil
	}
	return fmt.Errorf("unknown Poliza nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolizaMutation) ResetField(name string) error {
	switch name {
	case poliza.FieldAgentID:
		m.ResetAgentID()
		return nil
	case poliza.FieldClientID:
		m.ResetClientID()
		return nil
	case poliza.FieldInsuredClientID:
		m.ResetInsuredClientID()
		return nil
	case poliza.FieldInsurerID:
		m.ResetInsurerID()
		return nil
	case poliza.FieldProductName:
		m.ResetProductName()
		return nil
	case poliza.FieldPolicyNumber:
		m.ResetPolicyNumber()
		return nil
	case poliza.FieldValidFrom:
		m.ResetValidFrom()
		return nil
	case poliza.FieldValidTo:
		m.ResetValidTo()
		return nil
	case poliza.FieldCurrency:
		m.ResetCurrency()
		return nil
	case poliza.FieldPaymentFrequency:
		m.ResetPaymentFrequency()
		return nil
	case poliza.FieldPremiumTotal:
		m.ResetPremiumTotal()
		return nil
	case poliza.FieldStatus:
		m.ResetStatus()
		return nil
	case poliza.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case poliza.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Poliza field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolizaMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.agent != nil {
		edges = append(edges, poliza.EdgeAgent)
	}
	if m.client != nil {
		edges = append(edges, poliza.EdgeClient)
	}
	if m.insurer != nil {
		edges = append(edges, poliza.EdgeInsurer)
	}
	if m.beneficiaries != nil {
		edges = append(edges, poliza.EdgeBeneficiaries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolizaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case poliza.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case poliza.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case poliza.EdgeInsurer:
		if id := m.insurer; id != nil {
			return []ent.Value{*id}
		}
	case poliza.EdgeBeneficiaries:
		ids := make([]ent.Value, 0, len(m.beneficiaries))
		for id := range m.beneficiaries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolizaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedbeneficiaries != nil {
		edges = append(edges, poliza.EdgeBeneficiaries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolizaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case poliza.EdgeBeneficiaries:
		ids := make([]ent.Value, 0, len(m.removedbeneficiaries))
		for id := range m.removedbeneficiaries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolizaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedagent {
		edges = append(edges, poliza.EdgeAgent)
	}
	if m.clearedclient {
		edges = append(edges, poliza.EdgeClient)
	}
	if m.clearedinsurer {
		edges = append(edges, poliza.EdgeInsurer)
	}
	if m.clearedbeneficiaries {
		edges = append(edges, poliza.EdgeBeneficiaries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolizaMutation) EdgeCleared(name string) bool {
	switch name {
	case poliza.EdgeAgent:
		return m.clearedagent
	case poliza.EdgeClient:
		return m.clearedclient
	case poliza.EdgeInsurer:
		return m.clearedinsurer
	case poliza.EdgeBeneficiaries:
		return m.clearedbeneficiaries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolizaMutation) ClearEdge(name string) error {
	switch name {
	case poliza.EdgeAgent:
		m.ClearAgent()
		return nil
	case poliza.EdgeClient:
		m.ClearClient()
		return nil
	case poliza.EdgeInsurer:
		m.ClearInsurer()
		return nil
	}
	return fmt.Errorf("unknown Poliza unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolizaMutation) ResetEdge(name string) error {
	switch name {
	case poliza.EdgeAgent:
		m.ResetAgent()
		return nil
	case poliza.EdgeClient:
		m.ResetClient()
		return nil
	case poliza.EdgeInsurer:
		m.ResetInsurer()
		return nil
	case poliza.EdgeBeneficiaries:
		m.ResetBeneficiaries()
		return nil
	}
	return fmt.Errorf("unknown Poliza edge %s", name)
}

// TrackingEntryMutation represents an operation that mutates the TrackingEntry nodes in the graph.
type TrackingEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	owner_kind    *string
	owner_id      *uuid.UUID
	kind          *string
	body          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	agent         *uuid.UUID
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*TrackingEntry, error)
	predicates    []predicate.TrackingEntry
}

var _ ent.Mutation = (*TrackingEntryMutation)(nil)

// trackingentryOption allows management of the mutation configuration using functional options.
type trackingentryOption func(*TrackingEntryMutation)

// newTrackingEntryMutation creates new mutation for the TrackingEntry entity.
func newTrackingEntryMutation(c config, op Op, opts ...trackingentryOption) *TrackingEntryMutation {
	m := &TrackingEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeTrackingEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrackingEntryID sets the ID field of the mutation.
func withTrackingEntryID(id uuid.UUID) trackingentryOption {
	return func(m *TrackingEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *TrackingEntry
		)
		m.oldValue = func(ctx context.Context) (*TrackingEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrackingEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrackingEntry sets the old TrackingEntry of the mutation.
func withTrackingEntry(node *TrackingEntry) trackingentryOption {
	return func(m *TrackingEntryMutation) {
		m.oldValue = func(context.Context) (*TrackingEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrackingEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrackingEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrackingEntry entities.
func (m *TrackingEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrackingEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrackingEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrackingEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *TrackingEntryMutation) SetAgentID(u uuid.UUID) {
	m.agent = &u
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TrackingEntryMutation) AgentID() (r uuid.UUID, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldAgentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TrackingEntryMutation) ResetAgentID() {
	m.agent = nil
}

// SetOwnerKind sets the "owner_kind" field.
func (m *TrackingEntryMutation) SetOwnerKind(s string) {
	m.owner_kind = &s
}

// OwnerKind returns the value of the "owner_kind" field in the mutation.
func (m *TrackingEntryMutation) OwnerKind() (r string, exists bool) {
	v := m.owner_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerKind returns the old "owner_kind" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldOwnerKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerKind: %w", err)
	}
	return oldValue.OwnerKind, nil
}

// ResetOwnerKind resets all changes to the "owner_kind" field.
func (m *TrackingEntryMutation) ResetOwnerKind() {
	m.owner_kind = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *TrackingEntryMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TrackingEntryMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TrackingEntryMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetKind sets the "kind" field.
func (m *TrackingEntryMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TrackingEntryMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TrackingEntryMutation) ResetKind() {
	m.kind = nil
}

// SetBody sets the "body" field.
func (m *TrackingEntryMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *TrackingEntryMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *TrackingEntryMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrackingEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrackingEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrackingEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *TrackingEntryMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[trackingentry.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *TrackingEntryMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *TrackingEntryMutation) AgentIDs() (ids []uuid.UUID) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *TrackingEntryMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the TrackingEntryMutation builder.
func (m *TrackingEntryMutation) Where(ps ...predicate.TrackingEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrackingEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrackingEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrackingEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrackingEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrackingEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrackingEntry).
func (m *TrackingEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrackingEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent != nil {
		fields = append(fields, trackingentry.FieldAgentID)
	}
	if m.owner_kind != nil {
		fields = append(fields, trackingentry.FieldOwnerKind)
	}
	if m.owner_id != nil {
		fields = append(fields, trackingentry.FieldOwnerID)
	}
	if m.kind != nil {
		fields = append(fields, trackingentry.FieldKind)
	}
	if m.body != nil {
		fields = append(fields, trackingentry.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, trackingentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrackingEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trackingentry.FieldAgentID:
		return m.AgentID()
	case trackingentry.FieldOwnerKind:
		return m.OwnerKind()
	case trackingentry.FieldOwnerID:
		return m.OwnerID()
	case trackingentry.FieldKind:
		return m.Kind()
	case trackingentry.FieldBody:
		return m.Body()
	case trackingentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrackingEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trackingentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case trackingentry.FieldOwnerKind:
		return m.OldOwnerKind(ctx)
	case trackingentry.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case trackingentry.FieldKind:
		return m.OldKind(ctx)
	case trackingentry.FieldBody:
		return m.OldBody(ctx)
	case trackingentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrackingEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackingEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trackingentry.FieldAgentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case trackingentry.FieldOwnerKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerKind(v)
		return nil
	case trackingentry.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case trackingentry.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case trackingentry.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case trackingentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrackingEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrackingEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackingEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrackingEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrackingEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrackingEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrackingEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrackingEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrackingEntryMutation) ResetField(name string) error {
	switch name {
	case trackingentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case trackingentry.FieldOwnerKind:
		m.ResetOwnerKind()
		return nil
	case trackingentry.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case trackingentry.FieldKind:
		m.ResetKind()
		return nil
	case trackingentry.FieldBody:
		m.ResetBody()
		return nil
	case trackingentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrackingEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, trackingentry.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrackingEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trackingentry.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrackingEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrackingEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrackingEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, trackingentry.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrackingEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case trackingentry.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrackingEntryMutation) ClearEdge(name string) error {
	switch name {
	case trackingentry.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrackingEntryMutation) ResetEdge(name string) error {
	switch name {
	case trackingentry.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry edge %s", name)
}
