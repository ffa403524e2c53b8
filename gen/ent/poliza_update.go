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
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// PolizaUpdate is the builder for updating Poliza entities.
type PolizaUpdate struct {
	config
	hooks    []Hook
	mutation *PolizaMutation
}

// Where appends a list predicates to the PolizaUpdate builder.
func (_u *PolizaUpdate) Where(ps ...predicate.Poliza) *PolizaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *PolizaUpdate) SetAgentID(v uuid.UUID) *PolizaUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableAgentID(v *uuid.UUID) *PolizaUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *PolizaUpdate) SetClientID(v uuid.UUID) *PolizaUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableClientID(v *uuid.UUID) *PolizaUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetInsuredClientID sets the "insured_client_id" field.
func (_u *PolizaUpdate) SetInsuredClientID(v uuid.UUID) *PolizaUpdate {
	_u.mutation.SetInsuredClientID(v)
	return _u
}

// SetNillableInsuredClientID sets the "insured_client_id" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableInsuredClientID(v *uuid.UUID) *PolizaUpdate {
	if v != nil {
		_u.SetInsuredClientID(*v)
	}
	return _u
}

// ClearInsuredClientID clears the value of the "insured_client_id" field.
func (_u *PolizaUpdate) ClearInsuredClientID() *PolizaUpdate {
	_u.mutation.ClearInsuredClientID()
	return _u
}

// SetInsurerID sets the "insurer_id" field.
func (_u *PolizaUpdate) SetInsurerID(v uuid.UUID) *PolizaUpdate {
	_u.mutation.SetInsurerID(v)
	return _u
}

// SetNillableInsurerID sets the "insurer_id" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableInsurerID(v *uuid.UUID) *PolizaUpdate {
	if v != nil {
		_u.SetInsurerID(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *PolizaUpdate) SetProductName(v string) *PolizaUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableProductName(v *string) *PolizaUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *PolizaUpdate) ClearProductName() *PolizaUpdate {
	_u.mutation.ClearProductName()
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *PolizaUpdate) SetPolicyNumber(v string) *PolizaUpdate {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillablePolicyNumber(v *string) *PolizaUpdate {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *PolizaUpdate) SetValidFrom(v time.Time) *PolizaUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableValidFrom(v *time.Time) *PolizaUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// SetValidTo sets the "valid_to" field.
func (_u *PolizaUpdate) SetValidTo(v time.Time) *PolizaUpdate {
	_u.mutation.SetValidTo(v)
	return _u
}

// SetNillableValidTo sets the "valid_to" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableValidTo(v *time.Time) *PolizaUpdate {
	if v != nil {
		_u.SetValidTo(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PolizaUpdate) SetCurrency(v string) *PolizaUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableCurrency(v *string) *PolizaUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPaymentFrequency sets the "payment_frequency" field.
func (_u *PolizaUpdate) SetPaymentFrequency(v string) *PolizaUpdate {
	_u.mutation.SetPaymentFrequency(v)
	return _u
}

// SetNillablePaymentFrequency sets the "payment_frequency" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillablePaymentFrequency(v *string) *PolizaUpdate {
	if v != nil {
		_u.SetPaymentFrequency(*v)
	}
	return _u
}

// ClearPaymentFrequency clears the value of the "payment_frequency" field.
func (_u *PolizaUpdate) ClearPaymentFrequency() *PolizaUpdate {
	_u.mutation.ClearPaymentFrequency()
	return _u
}

// SetPremiumTotal sets the "premium_total" field.
func (_u *PolizaUpdate) SetPremiumTotal(v string) *PolizaUpdate {
	_u.mutation.SetPremiumTotal(v)
	return _u
}

// SetNillablePremiumTotal sets the "premium_total" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillablePremiumTotal(v *string) *PolizaUpdate {
	if v != nil {
		_u.SetPremiumTotal(*v)
	}
	return _u
}

// ClearPremiumTotal clears the value of the "premium_total" field.
func (_u *PolizaUpdate) ClearPremiumTotal() *PolizaUpdate {
	_u.mutation.ClearPremiumTotal()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PolizaUpdate) SetStatus(v string) *PolizaUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableStatus(v *string) *PolizaUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PolizaUpdate) SetCreatedAt(v time.Time) *PolizaUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PolizaUpdate) SetNillableCreatedAt(v *time.Time) *PolizaUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolizaUpdate) SetUpdatedAt(v time.Time) *PolizaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *PolizaUpdate) SetAgent(v *Agent) *PolizaUpdate {
	return _u.SetAgentID(v.ID)
}

// SetClient sets the "client" edge to the Cliente entity.
func (_u *PolizaUpdate) SetClient(v *Cliente) *PolizaUpdate {
	return _u.SetClientID(v.ID)
}

// SetInsurer sets the "insurer" edge to the Insurer entity.
func (_u *PolizaUpdate) SetInsurer(v *Insurer) *PolizaUpdate {
	return _u.SetInsurerID(v.ID)
}

// AddBeneficiaryIDs adds the "beneficiaries" edge to the Beneficiary entity by IDs.
func (_u *PolizaUpdate) AddBeneficiaryIDs(ids ...uuid.UUID) *PolizaUpdate {
	_u.mutation.AddBeneficiaryIDs(ids...)
	return _u
}

// AddBeneficiaries adds the "beneficiaries" edges to the Beneficiary entity.
func (_u *PolizaUpdate) AddBeneficiaries(v ...*Beneficiary) *PolizaUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBeneficiaryIDs(ids...)
}

// Mutation returns the PolizaMutation object of the builder.
func (_u *PolizaUpdate) Mutation() *PolizaMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *PolizaUpdate) ClearAgent() *PolizaUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearClient clears the "client" edge to the Cliente entity.
func (_u *PolizaUpdate) ClearClient() *PolizaUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearInsurer clears the "insurer" edge to the Insurer entity.
func (_u *PolizaUpdate) ClearInsurer() *PolizaUpdate {
	_u.mutation.ClearInsurer()
	return _u
}

// ClearBeneficiaries clears all "beneficiaries" edges to the Beneficiary entity.
func (_u *PolizaUpdate) ClearBeneficiaries() *PolizaUpdate {
	_u.mutation.ClearBeneficiaries()
	return _u
}

// RemoveBeneficiaryIDs removes the "beneficiaries" edge to Beneficiary entities by IDs.
func (_u *PolizaUpdate) RemoveBeneficiaryIDs(ids ...uuid.UUID) *PolizaUpdate {
	_u.mutation.RemoveBeneficiaryIDs(ids...)
	return _u
}

// RemoveBeneficiaries removes "beneficiaries" edges to Beneficiary entities.
func (_u *PolizaUpdate) RemoveBeneficiaries(v ...*Beneficiary) *PolizaUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBeneficiaryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolizaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolizaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolizaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolizaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolizaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := poliza.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolizaUpdate) check() error {
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := poliza.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Poliza.policy_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := poliza.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Poliza.currency": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poliza.agent"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poliza.client"`)
	}
	if _u.mutation.InsurerCleared() && len(_u.mutation.InsurerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poliza.insurer"`)
	}
	return nil
}

func (_u *PolizaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poliza.Table, poliza.Columns, sqlgraph.NewFieldSpec(poliza.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InsuredClientID(); ok {
		_spec.SetField(poliza.FieldInsuredClientID, field.TypeUUID, value)
	}
	if _u.mutation.InsuredClientIDCleared() {
		_spec.ClearField(poliza.FieldInsuredClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(poliza.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(poliza.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(poliza.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(poliza.FieldValidFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidTo(); ok {
		_spec.SetField(poliza.FieldValidTo, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(poliza.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentFrequency(); ok {
		_spec.SetField(poliza.FieldPaymentFrequency, field.TypeString, value)
	}
	if _u.mutation.PaymentFrequencyCleared() {
		_spec.ClearField(poliza.FieldPaymentFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.PremiumTotal(); ok {
		_spec.SetField(poliza.FieldPremiumTotal, field.TypeString, value)
	}
	if _u.mutation.PremiumTotalCleared() {
		_spec.ClearField(poliza.FieldPremiumTotal, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(poliza.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(poliza.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(poliza.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.AgentTable,
			Columns: []string{poliza.AgentColumn},
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
			Table:   poliza.AgentTable,
			Columns: []string{poliza.AgentColumn},
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
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.ClientTable,
			Columns: []string{poliza.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.ClientTable,
			Columns: []string{poliza.ClientColumn},
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
	if _u.mutation.InsurerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.InsurerTable,
			Columns: []string{poliza.InsurerColumn},
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
			Table:   poliza.InsurerTable,
			Columns: []string{poliza.InsurerColumn},
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
	if _u.mutation.BeneficiariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poliza.BeneficiariesTable,
			Columns: []string{poliza.BeneficiariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBeneficiariesIDs(); len(nodes) > 0 && !_u.mutation.BeneficiariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poliza.BeneficiariesTable,
			Columns: []string{poliza.BeneficiariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BeneficiariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poliza.BeneficiariesTable,
			Columns: []string{poliza.BeneficiariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poliza.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolizaUpdateOne is the builder for updating a single Poliza entity.
type PolizaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolizaMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *PolizaUpdateOne) SetAgentID(v uuid.UUID) *PolizaUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableAgentID(v *uuid.UUID) *PolizaUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *PolizaUpdateOne) SetClientID(v uuid.UUID) *PolizaUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableClientID(v *uuid.UUID) *PolizaUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetInsuredClientID sets the "insured_client_id" field.
func (_u *PolizaUpdateOne) SetInsuredClientID(v uuid.UUID) *PolizaUpdateOne {
	_u.mutation.SetInsuredClientID(v)
	return _u
}

// SetNillableInsuredClientID sets the "insured_client_id" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableInsuredClientID(v *uuid.UUID) *PolizaUpdateOne {
	if v != nil {
		_u.SetInsuredClientID(*v)
	}
	return _u
}

// ClearInsuredClientID clears the value of the "insured_client_id" field.
func (_u *PolizaUpdateOne) ClearInsuredClientID() *PolizaUpdateOne {
	_u.mutation.ClearInsuredClientID()
	return _u
}

// SetInsurerID sets the "insurer_id" field.
func (_u *PolizaUpdateOne) SetInsurerID(v uuid.UUID) *PolizaUpdateOne {
	_u.mutation.SetInsurerID(v)
	return _u
}

// SetNillableInsurerID sets the "insurer_id" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableInsurerID(v *uuid.UUID) *PolizaUpdateOne {
	if v != nil {
		_u.SetInsurerID(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *PolizaUpdateOne) SetProductName(v string) *PolizaUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableProductName(v *string) *PolizaUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *PolizaUpdateOne) ClearProductName() *PolizaUpdateOne {
	_u.mutation.ClearProductName()
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *PolizaUpdateOne) SetPolicyNumber(v string) *PolizaUpdateOne {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillablePolicyNumber(v *string) *PolizaUpdateOne {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *PolizaUpdateOne) SetValidFrom(v time.Time) *PolizaUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableValidFrom(v *time.Time) *PolizaUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// SetValidTo sets the "valid_to" field.
func (_u *PolizaUpdateOne) SetValidTo(v time.Time) *PolizaUpdateOne {
	_u.mutation.SetValidTo(v)
	return _u
}

// SetNillableValidTo sets the "valid_to" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableValidTo(v *time.Time) *PolizaUpdateOne {
	if v != nil {
		_u.SetValidTo(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PolizaUpdateOne) SetCurrency(v string) *PolizaUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableCurrency(v *string) *PolizaUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPaymentFrequency sets the "payment_frequency" field.
func (_u *PolizaUpdateOne) SetPaymentFrequency(v string) *PolizaUpdateOne {
	_u.mutation.SetPaymentFrequency(v)
	return _u
}

// SetNillablePaymentFrequency sets the "payment_frequency" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillablePaymentFrequency(v *string) *PolizaUpdateOne {
	if v != nil {
		_u.SetPaymentFrequency(*v)
	}
	return _u
}

// ClearPaymentFrequency clears the value of the "payment_frequency" field.
func (_u *PolizaUpdateOne) ClearPaymentFrequency() *PolizaUpdateOne {
	_u.mutation.ClearPaymentFrequency()
	return _u
}

// SetPremiumTotal sets the "premium_total" field.
func (_u *PolizaUpdateOne) SetPremiumTotal(v string) *PolizaUpdateOne {
	_u.mutation.SetPremiumTotal(v)
	return _u
}

// SetNillablePremiumTotal sets the "premium_total" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillablePremiumTotal(v *string) *PolizaUpdateOne {
	if v != nil {
		_u.SetPremiumTotal(*v)
	}
	return _u
}

// ClearPremiumTotal clears the value of the "premium_total" field.
func (_u *PolizaUpdateOne) ClearPremiumTotal() *PolizaUpdateOne {
	_u.mutation.ClearPremiumTotal()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PolizaUpdateOne) SetStatus(v string) *PolizaUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableStatus(v *string) *PolizaUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PolizaUpdateOne) SetCreatedAt(v time.Time) *PolizaUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PolizaUpdateOne) SetNillableCreatedAt(v *time.Time) *PolizaUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolizaUpdateOne) SetUpdatedAt(v time.Time) *PolizaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *PolizaUpdateOne) SetAgent(v *Agent) *PolizaUpdateOne {
	return _u.SetAgentID(v.ID)
}

// SetClient sets the "client" edge to the Cliente entity.
func (_u *PolizaUpdateOne) SetClient(v *Cliente) *PolizaUpdateOne {
	return _u.SetClientID(v.ID)
}

// SetInsurer sets the "insurer" edge to the Insurer entity.
func (_u *PolizaUpdateOne) SetInsurer(v *Insurer) *PolizaUpdateOne {
	return _u.SetInsurerID(v.ID)
}

// AddBeneficiaryIDs adds the "beneficiaries" edge to the Beneficiary entity by IDs.
func (_u *PolizaUpdateOne) AddBeneficiaryIDs(ids ...uuid.UUID) *PolizaUpdateOne {
	_u.mutation.AddBeneficiaryIDs(ids...)
	return _u
}

// AddBeneficiaries adds the "beneficiaries" edges to the Beneficiary entity.
func (_u *PolizaUpdateOne) AddBeneficiaries(v ...*Beneficiary) *PolizaUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBeneficiaryIDs(ids...)
}

// Mutation returns the PolizaMutation object of the builder.
func (_u *PolizaUpdateOne) Mutation() *PolizaMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *PolizaUpdateOne) ClearAgent() *PolizaUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearClient clears the "client" edge to the Cliente entity.
func (_u *PolizaUpdateOne) ClearClient() *PolizaUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearInsurer clears the "insurer" edge to the Insurer entity.
func (_u *PolizaUpdateOne) ClearInsurer() *PolizaUpdateOne {
	_u.mutation.ClearInsurer()
	return _u
}

// ClearBeneficiaries clears all "beneficiaries" edges to the Beneficiary entity.
func (_u *PolizaUpdateOne) ClearBeneficiaries() *PolizaUpdateOne {
	_u.mutation.ClearBeneficiaries()
	return _u
}

// RemoveBeneficiaryIDs removes the "beneficiaries" edge to Beneficiary entities by IDs.
func (_u *PolizaUpdateOne) RemoveBeneficiaryIDs(ids ...uuid.UUID) *PolizaUpdateOne {
	_u.mutation.RemoveBeneficiaryIDs(ids...)
	return _u
}

// RemoveBeneficiaries removes "beneficiaries" edges to Beneficiary entities.
func (_u *PolizaUpdateOne) RemoveBeneficiaries(v ...*Beneficiary) *PolizaUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBeneficiaryIDs(ids...)
}

// Where appends a list predicates to the PolizaUpdate builder.
func (_u *PolizaUpdateOne) Where(ps ...predicate.Poliza) *PolizaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolizaUpdateOne) Select(field string, fields ...string) *PolizaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Poliza entity.
func (_u *PolizaUpdateOne) Save(ctx context.Context) (*Poliza, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolizaUpdateOne) SaveX(ctx context.Context) *Poliza {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolizaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolizaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolizaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := poliza.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolizaUpdateOne) check() error {
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := poliza.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Poliza.policy_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := poliza.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Poliza.currency": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poliza.agent"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poliza.client"`)
	}
	if _u.mutation.InsurerCleared() && len(_u.mutation.InsurerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poliza.insurer"`)
	}
	return nil
}

func (_u *PolizaUpdateOne) sqlSave(ctx context.Context) (_node *Poliza, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poliza.Table, poliza.Columns, sqlgraph.NewFieldSpec(poliza.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Poliza.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poliza.FieldID)
		for _, f := range fields {
			if !poliza.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != poliza.FieldID {
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
	if value, ok := _u.mutation.InsuredClientID(); ok {
		_spec.SetField(poliza.FieldInsuredClientID, field.TypeUUID, value)
	}
	if _u.mutation.InsuredClientIDCleared() {
		_spec.ClearField(poliza.FieldInsuredClientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(poliza.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(poliza.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(poliza.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(poliza.FieldValidFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidTo(); ok {
		_spec.SetField(poliza.FieldValidTo, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(poliza.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentFrequency(); ok {
		_spec.SetField(poliza.FieldPaymentFrequency, field.TypeString, value)
	}
	if _u.mutation.PaymentFrequencyCleared() {
		_spec.ClearField(poliza.FieldPaymentFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.PremiumTotal(); ok {
		_spec.SetField(poliza.FieldPremiumTotal, field.TypeString, value)
	}
	if _u.mutation.PremiumTotalCleared() {
		_spec.ClearField(poliza.FieldPremiumTotal, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(poliza.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(poliza.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(poliza.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.AgentTable,
			Columns: []string{poliza.AgentColumn},
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
			Table:   poliza.AgentTable,
			Columns: []string{poliza.AgentColumn},
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
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.ClientTable,
			Columns: []string{poliza.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliente.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.ClientTable,
			Columns: []string{poliza.ClientColumn},
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
	if _u.mutation.InsurerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poliza.InsurerTable,
			Columns: []string{poliza.InsurerColumn},
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
			Table:   poliza.InsurerTable,
			Columns: []string{poliza.InsurerColumn},
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
	if _u.mutation.BeneficiariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poliza.BeneficiariesTable,
			Columns: []string{poliza.BeneficiariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBeneficiariesIDs(); len(nodes) > 0 && !_u.mutation.BeneficiariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poliza.BeneficiariesTable,
			Columns: []string{poliza.BeneficiariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BeneficiariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poliza.BeneficiariesTable,
			Columns: []string{poliza.BeneficiariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(beneficiary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Poliza{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poliza.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
