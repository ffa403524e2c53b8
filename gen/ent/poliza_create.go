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
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
)

// PolizaCreate is the builder for creating a Poliza entity.
type PolizaCreate struct {
	config
	mutation *PolizaMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *PolizaCreate) SetAgentID(v uuid.UUID) *PolizaCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *PolizaCreate) SetClientID(v uuid.UUID) *PolizaCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetInsuredClientID sets the "insured_client_id" field.
func (_c *PolizaCreate) SetInsuredClientID(v uuid.UUID) *PolizaCreate {
	_c.mutation.SetInsuredClientID(v)
	return _c
}

// SetNillableInsuredClientID sets the "insured_client_id" field if the given value is not nil.
func (_c *PolizaCreate) SetNillableInsuredClientID(v *uuid.UUID) *PolizaCreate {
	if v != nil {
		_c.SetInsuredClientID(*v)
	}
	return _c
}

// SetInsurerID sets the "insurer_id" field.
func (_c *PolizaCreate) SetInsurerID(v uuid.UUID) *PolizaCreate {
	_c.mutation.SetInsurerID(v)
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *PolizaCreate) SetProductName(v string) *PolizaCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_c *PolizaCreate) SetNillableProductName(v *string) *PolizaCreate {
	if v != nil {
		_c.SetProductName(*v)
	}
	return _c
}

// SetPolicyNumber sets the "policy_number" field.
func (_c *PolizaCreate) SetPolicyNumber(v string) *PolizaCreate {
	_c.mutation.SetPolicyNumber(v)
	return _c
}

// SetValidFrom sets the "valid_from" field.
func (_c *PolizaCreate) SetValidFrom(v time.Time) *PolizaCreate {
	_c.mutation.SetValidFrom(v)
	return _c
}

// SetValidTo sets the "valid_to" field.
func (_c *PolizaCreate) SetValidTo(v time.Time) *PolizaCreate {
	_c.mutation.SetValidTo(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *PolizaCreate) SetCurrency(v string) *PolizaCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *PolizaCreate) SetNillableCurrency(v *string) *PolizaCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetPaymentFrequency sets the "payment_frequency" field.
func (_c *PolizaCreate) SetPaymentFrequency(v string) *PolizaCreate {
	_c.mutation.SetPaymentFrequency(v)
	return _c
}

// SetNillablePaymentFrequency sets the "payment_frequency" field if the given value is not nil.
func (_c *PolizaCreate) SetNillablePaymentFrequency(v *string) *PolizaCreate {
	if v != nil {
		_c.SetPaymentFrequency(*v)
	}
	return _c
}

// SetPremiumTotal sets the "premium_total" field.
func (_c *PolizaCreate) SetPremiumTotal(v string) *PolizaCreate {
	_c.mutation.SetPremiumTotal(v)
	return _c
}

// SetNillablePremiumTotal sets the "premium_total" field if the given value is not nil.
func (_c *PolizaCreate) SetNillablePremiumTotal(v *string) *PolizaCreate {
	if v != nil {
		_c.SetPremiumTotal(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PolizaCreate) SetStatus(v string) *PolizaCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PolizaCreate) SetNillableStatus(v *string) *PolizaCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolizaCreate) SetCreatedAt(v time.Time) *PolizaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolizaCreate) SetNillableCreatedAt(v *time.Time) *PolizaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PolizaCreate) SetUpdatedAt(v time.Time) *PolizaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PolizaCreate) SetNillableUpdatedAt(v *time.Time) *PolizaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolizaCreate) SetID(v uuid.UUID) *PolizaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PolizaCreate) SetNillableID(v *uuid.UUID) *PolizaCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *PolizaCreate) SetAgent(v *Agent) *PolizaCreate {
	return _c.SetAgentID(v.ID)
}

// SetClient sets the "client" edge to the Cliente entity.
func (_c *PolizaCreate) SetClient(v *Cliente) *PolizaCreate {
	return _c.SetClientID(v.ID)
}

// SetInsurer sets the "insurer" edge to the Insurer entity.
func (_c *PolizaCreate) SetInsurer(v *Insurer) *PolizaCreate {
	return _c.SetInsurerID(v.ID)
}

// AddBeneficiaryIDs adds the "beneficiaries" edge to the Beneficiary entity by IDs.
func (_c *PolizaCreate) AddBeneficiaryIDs(ids ...uuid.UUID) *PolizaCreate {
	_c.mutation.AddBeneficiaryIDs(ids...)
	return _c
}

// AddBeneficiaries adds the "beneficiaries" edges to the Beneficiary entity.
func (_c *PolizaCreate) AddBeneficiaries(v ...*Beneficiary) *PolizaCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBeneficiaryIDs(ids...)
}

// Mutation returns the PolizaMutation object of the builder.
func (_c *PolizaCreate) Mutation() *PolizaMutation {
	return _c.mutation
}

// Save creates the Poliza in the database.
func (_c *PolizaCreate) Save(ctx context.Context) (*Poliza, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolizaCreate) SaveX(ctx context.Context) *Poliza {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolizaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolizaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolizaCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := poliza.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := poliza.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := poliza.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := poliza.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := poliza.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolizaCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Poliza.agent_id"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Poliza.client_id"`)}
	}
	if _, ok := _c.mutation.InsurerID(); !ok {
		return &ValidationError{Name: "insurer_id", err: errors.New(`ent: missing required field "Poliza.insurer_id"`)}
	}
	if _, ok := _c.mutation.PolicyNumber(); !ok {
		return &ValidationError{Name: "policy_number", err: errors.New(`ent: missing required field "Poliza.policy_number"`)}
	}
	if v, ok := _c.mutation.PolicyNumber(); ok {
		if err := poliza.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Poliza.policy_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidFrom(); !ok {
		return &ValidationError{Name: "valid_from", err: errors.New(`ent: missing required field "Poliza.valid_from"`)}
	}
	if _, ok := _c.mutation.ValidTo(); !ok {
		return &ValidationError{Name: "valid_to", err: errors.New(`ent: missing required field "Poliza.valid_to"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Poliza.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := poliza.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Poliza.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Poliza.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Poliza.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Poliza.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Poliza.agent"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "Poliza.client"`)}
	}
	if len(_c.mutation.InsurerIDs()) == 0 {
		return &ValidationError{Name: "insurer", err: errors.New(`ent: missing required edge "Poliza.insurer"`)}
	}
	return nil
}

func (_c *PolizaCreate) sqlSave(ctx context.Context) (*Poliza, error) {
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

func (_c *PolizaCreate) createSpec() (*Poliza, *sqlgraph.CreateSpec) {
	var (
		_node = &Poliza{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(poliza.Table, sqlgraph.NewFieldSpec(poliza.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InsuredClientID(); ok {
		_spec.SetField(poliza.FieldInsuredClientID, field.TypeUUID, value)
		_node.InsuredClientID = &value
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(poliza.FieldProductName, field.TypeString, value)
		_node.ProductName = &value
	}
	if value, ok := _c.mutation.PolicyNumber(); ok {
		_spec.SetField(poliza.FieldPolicyNumber, field.TypeString, value)
		_node.PolicyNumber = value
	}
	if value, ok := _c.mutation.ValidFrom(); ok {
		_spec.SetField(poliza.FieldValidFrom, field.TypeTime, value)
		_node.ValidFrom = value
	}
	if value, ok := _c.mutation.ValidTo(); ok {
		_spec.SetField(poliza.FieldValidTo, field.TypeTime, value)
		_node.ValidTo = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(poliza.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.PaymentFrequency(); ok {
		_spec.SetField(poliza.FieldPaymentFrequency, field.TypeString, value)
		_node.PaymentFrequency = &value
	}
	if value, ok := _c.mutation.PremiumTotal(); ok {
		_spec.SetField(poliza.FieldPremiumTotal, field.TypeString, value)
		_node.PremiumTotal = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(poliza.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(poliza.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(poliza.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InsurerIDs(); len(nodes) > 0 {
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
		_node.InsurerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BeneficiariesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PolizaCreateBulk is the builder for creating many Poliza entities in bulk.
type PolizaCreateBulk struct {
	config
	err      error
	builders []*PolizaCreate
}

// Save creates the Poliza entities in the database.
func (_c *PolizaCreateBulk) Save(ctx context.Context) ([]*Poliza, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Poliza, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolizaMutation)
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
func (_c *PolizaCreateBulk) SaveX(ctx context.Context) []*Poliza {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolizaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolizaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
