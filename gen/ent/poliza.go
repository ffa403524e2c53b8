// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
)

// Poliza is the model entity for the Poliza schema.
type Poliza struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID uuid.UUID `json:"agent_id,omitempty"`
	// ClientID holds the value of the "client_id" field.
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// InsuredClientID holds the value of the "insured_client_id" field.
	InsuredClientID *uuid.UUID `json:"insured_client_id,omitempty"`
	// InsurerID holds the value of the "insurer_id" field.
	InsurerID uuid.UUID `json:"insurer_id,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName *string `json:"product_name,omitempty"`
	// PolicyNumber holds the value of the "policy_number" field.
	PolicyNumber string `json:"policy_number,omitempty"`
	// ValidFrom holds the value of the "valid_from" field.
	ValidFrom time.Time `json:"valid_from,omitempty"`
	// ValidTo holds the value of the "valid_to" field.
	ValidTo time.Time `json:"valid_to,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// PaymentFrequency holds the value of the "payment_frequency" field.
	PaymentFrequency *string `json:"payment_frequency,omitempty"`
	// PremiumTotal holds the value of the "premium_total" field.
	PremiumTotal *string `json:"premium_total,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PolizaQuery when eager-loading is set.
	Edges        PolizaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PolizaEdges holds the relations/edges for other nodes in the graph.
type PolizaEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Client holds the value of the client edge.
	Client *Cliente `json:"client,omitempty"`
	// Insurer holds the value of the insurer edge.
	Insurer *Insurer `json:"insurer,omitempty"`
	// Beneficiaries holds the value of the beneficiaries edge.
	Beneficiaries []*Beneficiary `json:"beneficiaries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolizaEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolizaEdges) ClientOrErr() (*Cliente, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: cliente.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// InsurerOrErr returns the Insurer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolizaEdges) InsurerOrErr() (*Insurer, error) {
	if e.Insurer != nil {
		return e.Insurer, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: insurer.Label}
	}
	return nil, &NotLoadedError{edge: "insurer"}
}

// BeneficiariesOrErr returns the Beneficiaries value or an error if the edge
// was not loaded in eager-loading.
func (e PolizaEdges) BeneficiariesOrErr() ([]*Beneficiary, error) {
	if e.loadedTypes[3] {
		return e.Beneficiaries, nil
	}
	return nil, &NotLoadedError{edge: "beneficiaries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Poliza) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case poliza.FieldInsuredClientID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case poliza.FieldProductName, poliza.FieldPolicyNumber, poliza.FieldCurrency, poliza.FieldPaymentFrequency, poliza.FieldPremiumTotal, poliza.FieldStatus:
			values[i] = new(sql.NullString)
		case poliza.FieldValidFrom, poliza.FieldValidTo, poliza.FieldCreatedAt, poliza.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case poliza.FieldID, poliza.FieldAgentID, poliza.FieldClientID, poliza.FieldInsurerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Poliza fields.
func (_m *Poliza) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case poliza.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case poliza.FieldAgentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value != nil {
				_m.AgentID = *value
			}
		case poliza.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		case poliza.FieldInsuredClientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field insured_client_id", values[i])
			} else if value.Valid {
				_m.InsuredClientID = new(uuid.UUID)
				*_m.InsuredClientID = *value.S.(*uuid.UUID)
			}
		case poliza.FieldInsurerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field insurer_id", values[i])
			} else if value != nil {
				_m.InsurerID = *value
			}
		case poliza.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				_m.ProductName = new(string)
				*_m.ProductName = value.String
			}
		case poliza.FieldPolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_number", values[i])
			} else if value.Valid {
				_m.PolicyNumber = value.String
			}
		case poliza.FieldValidFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_from", values[i])
			} else if value.Valid {
				_m.ValidFrom = value.Time
			}
		case poliza.FieldValidTo:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_to", values[i])
			} else if value.Valid {
				_m.ValidTo = value.Time
			}
		case poliza.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case poliza.FieldPaymentFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_frequency", values[i])
			} else if value.Valid {
				_m.PaymentFrequency = new(string)
				*_m.PaymentFrequency = value.String
			}
		case poliza.FieldPremiumTotal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field premium_total", values[i])
			} else if value.Valid {
				_m.PremiumTotal = new(string)
				*_m.PremiumTotal = value.String
			}
		case poliza.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case poliza.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case poliza.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Poliza.
// This includes values selected through modifiers, order, etc.
func (_m *Poliza) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the Poliza entity.
func (_m *Poliza) QueryAgent() *AgentQuery {
	return NewPolizaClient(_m.config).QueryAgent(_m)
}

// QueryClient queries the "client" edge of the Poliza entity.
func (_m *Poliza) QueryClient() *ClienteQuery {
	return NewPolizaClient(_m.config).QueryClient(_m)
}

// QueryInsurer queries the "insurer" edge of the Poliza entity.
func (_m *Poliza) QueryInsurer() *InsurerQuery {
	return NewPolizaClient(_m.config).QueryInsurer(_m)
}

// QueryBeneficiaries queries the "beneficiaries" edge of the Poliza entity.
func (_m *Poliza) QueryBeneficiaries() *BeneficiaryQuery {
	return NewPolizaClient(_m.config).QueryBeneficiaries(_m)
}

// Update returns a builder for updating this Poliza.
// Note that you need to call Poliza.Unwrap() before calling this method if this Poliza
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Poliza) Update() *PolizaUpdateOne {
	return NewPolizaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Poliza entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Poliza) Unwrap() *Poliza {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Poliza is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Poliza) String() string {
	var builder strings.Builder
	builder.WriteString("Poliza(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	if v := _m.InsuredClientID; v != nil {
		builder.WriteString("insured_client_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("insurer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsurerID))
	builder.WriteString(", ")
	if v := _m.ProductName; v != nil {
		builder.WriteString("product_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("policy_number=")
	builder.WriteString(_m.PolicyNumber)
	builder.WriteString(", ")
	builder.WriteString("valid_from=")
	builder.WriteString(_m.ValidFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("valid_to=")
	builder.WriteString(_m.ValidTo.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.PaymentFrequency; v != nil {
		builder.WriteString("payment_frequency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PremiumTotal; v != nil {
		builder.WriteString("premium_total=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Polizas is a parsable slice of Poliza.
type Polizas []*Poliza
