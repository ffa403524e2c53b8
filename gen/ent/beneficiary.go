// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
)

// Beneficiary is the model entity for the Beneficiary schema.
type Beneficiary struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PolicyID holds the value of the "policy_id" field.
	PolicyID uuid.UUID `json:"policy_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Percentage holds the value of the "percentage" field.
	Percentage *float64 `json:"percentage,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BeneficiaryQuery when eager-loading is set.
	Edges        BeneficiaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BeneficiaryEdges holds the relations/edges for other nodes in the graph.
type BeneficiaryEdges struct {
	// Policy holds the value of the policy edge.
	Policy *Poliza `json:"policy,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PolicyOrErr returns the Policy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BeneficiaryEdges) PolicyOrErr() (*Poliza, error) {
	if e.Policy != nil {
		return e.Policy, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: poliza.Label}
	}
	return nil, &NotLoadedError{edge: "policy"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Beneficiary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case beneficiary.FieldPercentage:
			values[i] = new(sql.NullFloat64)
		case beneficiary.FieldName:
			values[i] = new(sql.NullString)
		case beneficiary.FieldID, beneficiary.FieldPolicyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Beneficiary fields.
func (_m *Beneficiary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case beneficiary.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case beneficiary.FieldPolicyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field policy_id", values[i])
			} else if value != nil {
				_m.PolicyID = *value
			}
		case beneficiary.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case beneficiary.FieldPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = new(float64)
				*_m.Percentage = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Beneficiary.
// This includes values selected through modifiers, order, etc.
func (_m *Beneficiary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPolicy queries the "policy" edge of the Beneficiary entity.
func (_m *Beneficiary) QueryPolicy() *PolizaQuery {
	return NewBeneficiaryClient(_m.config).QueryPolicy(_m)
}

// Update returns a builder for updating this Beneficiary.
// Note that you need to call Beneficiary.Unwrap() before calling this method if this Beneficiary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Beneficiary) Update() *BeneficiaryUpdateOne {
	return NewBeneficiaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Beneficiary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Beneficiary) Unwrap() *Beneficiary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Beneficiary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Beneficiary) String() string {
	var builder strings.Builder
	builder.WriteString("Beneficiary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("policy_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Percentage; v != nil {
		builder.WriteString("percentage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Beneficiaries is a parsable slice of Beneficiary.
type Beneficiaries []*Beneficiary
