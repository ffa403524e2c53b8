// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
)

// Insurer is the model entity for the Insurer schema.
type Insurer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InsurerQuery when eager-loading is set.
	Edges        InsurerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InsurerEdges holds the relations/edges for other nodes in the graph.
type InsurerEdges struct {
	// Policies holds the value of the policies edge.
	Policies []*Poliza `json:"policies,omitempty"`
	// Statements holds the value of the statements edge.
	Statements []*CommissionStatement `json:"statements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PoliciesOrErr returns the Policies value or an error if the edge
// was not loaded in eager-loading.
func (e InsurerEdges) PoliciesOrErr() ([]*Poliza, error) {
	if e.loadedTypes[0] {
		return e.Policies, nil
	}
	return nil, &NotLoadedError{edge: "policies"}
}

// StatementsOrErr returns the Statements value or an error if the edge
// was not loaded in eager-loading.
func (e InsurerEdges) StatementsOrErr() ([]*CommissionStatement, error) {
	if e.loadedTypes[1] {
		return e.Statements, nil
	}
	return nil, &NotLoadedError{edge: "statements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Insurer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insurer.FieldActive:
			values[i] = new(sql.NullBool)
		case insurer.FieldName:
			values[i] = new(sql.NullString)
		case insurer.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Insurer fields.
func (_m *Insurer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insurer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case insurer.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case insurer.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Insurer.
// This includes values selected through modifiers, order, etc.
func (_m *Insurer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPolicies queries the "policies" edge of the Insurer entity.
func (_m *Insurer) QueryPolicies() *PolizaQuery {
	return NewInsurerClient(_m.config).QueryPolicies(_m)
}

// QueryStatements queries the "statements" edge of the Insurer entity.
func (_m *Insurer) QueryStatements() *CommissionStatementQuery {
	return NewInsurerClient(_m.config).QueryStatements(_m)
}

// Update returns a builder for updating this Insurer.
// Note that you need to call Insurer.Unwrap() before calling this method if this Insurer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Insurer) Update() *InsurerUpdateOne {
	return NewInsurerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Insurer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Insurer) Unwrap() *Insurer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Insurer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Insurer) String() string {
	var builder strings.Builder
	builder.WriteString("Insurer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteByte(')')
	return builder.String()
}

// Insurers is a parsable slice of Insurer.
type Insurers []*Insurer
