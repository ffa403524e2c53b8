// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
)

// CommissionLine is the model entity for the CommissionLine schema.
type CommissionLine struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StatementID holds the value of the "statement_id" field.
	StatementID uuid.UUID `json:"statement_id,omitempty"`
	// PolicyNumber holds the value of the "policy_number" field.
	PolicyNumber string `json:"policy_number,omitempty"`
	// Concept holds the value of the "concept" field.
	Concept string `json:"concept,omitempty"`
	// ExpectedAmount holds the value of the "expected_amount" field.
	ExpectedAmount string `json:"expected_amount,omitempty"`
	// PaidAmount holds the value of the "paid_amount" field.
	PaidAmount string `json:"paid_amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommissionLineQuery when eager-loading is set.
	Edges        CommissionLineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommissionLineEdges holds the relations/edges for other nodes in the graph.
type CommissionLineEdges struct {
	// Statement holds the value of the statement edge.
	Statement *CommissionStatement `json:"statement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StatementOrErr returns the Statement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionLineEdges) StatementOrErr() (*CommissionStatement, error) {
	if e.Statement != nil {
		return e.Statement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: commissionstatement.Label}
	}
	return nil, &NotLoadedError{edge: "statement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommissionLine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commissionline.FieldPolicyNumber, commissionline.FieldConcept, commissionline.FieldExpectedAmount, commissionline.FieldPaidAmount:
			values[i] = new(sql.NullString)
		case commissionline.FieldID, commissionline.FieldStatementID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommissionLine fields.
func (_m *CommissionLine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commissionline.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case commissionline.FieldStatementID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field statement_id", values[i])
			} else if value != nil {
				_m.StatementID = *value
			}
		case commissionline.FieldPolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_number", values[i])
			} else if value.Valid {
				_m.PolicyNumber = value.String
			}
		case commissionline.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case commissionline.FieldExpectedAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_amount", values[i])
			} else if value.Valid {
				_m.ExpectedAmount = value.String
			}
		case commissionline.FieldPaidAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paid_amount", values[i])
			} else if value.Valid {
				_m.PaidAmount = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommissionLine.
// This includes values selected through modifiers, order, etc.
func (_m *CommissionLine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStatement queries the "statement" edge of the CommissionLine entity.
func (_m *CommissionLine) QueryStatement() *CommissionStatementQuery {
	return NewCommissionLineClient(_m.config).QueryStatement(_m)
}

// Update returns a builder for updating this CommissionLine.
// Note that you need to call CommissionLine.Unwrap() before calling this method if this CommissionLine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommissionLine) Update() *CommissionLineUpdateOne {
	return NewCommissionLineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommissionLine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommissionLine) Unwrap() *CommissionLine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommissionLine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommissionLine) String() string {
	var builder strings.Builder
	builder.WriteString("CommissionLine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("statement_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatementID))
	builder.WriteString(", ")
	builder.WriteString("policy_number=")
	builder.WriteString(_m.PolicyNumber)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("expected_amount=")
	builder.WriteString(_m.ExpectedAmount)
	builder.WriteString(", ")
	builder.WriteString("paid_amount=")
	builder.WriteString(_m.PaidAmount)
	builder.WriteByte(')')
	return builder.String()
}

// CommissionLines is a parsable slice of CommissionLine.
type CommissionLines []*CommissionLine
