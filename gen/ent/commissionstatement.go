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
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
)

// CommissionStatement is the model entity for the CommissionStatement schema.
type CommissionStatement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID uuid.UUID `json:"agent_id,omitempty"`
	// InsurerID holds the value of the "insurer_id" field.
	InsurerID uuid.UUID `json:"insurer_id,omitempty"`
	// Period holds the value of the "period" field.
	Period string `json:"period,omitempty"`
	// ExpectedTotal holds the value of the "expected_total" field.
	ExpectedTotal string `json:"expected_total,omitempty"`
	// PaidTotal holds the value of the "paid_total" field.
	PaidTotal string `json:"paid_total,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommissionStatementQuery when eager-loading is set.
	Edges        CommissionStatementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommissionStatementEdges holds the relations/edges for other nodes in the graph.
type CommissionStatementEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Insurer holds the value of the insurer edge.
	Insurer *Insurer `json:"insurer,omitempty"`
	// Lines holds the value of the lines edge.
	Lines []*CommissionLine `json:"lines,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionStatementEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// InsurerOrErr returns the Insurer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionStatementEdges) InsurerOrErr() (*Insurer, error) {
	if e.Insurer != nil {
		return e.Insurer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: insurer.Label}
	}
	return nil, &NotLoadedError{edge: "insurer"}
}

// LinesOrErr returns the Lines value or an error if the edge
// was not loaded in eager-loading.
func (e CommissionStatementEdges) LinesOrErr() ([]*CommissionLine, error) {
	if e.loadedTypes[2] {
		return e.Lines, nil
	}
	return nil, &NotLoadedError{edge: "lines"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommissionStatement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commissionstatement.FieldPeriod, commissionstatement.FieldExpectedTotal, commissionstatement.FieldPaidTotal, commissionstatement.FieldStatus:
			values[i] = new(sql.NullString)
		case commissionstatement.FieldCreatedAt, commissionstatement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case commissionstatement.FieldID, commissionstatement.FieldAgentID, commissionstatement.FieldInsurerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommissionStatement fields.
func (_m *CommissionStatement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commissionstatement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case commissionstatement.FieldAgentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value != nil {
				_m.AgentID = *value
			}
		case commissionstatement.FieldInsurerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field insurer_id", values[i])
			} else if value != nil {
				_m.InsurerID = *value
			}
		case commissionstatement.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case commissionstatement.FieldExpectedTotal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_total", values[i])
			} else if value.Valid {
				_m.ExpectedTotal = value.String
			}
		case commissionstatement.FieldPaidTotal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paid_total", values[i])
			} else if value.Valid {
				_m.PaidTotal = value.String
			}
		case commissionstatement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case commissionstatement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case commissionstatement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CommissionStatement.
// This includes values selected through modifiers, order, etc.
func (_m *CommissionStatement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the CommissionStatement entity.
func (_m *CommissionStatement) QueryAgent() *AgentQuery {
	return NewCommissionStatementClient(_m.config).QueryAgent(_m)
}

// QueryInsurer queries the "insurer" edge of the CommissionStatement entity.
func (_m *CommissionStatement) QueryInsurer() *InsurerQuery {
	return NewCommissionStatementClient(_m.config).QueryInsurer(_m)
}

// QueryLines queries the "lines" edge of the CommissionStatement entity.
func (_m *CommissionStatement) QueryLines() *CommissionLineQuery {
	return NewCommissionStatementClient(_m.config).QueryLines(_m)
}

// Update returns a builder for updating this CommissionStatement.
// Note that you need to call CommissionStatement.Unwrap() before calling this method if this CommissionStatement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommissionStatement) Update() *CommissionStatementUpdateOne {
	return NewCommissionStatementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommissionStatement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommissionStatement) Unwrap() *CommissionStatement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommissionStatement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommissionStatement) String() string {
	var builder strings.Builder
	builder.WriteString("CommissionStatement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("insurer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsurerID))
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("expected_total=")
	builder.WriteString(_m.ExpectedTotal)
	builder.WriteString(", ")
	builder.WriteString("paid_total=")
	builder.WriteString(_m.PaidTotal)
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

// CommissionStatements is a parsable slice of CommissionStatement.
type CommissionStatements []*CommissionStatement
