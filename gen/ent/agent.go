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
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Rfc holds the value of the "rfc" field.
	Rfc *string `json:"rfc,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Clients holds the value of the clients edge.
	Clients []*Cliente `json:"clients,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// Policies holds the value of the policies edge.
	Policies []*Poliza `json:"policies,omitempty"`
	// Imports holds the value of the imports edge.
	Imports []*PolicyAIImport `json:"imports,omitempty"`
	// TrackingEntries holds the value of the tracking_entries edge.
	TrackingEntries []*TrackingEntry `json:"tracking_entries,omitempty"`
	// Statements holds the value of the statements edge.
	Statements []*CommissionStatement `json:"statements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// ClientsOrErr returns the Clients value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ClientsOrErr() ([]*Cliente, error) {
	if e.loadedTypes[0] {
		return e.Clients, nil
	}
	return nil, &NotLoadedError{edge: "clients"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[1] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// PoliciesOrErr returns the Policies value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) PoliciesOrErr() ([]*Poliza, error) {
	if e.loadedTypes[2] {
		return e.Policies, nil
	}
	return nil, &NotLoadedError{edge: "policies"}
}

// ImportsOrErr returns the Imports value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ImportsOrErr() ([]*PolicyAIImport, error) {
	if e.loadedTypes[3] {
		return e.Imports, nil
	}
	return nil, &NotLoadedError{edge: "imports"}
}

// TrackingEntriesOrErr returns the TrackingEntries value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) TrackingEntriesOrErr() ([]*TrackingEntry, error) {
	if e.loadedTypes[4] {
		return e.TrackingEntries, nil
	}
	return nil, &NotLoadedError{edge: "tracking_entries"}
}

// StatementsOrErr returns the Statements value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) StatementsOrErr() ([]*CommissionStatement, error) {
	if e.loadedTypes[5] {
		return e.Statements, nil
	}
	return nil, &NotLoadedError{edge: "statements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldName, agent.FieldEmail, agent.FieldRfc:
			values[i] = new(sql.NullString)
		case agent.FieldCreatedAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case agent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agent.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case agent.FieldRfc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rfc", values[i])
			} else if value.Valid {
				_m.Rfc = new(string)
				*_m.Rfc = value.String
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClients queries the "clients" edge of the Agent entity.
func (_m *Agent) QueryClients() *ClienteQuery {
	return NewAgentClient(_m.config).QueryClients(_m)
}

// QueryLeads queries the "leads" edge of the Agent entity.
func (_m *Agent) QueryLeads() *LeadQuery {
	return NewAgentClient(_m.config).QueryLeads(_m)
}

// QueryPolicies queries the "policies" edge of the Agent entity.
func (_m *Agent) QueryPolicies() *PolizaQuery {
	return NewAgentClient(_m.config).QueryPolicies(_m)
}

// QueryImports queries the "imports" edge of the Agent entity.
func (_m *Agent) QueryImports() *PolicyAIImportQuery {
	return NewAgentClient(_m.config).QueryImports(_m)
}

// QueryTrackingEntries queries the "tracking_entries" edge of the Agent entity.
func (_m *Agent) QueryTrackingEntries() *TrackingEntryQuery {
	return NewAgentClient(_m.config).QueryTrackingEntries(_m)
}

// QueryStatements queries the "statements" edge of the Agent entity.
func (_m *Agent) QueryStatements() *CommissionStatementQuery {
	return NewAgentClient(_m.config).QueryStatements(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.Rfc; v != nil {
		builder.WriteString("rfc=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
