// Code generated by ent, DO NOT EDIT.

package commissionstatement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the commissionstatement type in the database.
	Label = "commission_statement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldInsurerID holds the string denoting the insurer_id field in the database.
	FieldInsurerID = "insurer_id"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldExpectedTotal holds the string denoting the expected_total field in the database.
	FieldExpectedTotal = "expected_total"
	// FieldPaidTotal holds the string denoting the paid_total field in the database.
	FieldPaidTotal = "paid_total"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeInsurer holds the string denoting the insurer edge name in mutations.
	EdgeInsurer = "insurer"
	// EdgeLines holds the string denoting the lines edge name in mutations.
	EdgeLines = "lines"
	// Table holds the table name of the commissionstatement in the database.
	Table = "commission_statements"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "commission_statements"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// InsurerTable is the table that holds the insurer relation/edge.
	InsurerTable = "commission_statements"
	// InsurerInverseTable is the table name for the Insurer entity.
	// It exists in this package in order to avoid circular dependency with the "insurer" package.
	InsurerInverseTable = "insurers"
	// InsurerColumn is the table column denoting the insurer relation/edge.
	InsurerColumn = "insurer_id"
	// LinesTable is the table that holds the lines relation/edge.
	LinesTable = "commission_lines"
	// LinesInverseTable is the table name for the CommissionLine entity.
	// It exists in this package in order to avoid circular dependency with the "commissionline" package.
	LinesInverseTable = "commission_lines"
	// LinesColumn is the table column denoting the lines relation/edge.
	LinesColumn = "statement_id"
)

// Columns holds all SQL columns for commissionstatement fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldInsurerID,
	FieldPeriod,
	FieldExpectedTotal,
	FieldPaidTotal,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PeriodValidator is a validator for the "period" field. It is called by the builders before save.
	PeriodValidator func(string) error
	// DefaultExpectedTotal holds the default value on creation for the "expected_total" field.
	DefaultExpectedTotal string
	// DefaultPaidTotal holds the default value on creation for the "paid_total" field.
	DefaultPaidTotal string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CommissionStatement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByInsurerID orders the results by the insurer_id field.
func ByInsurerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsurerID, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByExpectedTotal orders the results by the expected_total field.
func ByExpectedTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedTotal, opts...).ToFunc()
}

// ByPaidTotal orders the results by the paid_total field.
func ByPaidTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidTotal, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByInsurerField orders the results by insurer field.
func ByInsurerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsurerStep(), sql.OrderByField(field, opts...))
	}
}

// ByLinesCount orders the results by lines count.
func ByLinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLinesStep(), opts...)
	}
}

// ByLines orders the results by lines terms.
func ByLines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newInsurerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsurerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InsurerTable, InsurerColumn),
	)
}
func newLinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
	)
}
