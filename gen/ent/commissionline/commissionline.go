// Code generated by ent, DO NOT EDIT.

package commissionline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the commissionline type in the database.
	Label = "commission_line"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStatementID holds the string denoting the statement_id field in the database.
	FieldStatementID = "statement_id"
	// FieldPolicyNumber holds the string denoting the policy_number field in the database.
	FieldPolicyNumber = "policy_number"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldExpectedAmount holds the string denoting the expected_amount field in the database.
	FieldExpectedAmount = "expected_amount"
	// FieldPaidAmount holds the string denoting the paid_amount field in the database.
	FieldPaidAmount = "paid_amount"
	// EdgeStatement holds the string denoting the statement edge name in mutations.
	EdgeStatement = "statement"
	// Table holds the table name of the commissionline in the database.
	Table = "commission_lines"
	// StatementTable is the table that holds the statement relation/edge.
	StatementTable = "commission_lines"
	// StatementInverseTable is the table name for the CommissionStatement entity.
	// It exists in this package in order to avoid circular dependency with the "commissionstatement" package.
	StatementInverseTable = "commission_statements"
	// StatementColumn is the table column denoting the statement relation/edge.
	StatementColumn = "statement_id"
)

// Columns holds all SQL columns for commissionline fields.
var Columns = []string{
	FieldID,
	FieldStatementID,
	FieldPolicyNumber,
	FieldConcept,
	FieldExpectedAmount,
	FieldPaidAmount,
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
	// PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	PolicyNumberValidator func(string) error
	// DefaultExpectedAmount holds the default value on creation for the "expected_amount" field.
	DefaultExpectedAmount string
	// DefaultPaidAmount holds the default value on creation for the "paid_amount" field.
	DefaultPaidAmount string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CommissionLine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatementID orders the results by the statement_id field.
func ByStatementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatementID, opts...).ToFunc()
}

// ByPolicyNumber orders the results by the policy_number field.
func ByPolicyNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyNumber, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// ByExpectedAmount orders the results by the expected_amount field.
func ByExpectedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedAmount, opts...).ToFunc()
}

// ByPaidAmount orders the results by the paid_amount field.
func ByPaidAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidAmount, opts...).ToFunc()
}

// ByStatementField orders the results by statement field.
func ByStatementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatementStep(), sql.OrderByField(field, opts...))
	}
}
func newStatementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatementInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StatementTable, StatementColumn),
	)
}
