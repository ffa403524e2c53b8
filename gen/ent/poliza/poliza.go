// Code generated by ent, DO NOT EDIT.

package poliza

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the poliza type in the database.
	Label = "poliza"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldInsuredClientID holds the string denoting the insured_client_id field in the database.
	FieldInsuredClientID = "insured_client_id"
	// FieldInsurerID holds the string denoting the insurer_id field in the database.
	FieldInsurerID = "insurer_id"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldPolicyNumber holds the string denoting the policy_number field in the database.
	FieldPolicyNumber = "policy_number"
	// FieldValidFrom holds the string denoting the valid_from field in the database.
	FieldValidFrom = "valid_from"
	// FieldValidTo holds the string denoting the valid_to field in the database.
	FieldValidTo = "valid_to"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldPaymentFrequency holds the string denoting the payment_frequency field in the database.
	FieldPaymentFrequency = "payment_frequency"
	// FieldPremiumTotal holds the string denoting the premium_total field in the database.
	FieldPremiumTotal = "premium_total"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeClient holds the string denoting the client edge name in mutations.
	EdgeClient = "client"
	// EdgeInsurer holds the string denoting the insurer edge name in mutations.
	EdgeInsurer = "insurer"
	// EdgeBeneficiaries holds the string denoting the beneficiaries edge name in mutations.
	EdgeBeneficiaries = "beneficiaries"
	// Table holds the table name of the poliza in the database.
	Table = "policies"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "policies"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// ClientTable is the table that holds the client relation/edge.
	ClientTable = "policies"
	// ClientInverseTable is the table name for the Cliente entity.
	// It exists in this package in order to avoid circular dependency with the "cliente" package.
	ClientInverseTable = "clientes"
	// ClientColumn is the table column denoting the client relation/edge.
	ClientColumn = "client_id"
	// InsurerTable is the table that holds the insurer relation/edge.
	InsurerTable = "policies"
	// InsurerInverseTable is the table name for the Insurer entity.
	// It exists in this package in order to avoid circular dependency with the "insurer" package.
	InsurerInverseTable = "insurers"
	// InsurerColumn is the table column denoting the insurer relation/edge.
	InsurerColumn = "insurer_id"
	// BeneficiariesTable is the table that holds the beneficiaries relation/edge.
	BeneficiariesTable = "beneficiaries"
	// BeneficiariesInverseTable is the table name for the Beneficiary entity.
	// It exists in this package in order to avoid circular dependency with the "beneficiary" package.
	BeneficiariesInverseTable = "beneficiaries"
	// BeneficiariesColumn is the table column denoting the beneficiaries relation/edge.
	BeneficiariesColumn = "policy_id"
)

// Columns holds all SQL columns for poliza fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldClientID,
	FieldInsuredClientID,
	FieldInsurerID,
	FieldProductName,
	FieldPolicyNumber,
	FieldValidFrom,
	FieldValidTo,
	FieldCurrency,
	FieldPaymentFrequency,
	FieldPremiumTotal,
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
	// PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	PolicyNumberValidator func(string) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Poliza queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByInsuredClientID orders the results by the insured_client_id field.
func ByInsuredClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuredClientID, opts...).ToFunc()
}

// ByInsurerID orders the results by the insurer_id field.
func ByInsurerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsurerID, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByPolicyNumber orders the results by the policy_number field.
func ByPolicyNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyNumber, opts...).ToFunc()
}

// ByValidFrom orders the results by the valid_from field.
func ByValidFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidFrom, opts...).ToFunc()
}

// ByValidTo orders the results by the valid_to field.
func ByValidTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidTo, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByPaymentFrequency orders the results by the payment_frequency field.
func ByPaymentFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentFrequency, opts...).ToFunc()
}

// ByPremiumTotal orders the results by the premium_total field.
func ByPremiumTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPremiumTotal, opts...).ToFunc()
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

// ByClientField orders the results by client field.
func ByClientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClientStep(), sql.OrderByField(field, opts...))
	}
}

// ByInsurerField orders the results by insurer field.
func ByInsurerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsurerStep(), sql.OrderByField(field, opts...))
	}
}

// ByBeneficiariesCount orders the results by beneficiaries count.
func ByBeneficiariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBeneficiariesStep(), opts...)
	}
}

// ByBeneficiaries orders the results by beneficiaries terms.
func ByBeneficiaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBeneficiariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newClientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
	)
}
func newInsurerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsurerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InsurerTable, InsurerColumn),
	)
}
func newBeneficiariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BeneficiariesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BeneficiariesTable, BeneficiariesColumn),
	)
}
