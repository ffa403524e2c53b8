// Code generated by ent, DO NOT EDIT.

package commissionline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLTE(FieldID, id))
}

// StatementID applies equality check predicate on the "statement_id" field. It's identical to StatementIDEQ.
func StatementID(v uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldStatementID, v))
}

// PolicyNumber applies equality check predicate on the "policy_number" field. It's identical to PolicyNumberEQ.
func PolicyNumber(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldPolicyNumber, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldConcept, v))
}

// ExpectedAmount applies equality check predicate on the "expected_amount" field. It's identical to ExpectedAmountEQ.
func ExpectedAmount(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldExpectedAmount, v))
}

// PaidAmount applies equality check predicate on the "paid_amount" field. It's identical to PaidAmountEQ.
func PaidAmount(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldPaidAmount, v))
}

// StatementIDEQ applies the EQ predicate on the "statement_id" field.
func StatementIDEQ(v uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldStatementID, v))
}

// StatementIDNEQ applies the NEQ predicate on the "statement_id" field.
func StatementIDNEQ(v uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNEQ(FieldStatementID, v))
}

// StatementIDIn applies the In predicate on the "statement_id" field.
func StatementIDIn(vs ...uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldIn(FieldStatementID, vs...))
}

// StatementIDNotIn applies the NotIn predicate on the "statement_id" field.
func StatementIDNotIn(vs ...uuid.UUID) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNotIn(FieldStatementID, vs...))
}

// PolicyNumberEQ applies the EQ predicate on the "policy_number" field.
func PolicyNumberEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldPolicyNumber, v))
}

// PolicyNumberNEQ applies the NEQ predicate on the "policy_number" field.
func PolicyNumberNEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNEQ(FieldPolicyNumber, v))
}

// PolicyNumberIn applies the In predicate on the "policy_number" field.
func PolicyNumberIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldIn(FieldPolicyNumber, vs...))
}

// PolicyNumberNotIn applies the NotIn predicate on the "policy_number" field.
func PolicyNumberNotIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNotIn(FieldPolicyNumber, vs...))
}

// PolicyNumberGT applies the GT predicate on the "policy_number" field.
func PolicyNumberGT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGT(FieldPolicyNumber, v))
}

// PolicyNumberGTE applies the GTE predicate on the "policy_number" field.
func PolicyNumberGTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGTE(FieldPolicyNumber, v))
}

// PolicyNumberLT applies the LT predicate on the "policy_number" field.
func PolicyNumberLT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLT(FieldPolicyNumber, v))
}

// PolicyNumberLTE applies the LTE predicate on the "policy_number" field.
func PolicyNumberLTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLTE(FieldPolicyNumber, v))
}

// PolicyNumberContains applies the Contains predicate on the "policy_number" field.
func PolicyNumberContains(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContains(FieldPolicyNumber, v))
}

// PolicyNumberHasPrefix applies the HasPrefix predicate on the "policy_number" field.
func PolicyNumberHasPrefix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasPrefix(FieldPolicyNumber, v))
}

// PolicyNumberHasSuffix applies the HasSuffix predicate on the "policy_number" field.
func PolicyNumberHasSuffix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasSuffix(FieldPolicyNumber, v))
}

// PolicyNumberEqualFold applies the EqualFold predicate on the "policy_number" field.
func PolicyNumberEqualFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEqualFold(FieldPolicyNumber, v))
}

// PolicyNumberContainsFold applies the ContainsFold predicate on the "policy_number" field.
func PolicyNumberContainsFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContainsFold(FieldPolicyNumber, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptIsNil applies the IsNil predicate on the "concept" field.
func ConceptIsNil() predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldIsNull(FieldConcept))
}

// ConceptNotNil applies the NotNil predicate on the "concept" field.
func ConceptNotNil() predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNotNull(FieldConcept))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContainsFold(FieldConcept, v))
}

// ExpectedAmountEQ applies the EQ predicate on the "expected_amount" field.
func ExpectedAmountEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldExpectedAmount, v))
}

// ExpectedAmountNEQ applies the NEQ predicate on the "expected_amount" field.
func ExpectedAmountNEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNEQ(FieldExpectedAmount, v))
}

// ExpectedAmountIn applies the In predicate on the "expected_amount" field.
func ExpectedAmountIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldIn(FieldExpectedAmount, vs...))
}

// ExpectedAmountNotIn applies the NotIn predicate on the "expected_amount" field.
func ExpectedAmountNotIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNotIn(FieldExpectedAmount, vs...))
}

// ExpectedAmountGT applies the GT predicate on the "expected_amount" field.
func ExpectedAmountGT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGT(FieldExpectedAmount, v))
}

// ExpectedAmountGTE applies the GTE predicate on the "expected_amount" field.
func ExpectedAmountGTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGTE(FieldExpectedAmount, v))
}

// ExpectedAmountLT applies the LT predicate on the "expected_amount" field.
func ExpectedAmountLT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLT(FieldExpectedAmount, v))
}

// ExpectedAmountLTE applies the LTE predicate on the "expected_amount" field.
func ExpectedAmountLTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLTE(FieldExpectedAmount, v))
}

// ExpectedAmountContains applies the Contains predicate on the "expected_amount" field.
func ExpectedAmountContains(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContains(FieldExpectedAmount, v))
}

// ExpectedAmountHasPrefix applies the HasPrefix predicate on the "expected_amount" field.
func ExpectedAmountHasPrefix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasPrefix(FieldExpectedAmount, v))
}

// ExpectedAmountHasSuffix applies the HasSuffix predicate on the "expected_amount" field.
func ExpectedAmountHasSuffix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasSuffix(FieldExpectedAmount, v))
}

// ExpectedAmountEqualFold applies the EqualFold predicate on the "expected_amount" field.
func ExpectedAmountEqualFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEqualFold(FieldExpectedAmount, v))
}

// ExpectedAmountContainsFold applies the ContainsFold predicate on the "expected_amount" field.
func ExpectedAmountContainsFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContainsFold(FieldExpectedAmount, v))
}

// PaidAmountEQ applies the EQ predicate on the "paid_amount" field.
func PaidAmountEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEQ(FieldPaidAmount, v))
}

// PaidAmountNEQ applies the NEQ predicate on the "paid_amount" field.
func PaidAmountNEQ(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNEQ(FieldPaidAmount, v))
}

// PaidAmountIn applies the In predicate on the "paid_amount" field.
func PaidAmountIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldIn(FieldPaidAmount, vs...))
}

// PaidAmountNotIn applies the NotIn predicate on the "paid_amount" field.
func PaidAmountNotIn(vs ...string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldNotIn(FieldPaidAmount, vs...))
}

// PaidAmountGT applies the GT predicate on the "paid_amount" field.
func PaidAmountGT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGT(FieldPaidAmount, v))
}

// PaidAmountGTE applies the GTE predicate on the "paid_amount" field.
func PaidAmountGTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldGTE(FieldPaidAmount, v))
}

// PaidAmountLT applies the LT predicate on the "paid_amount" field.
func PaidAmountLT(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLT(FieldPaidAmount, v))
}

// PaidAmountLTE applies the LTE predicate on the "paid_amount" field.
func PaidAmountLTE(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldLTE(FieldPaidAmount, v))
}

// PaidAmountContains applies the Contains predicate on the "paid_amount" field.
func PaidAmountContains(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContains(FieldPaidAmount, v))
}

// PaidAmountHasPrefix applies the HasPrefix predicate on the "paid_amount" field.
func PaidAmountHasPrefix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasPrefix(FieldPaidAmount, v))
}

// PaidAmountHasSuffix applies the HasSuffix predicate on the "paid_amount" field.
func PaidAmountHasSuffix(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldHasSuffix(FieldPaidAmount, v))
}

// PaidAmountEqualFold applies the EqualFold predicate on the "paid_amount" field.
func PaidAmountEqualFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldEqualFold(FieldPaidAmount, v))
}

// PaidAmountContainsFold applies the ContainsFold predicate on the "paid_amount" field.
func PaidAmountContainsFold(v string) predicate.CommissionLine {
	return predicate.CommissionLine(sql.FieldContainsFold(FieldPaidAmount, v))
}

// HasStatement applies the HasEdge predicate on the "statement" edge.
func HasStatement() predicate.CommissionLine {
	return predicate.CommissionLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StatementTable, StatementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatementWith applies the HasEdge predicate on the "statement" edge with a given conditions (other predicates).
func HasStatementWith(preds ...predicate.CommissionStatement) predicate.CommissionLine {
	return predicate.CommissionLine(func(s *sql.Selector) {
		step := newStatementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommissionLine) predicate.CommissionLine {
	return predicate.CommissionLine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommissionLine) predicate.CommissionLine {
	return predicate.CommissionLine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommissionLine) predicate.CommissionLine {
	return predicate.CommissionLine(sql.NotPredicates(p))
}
