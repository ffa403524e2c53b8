// Code generated by ent, DO NOT EDIT.

package commissionstatement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldAgentID, v))
}

// InsurerID applies equality check predicate on the "insurer_id" field. It's identical to InsurerIDEQ.
func InsurerID(v uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldInsurerID, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldPeriod, v))
}

// ExpectedTotal applies equality check predicate on the "expected_total" field. It's identical to ExpectedTotalEQ.
func ExpectedTotal(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldExpectedTotal, v))
}

// PaidTotal applies equality check predicate on the "paid_total" field. It's identical to PaidTotalEQ.
func PaidTotal(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldPaidTotal, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldAgentID, vs...))
}

// InsurerIDEQ applies the EQ predicate on the "insurer_id" field.
func InsurerIDEQ(v uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldInsurerID, v))
}

// InsurerIDNEQ applies the NEQ predicate on the "insurer_id" field.
func InsurerIDNEQ(v uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldInsurerID, v))
}

// InsurerIDIn applies the In predicate on the "insurer_id" field.
func InsurerIDIn(vs ...uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldInsurerID, vs...))
}

// InsurerIDNotIn applies the NotIn predicate on the "insurer_id" field.
func InsurerIDNotIn(vs ...uuid.UUID) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldInsurerID, vs...))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContainsFold(FieldPeriod, v))
}

// ExpectedTotalEQ applies the EQ predicate on the "expected_total" field.
func ExpectedTotalEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldExpectedTotal, v))
}

// ExpectedTotalNEQ applies the NEQ predicate on the "expected_total" field.
func ExpectedTotalNEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldExpectedTotal, v))
}

// ExpectedTotalIn applies the In predicate on the "expected_total" field.
func ExpectedTotalIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldExpectedTotal, vs...))
}

// ExpectedTotalNotIn applies the NotIn predicate on the "expected_total" field.
func ExpectedTotalNotIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldExpectedTotal, vs...))
}

// ExpectedTotalGT applies the GT predicate on the "expected_total" field.
func ExpectedTotalGT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGT(FieldExpectedTotal, v))
}

// ExpectedTotalGTE applies the GTE predicate on the "expected_total" field.
func ExpectedTotalGTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGTE(FieldExpectedTotal, v))
}

// ExpectedTotalLT applies the LT predicate on the "expected_total" field.
func ExpectedTotalLT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLT(FieldExpectedTotal, v))
}

// ExpectedTotalLTE applies the LTE predicate on the "expected_total" field.
func ExpectedTotalLTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLTE(FieldExpectedTotal, v))
}

// ExpectedTotalContains applies the Contains predicate on the "expected_total" field.
func ExpectedTotalContains(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContains(FieldExpectedTotal, v))
}

// ExpectedTotalHasPrefix applies the HasPrefix predicate on the "expected_total" field.
func ExpectedTotalHasPrefix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasPrefix(FieldExpectedTotal, v))
}

// ExpectedTotalHasSuffix applies the HasSuffix predicate on the "expected_total" field.
func ExpectedTotalHasSuffix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasSuffix(FieldExpectedTotal, v))
}

// ExpectedTotalEqualFold applies the EqualFold predicate on the "expected_total" field.
func ExpectedTotalEqualFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEqualFold(FieldExpectedTotal, v))
}

// ExpectedTotalContainsFold applies the ContainsFold predicate on the "expected_total" field.
func ExpectedTotalContainsFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContainsFold(FieldExpectedTotal, v))
}

// PaidTotalEQ applies the EQ predicate on the "paid_total" field.
func PaidTotalEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldPaidTotal, v))
}

// PaidTotalNEQ applies the NEQ predicate on the "paid_total" field.
func PaidTotalNEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldPaidTotal, v))
}

// PaidTotalIn applies the In predicate on the "paid_total" field.
func PaidTotalIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldPaidTotal, vs...))
}

// PaidTotalNotIn applies the NotIn predicate on the "paid_total" field.
func PaidTotalNotIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldPaidTotal, vs...))
}

// PaidTotalGT applies the GT predicate on the "paid_total" field.
func PaidTotalGT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGT(FieldPaidTotal, v))
}

// PaidTotalGTE applies the GTE predicate on the "paid_total" field.
func PaidTotalGTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGTE(FieldPaidTotal, v))
}

// PaidTotalLT applies the LT predicate on the "paid_total" field.
func PaidTotalLT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLT(FieldPaidTotal, v))
}

// PaidTotalLTE applies the LTE predicate on the "paid_total" field.
func PaidTotalLTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLTE(FieldPaidTotal, v))
}

// PaidTotalContains applies the Contains predicate on the "paid_total" field.
func PaidTotalContains(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContains(FieldPaidTotal, v))
}

// PaidTotalHasPrefix applies the HasPrefix predicate on the "paid_total" field.
func PaidTotalHasPrefix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasPrefix(FieldPaidTotal, v))
}

// PaidTotalHasSuffix applies the HasSuffix predicate on the "paid_total" field.
func PaidTotalHasSuffix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasSuffix(FieldPaidTotal, v))
}

// PaidTotalEqualFold applies the EqualFold predicate on the "paid_total" field.
func PaidTotalEqualFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEqualFold(FieldPaidTotal, v))
}

// PaidTotalContainsFold applies the ContainsFold predicate on the "paid_total" field.
func PaidTotalContainsFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContainsFold(FieldPaidTotal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.CommissionStatement {
	return predicate.CommissionStatement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.CommissionStatement {
	return predicate.CommissionStatement(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInsurer applies the HasEdge predicate on the "insurer" edge.
func HasInsurer() predicate.CommissionStatement {
	return predicate.CommissionStatement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InsurerTable, InsurerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsurerWith applies the HasEdge predicate on the "insurer" edge with a given conditions (other predicates).
func HasInsurerWith(preds ...predicate.Insurer) predicate.CommissionStatement {
	return predicate.CommissionStatement(func(s *sql.Selector) {
		step := newInsurerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLines applies the HasEdge predicate on the "lines" edge.
func HasLines() predicate.CommissionStatement {
	return predicate.CommissionStatement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinesWith applies the HasEdge predicate on the "lines" edge with a given conditions (other predicates).
func HasLinesWith(preds ...predicate.CommissionLine) predicate.CommissionStatement {
	return predicate.CommissionStatement(func(s *sql.Selector) {
		step := newLinesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommissionStatement) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommissionStatement) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommissionStatement) predicate.CommissionStatement {
	return predicate.CommissionStatement(sql.NotPredicates(p))
}
