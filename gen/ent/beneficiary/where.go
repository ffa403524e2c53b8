// Code generated by ent, DO NOT EDIT.

package beneficiary

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldLTE(FieldID, id))
}

// PolicyID applies equality check predicate on the "policy_id" field. It's identical to PolicyIDEQ.
func PolicyID(v uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldPolicyID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldName, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldPercentage, v))
}

// PolicyIDEQ applies the EQ predicate on the "policy_id" field.
func PolicyIDEQ(v uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldPolicyID, v))
}

// PolicyIDNEQ applies the NEQ predicate on the "policy_id" field.
func PolicyIDNEQ(v uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNEQ(FieldPolicyID, v))
}

// PolicyIDIn applies the In predicate on the "policy_id" field.
func PolicyIDIn(vs ...uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldIn(FieldPolicyID, vs...))
}

// PolicyIDNotIn applies the NotIn predicate on the "policy_id" field.
func PolicyIDNotIn(vs ...uuid.UUID) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNotIn(FieldPolicyID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldContainsFold(FieldName, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v float64) predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldLTE(FieldPercentage, v))
}

// PercentageIsNil applies the IsNil predicate on the "percentage" field.
func PercentageIsNil() predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldIsNull(FieldPercentage))
}

// PercentageNotNil applies the NotNil predicate on the "percentage" field.
func PercentageNotNil() predicate.Beneficiary {
	return predicate.Beneficiary(sql.FieldNotNull(FieldPercentage))
}

// HasPolicy applies the HasEdge predicate on the "policy" edge.
func HasPolicy() predicate.Beneficiary {
	return predicate.Beneficiary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PolicyTable, PolicyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPolicyWith applies the HasEdge predicate on the "policy" edge with a given conditions (other predicates).
func HasPolicyWith(preds ...predicate.Poliza) predicate.Beneficiary {
	return predicate.Beneficiary(func(s *sql.Selector) {
		step := newPolicyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Beneficiary) predicate.Beneficiary {
	return predicate.Beneficiary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Beneficiary) predicate.Beneficiary {
	return predicate.Beneficiary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Beneficiary) predicate.Beneficiary {
	return predicate.Beneficiary(sql.NotPredicates(p))
}
