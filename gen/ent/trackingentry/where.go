// Code generated by ent, DO NOT EDIT.

package trackingentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldAgentID, v))
}

// OwnerKind applies equality check predicate on the "owner_kind" field. It's identical to OwnerKindEQ.
func OwnerKind(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldOwnerKind, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldOwnerID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldKind, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldBody, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldAgentID, vs...))
}

// OwnerKindEQ applies the EQ predicate on the "owner_kind" field.
func OwnerKindEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldOwnerKind, v))
}

// OwnerKindNEQ applies the NEQ predicate on the "owner_kind" field.
func OwnerKindNEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldOwnerKind, v))
}

// OwnerKindIn applies the In predicate on the "owner_kind" field.
func OwnerKindIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldOwnerKind, vs...))
}

// OwnerKindNotIn applies the NotIn predicate on the "owner_kind" field.
func OwnerKindNotIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldOwnerKind, vs...))
}

// OwnerKindGT applies the GT predicate on the "owner_kind" field.
func OwnerKindGT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldOwnerKind, v))
}

// OwnerKindGTE applies the GTE predicate on the "owner_kind" field.
func OwnerKindGTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldOwnerKind, v))
}

// OwnerKindLT applies the LT predicate on the "owner_kind" field.
func OwnerKindLT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldOwnerKind, v))
}

// OwnerKindLTE applies the LTE predicate on the "owner_kind" field.
func OwnerKindLTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldOwnerKind, v))
}

// OwnerKindContains applies the Contains predicate on the "owner_kind" field.
func OwnerKindContains(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContains(FieldOwnerKind, v))
}

// OwnerKindHasPrefix applies the HasPrefix predicate on the "owner_kind" field.
func OwnerKindHasPrefix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasPrefix(FieldOwnerKind, v))
}

// OwnerKindHasSuffix applies the HasSuffix predicate on the "owner_kind" field.
func OwnerKindHasSuffix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasSuffix(FieldOwnerKind, v))
}

// OwnerKindEqualFold applies the EqualFold predicate on the "owner_kind" field.
func OwnerKindEqualFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEqualFold(FieldOwnerKind, v))
}

// OwnerKindContainsFold applies the ContainsFold predicate on the "owner_kind" field.
func OwnerKindContainsFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContainsFold(FieldOwnerKind, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldOwnerID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContainsFold(FieldKind, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContainsFold(FieldBody, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.TrackingEntry {
	return predicate.TrackingEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.TrackingEntry {
	return predicate.TrackingEntry(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrackingEntry) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrackingEntry) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrackingEntry) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.NotPredicates(p))
}
