package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/db/ent/schema/utils"
)

// TrackingEntry is one activity-log row. owner_kind + owner_id point at a
// lead, client or policy; validity is checked in the tracking service
// through an explicit per-kind existence lookup, not a DB constraint.
type TrackingEntry struct{ ent.Schema }

func (TrackingEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tracking_entries"},
	}
}

func (TrackingEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("agent_id", uuid.UUID{}),
		field.String("owner_kind").
			Validate(utils.EnumValidator(constants.TrackingOwnerKinds...)),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("kind").Default("note"),
		field.String("body").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (TrackingEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("tracking_entries").
			Field("agent_id").
			Required().
			Unique(),
	}
}

func (TrackingEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "owner_kind", "owner_id", "created_at"),
	}
}
