package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Lead struct{ ent.Schema }

func (Lead) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "leads"},
	}
}

func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("agent_id", uuid.UUID{}),
		field.String("full_name").NotEmpty(),
		field.String("phone").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("source").Optional().Nillable(),
		field.String("status").Default("new"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("leads").
			Field("agent_id").
			Required().
			Unique(),
	}
}

func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status"),
	}
}
