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

// Cliente is a client of an agent. Named in Spanish because "Client" is a
// reserved type name in Ent's generated API.
type Cliente struct{ ent.Schema }

func (Cliente) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "clientes"},
	}
}

func (Cliente) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define composite indexes
		field.UUID("agent_id", uuid.UUID{}),
		field.String("first_name").NotEmpty(),
		field.String("middle_name").Optional().Nillable(),
		field.String("last_name").NotEmpty(),
		field.String("second_last_name").Optional().Nillable(),
		field.String("rfc").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Cliente) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("clients").
			Field("agent_id").
			Required().
			Unique(),
		edge.To("policies", Poliza.Type),
	}
}

func (Cliente) Indexes() []ent.Index {
	return []ent.Index{
		// RFC match lookups are scoped per tenant
		index.Fields("agent_id", "rfc"),
		index.Fields("agent_id", "last_name", "first_name"),
	}
}
