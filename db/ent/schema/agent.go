package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Agent is the tenant. Every business row carries an explicit agent_id;
// there is no ambient "current agent" anywhere in the codebase.
type Agent struct{ ent.Schema }

func (Agent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agents"},
	}
}

func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.String("rfc").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("clients", Cliente.Type),
		edge.To("leads", Lead.Type),
		edge.To("policies", Poliza.Type),
		edge.To("imports", PolicyAIImport.Type),
		edge.To("tracking_entries", TrackingEntry.Type),
		edge.To("statements", CommissionStatement.Type),
	}
}
