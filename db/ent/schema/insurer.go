package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Insurer is a catalog table shared across tenants.
type Insurer struct{ ent.Schema }

func (Insurer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "insurers"},
	}
}

func (Insurer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("active").Default(true),
	}
}

func (Insurer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("policies", Poliza.Type),
		edge.To("statements", CommissionStatement.Type),
	}
}
