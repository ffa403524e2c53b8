package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Beneficiary struct{ ent.Schema }

func (Beneficiary) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "beneficiaries"},
	}
}

func (Beneficiary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("policy_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// nullable: an extracted beneficiary may arrive without a share
		field.Float("percentage").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
	}
}

func (Beneficiary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("policy", Poliza.Type).
			Ref("beneficiaries").
			Field("policy_id").
			Required().
			Unique(),
	}
}

func (Beneficiary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("policy_id"),
	}
}
