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
)

type Poliza struct{ ent.Schema }

func (Poliza) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "policies"},
	}
}

func (Poliza) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("agent_id", uuid.UUID{}),
		field.UUID("client_id", uuid.UUID{}),
		// insured may differ from the contracting client
		field.UUID("insured_client_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("insurer_id", uuid.UUID{}),
		field.String("product_name").Optional().Nillable(),
		field.String("policy_number").NotEmpty(),
		field.Time("valid_from").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("valid_to").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("currency").Default("MXN").MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("payment_frequency").Optional().Nillable(),
		// decimal string to avoid float drift; parsed with shopspring/decimal
		field.String("premium_total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("status").Default("active"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Poliza) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("policies").
			Field("agent_id").
			Required().
			Unique(),
		edge.From("client", Cliente.Type).
			Ref("policies").
			Field("client_id").
			Required().
			Unique(),
		edge.From("insurer", Insurer.Type).
			Ref("policies").
			Field("insurer_id").
			Required().
			Unique(),
		edge.To("beneficiaries", Beneficiary.Type),
	}
}

func (Poliza) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "policy_number").Unique(),
		index.Fields("agent_id", "valid_to"),
		index.Fields("client_id"),
	}
}
