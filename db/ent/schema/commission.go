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

// CommissionStatement is one insurer statement period to reconcile against
// the agent's expected commissions.
type CommissionStatement struct{ ent.Schema }

func (CommissionStatement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "commission_statements"},
	}
}

func (CommissionStatement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("agent_id", uuid.UUID{}),
		field.UUID("insurer_id", uuid.UUID{}),
		field.String("period").NotEmpty().MinLen(7).MaxLen(7), // YYYY-MM
		field.String("expected_total").Default("0").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("paid_total").Default("0").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("status").
			Default(string(constants.StatementOpen)).
			Validate(utils.EnumValidator(constants.StatementStatuses...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CommissionStatement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("statements").
			Field("agent_id").
			Required().
			Unique(),
		edge.From("insurer", Insurer.Type).
			Ref("statements").
			Field("insurer_id").
			Required().
			Unique(),
		edge.To("lines", CommissionLine.Type),
	}
}

func (CommissionStatement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "insurer_id", "period").Unique(),
	}
}

// CommissionLine is one row of an insurer statement.
type CommissionLine struct{ ent.Schema }

func (CommissionLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "commission_lines"},
	}
}

func (CommissionLine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("statement_id", uuid.UUID{}),
		field.String("policy_number").NotEmpty(),
		field.String("concept").Optional(),
		field.String("expected_amount").Default("0").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("paid_amount").Default("0").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
	}
}

func (CommissionLine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("statement", CommissionStatement.Type).
			Ref("lines").
			Field("statement_id").
			Required().
			Unique(),
	}
}

func (CommissionLine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("statement_id"),
	}
}
