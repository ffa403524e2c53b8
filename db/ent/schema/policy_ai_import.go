package schema

import (
	"encoding/json"
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

// PolicyAIImport is one uploaded policy document and its extraction
// lifecycle record (uploaded → processing → ready/needs_review/failed).
type PolicyAIImport struct{ ent.Schema }

func (PolicyAIImport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "policy_ai_imports"},
	}
}

func (PolicyAIImport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("agent_id", uuid.UUID{}),
		field.UUID("client_id", uuid.UUID{}).Optional().Nillable(),
		// source file reference
		field.String("storage_disk").Default("local"),
		field.String("file_path").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("mime_type").NotEmpty(),
		// lifecycle
		field.String("status").
			Default(string(constants.ImportStatusUploaded)).
			Validate(utils.EnumValidator(constants.ImportStatuses...)),
		field.String("processing_stage").Optional().Nillable(),
		field.Time("processing_heartbeat_at").Optional().Nillable(),
		field.Time("processing_ended_at").Optional().Nillable(),
		// extraction outputs
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("ai_data", json.RawMessage{}).Optional(),
		field.JSON("ai_confidence", json.RawMessage{}).Optional(),
		field.JSON("missing_fields", []string{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Int64("took_ms").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PolicyAIImport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("imports").
			Field("agent_id").
			Required().
			Unique(),
	}
}

func (PolicyAIImport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status", "created_at"),
		// the stuck-import sweep scans by status + heartbeat age
		index.Fields("status", "processing_heartbeat_at"),
	}
}
