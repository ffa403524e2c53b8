// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "rfc", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
	}
	// BeneficiariesColumns holds the columns for the "beneficiaries" table.
	BeneficiariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "percentage", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "policy_id", Type: field.TypeUUID},
	}
	// BeneficiariesTable holds the schema information for the "beneficiaries" table.
	BeneficiariesTable = &schema.Table{
		Name:       "beneficiaries",
		Columns:    BeneficiariesColumns,
		PrimaryKey: []*schema.Column{BeneficiariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "beneficiaries_policies_beneficiaries",
				Columns:    []*schema.Column{BeneficiariesColumns[3]},
				RefColumns: []*schema.Column{PoliciesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "beneficiary_policy_id",
				Unique:  false,
				Columns: []*schema.Column{BeneficiariesColumns[3]},
			},
		},
	}
	// ClientesColumns holds the columns for the "clientes" table.
	ClientesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "middle_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString},
		{Name: "second_last_name", Type: field.TypeString, Nullable: true},
		{Name: "rfc", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeUUID},
	}
	// ClientesTable holds the schema information for the "clientes" table.
	ClientesTable = &schema.Table{
		Name:       "clientes",
		Columns:    ClientesColumns,
		PrimaryKey: []*schema.Column{ClientesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clientes_agents_clients",
				Columns:    []*schema.Column{ClientesColumns[10]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cliente_agent_id_rfc",
				Unique:  false,
				Columns: []*schema.Column{ClientesColumns[10], ClientesColumns[5]},
			},
			{
				Name:    "cliente_agent_id_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{ClientesColumns[10], ClientesColumns[3], ClientesColumns[1]},
			},
		},
	}
	// CommissionLinesColumns holds the columns for the "commission_lines" table.
	CommissionLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "policy_number", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString, Nullable: true},
		{Name: "expected_amount", Type: field.TypeString, Default: "0", SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "paid_amount", Type: field.TypeString, Default: "0", SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "statement_id", Type: field.TypeUUID},
	}
	// CommissionLinesTable holds the schema information for the "commission_lines" table.
	CommissionLinesTable = &schema.Table{
		Name:       "commission_lines",
		Columns:    CommissionLinesColumns,
		PrimaryKey: []*schema.Column{CommissionLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commission_lines_commission_statements_lines",
				Columns:    []*schema.Column{CommissionLinesColumns[5]},
				RefColumns: []*schema.Column{CommissionStatementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commissionline_statement_id",
				Unique:  false,
				Columns: []*schema.Column{CommissionLinesColumns[5]},
			},
		},
	}
	// CommissionStatementsColumns holds the columns for the "commission_statements" table.
	CommissionStatementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "period", Type: field.TypeString, Size: 7},
		{Name: "expected_total", Type: field.TypeString, Default: "0", SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "paid_total", Type: field.TypeString, Default: "0", SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "status", Type: field.TypeString, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeUUID},
		{Name: "insurer_id", Type: field.TypeUUID},
	}
	// CommissionStatementsTable holds the schema information for the "commission_statements" table.
	CommissionStatementsTable = &schema.Table{
		Name:       "commission_statements",
		Columns:    CommissionStatementsColumns,
		PrimaryKey: []*schema.Column{CommissionStatementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commission_statements_agents_statements",
				Columns:    []*schema.Column{CommissionStatementsColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "commission_statements_insurers_statements",
				Columns:    []*schema.Column{CommissionStatementsColumns[8]},
				RefColumns: []*schema.Column{InsurersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commissionstatement_agent_id_insurer_id_period",
				Unique:  true,
				Columns: []*schema.Column{CommissionStatementsColumns[7], CommissionStatementsColumns[8], CommissionStatementsColumns[1]},
			},
		},
	}
	// InsurersColumns holds the columns for the "insurers" table.
	InsurersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// InsurersTable holds the schema information for the "insurers" table.
	InsurersTable = &schema.Table{
		Name:       "insurers",
		Columns:    InsurersColumns,
		PrimaryKey: []*schema.Column{InsurersColumns[0]},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "new"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeUUID},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_agents_leads",
				Columns:    []*schema.Column{LeadsColumns[8]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[8], LeadsColumns[5]},
			},
		},
	}
	// PolicyAiImportsColumns holds the columns for the "policy_ai_imports" table.
	PolicyAiImportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "storage_disk", Type: field.TypeString, Default: "local"},
		{Name: "file_path", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "processing_stage", Type: field.TypeString, Nullable: true},
		{Name: "processing_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ai_data", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_confidence", Type: field.TypeJSON, Nullable: true},
		{Name: "missing_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "took_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeUUID},
	}
	// PolicyAiImportsTable holds the schema information for the "policy_ai_imports" table.
	PolicyAiImportsTable = &schema.Table{
		Name:       "policy_ai_imports",
		Columns:    PolicyAiImportsColumns,
		PrimaryKey: []*schema.Column{PolicyAiImportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "policy_ai_imports_agents_imports",
				Columns:    []*schema.Column{PolicyAiImportsColumns[18]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "policyaiimport_agent_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PolicyAiImportsColumns[18], PolicyAiImportsColumns[6], PolicyAiImportsColumns[16]},
			},
			{
				Name:    "policyaiimport_status_processing_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{PolicyAiImportsColumns[6], PolicyAiImportsColumns[8]},
			},
		},
	}
	// PoliciesColumns holds the columns for the "policies" table.
	PoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "insured_client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "product_name", Type: field.TypeString, Nullable: true},
		{Name: "policy_number", Type: field.TypeString},
		{Name: "valid_from", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "valid_to", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "MXN", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "payment_frequency", Type: field.TypeString, Nullable: true},
		{Name: "premium_total", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "insurer_id", Type: field.TypeUUID},
	}
	// PoliciesTable holds the schema information for the "policies" table.
	PoliciesTable = &schema.Table{
		Name:       "policies",
		Columns:    PoliciesColumns,
		PrimaryKey: []*schema.Column{PoliciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "policies_agents_policies",
				Columns:    []*schema.Column{PoliciesColumns[12]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "policies_clientes_policies",
				Columns:    []*schema.Column{PoliciesColumns[13]},
				RefColumns: []*schema.Column{ClientesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "policies_insurers_policies",
				Columns:    []*schema.Column{PoliciesColumns[14]},
				RefColumns: []*schema.Column{InsurersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "poliza_agent_id_policy_number",
				Unique:  true,
				Columns: []*schema.Column{PoliciesColumns[12], PoliciesColumns[3]},
			},
			{
				Name:    "poliza_agent_id_valid_to",
				Unique:  false,
				Columns: []*schema.Column{PoliciesColumns[12], PoliciesColumns[5]},
			},
			{
				Name:    "poliza_client_id",
				Unique:  false,
				Columns: []*schema.Column{PoliciesColumns[13]},
			},
		},
	}
	// TrackingEntriesColumns holds the columns for the "tracking_entries" table.
	TrackingEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_kind", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString, Default: "note"},
		{Name: "body", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeUUID},
	}
	// TrackingEntriesTable holds the schema information for the "tracking_entries" table.
	TrackingEntriesTable = &schema.Table{
		Name:       "tracking_entries",
		Columns:    TrackingEntriesColumns,
		PrimaryKey: []*schema.Column{TrackingEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tracking_entries_agents_tracking_entries",
				Columns:    []*schema.Column{TrackingEntriesColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trackingentry_agent_id_owner_kind_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TrackingEntriesColumns[6], TrackingEntriesColumns[1], TrackingEntriesColumns[2], TrackingEntriesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		BeneficiariesTable,
		ClientesTable,
		CommissionLinesTable,
		CommissionStatementsTable,
		InsurersTable,
		LeadsTable,
		PolicyAiImportsTable,
		PoliciesTable,
		TrackingEntriesTable,
	}
)

func init() {
	AgentsTable.Annotation = &entsql.Annotation{
		Table: "agents",
	}
	BeneficiariesTable.ForeignKeys[0].RefTable = PoliciesTable
	BeneficiariesTable.Annotation = &entsql.Annotation{
		Table: "beneficiaries",
	}
	ClientesTable.ForeignKeys[0].RefTable = AgentsTable
	ClientesTable.Annotation = &entsql.Annotation{
		Table: "clientes",
	}
	CommissionLinesTable.ForeignKeys[0].RefTable = CommissionStatementsTable
	CommissionLinesTable.Annotation = &entsql.Annotation{
		Table: "commission_lines",
	}
	CommissionStatementsTable.ForeignKeys[0].RefTable = AgentsTable
	CommissionStatementsTable.ForeignKeys[1].RefTable = InsurersTable
	CommissionStatementsTable.Annotation = &entsql.Annotation{
		Table: "commission_statements",
	}
	InsurersTable.Annotation = &entsql.Annotation{
		Table: "insurers",
	}
	LeadsTable.ForeignKeys[0].RefTable = AgentsTable
	LeadsTable.Annotation = &entsql.Annotation{
		Table: "leads",
	}
	PolicyAiImportsTable.ForeignKeys[0].RefTable = AgentsTable
	PolicyAiImportsTable.Annotation = &entsql.Annotation{
		Table: "policy_ai_imports",
	}
	PoliciesTable.ForeignKeys[0].RefTable = AgentsTable
	PoliciesTable.ForeignKeys[1].RefTable = ClientesTable
	PoliciesTable.ForeignKeys[2].RefTable = InsurersTable
	PoliciesTable.Annotation = &entsql.Annotation{
		Table: "policies",
	}
	TrackingEntriesTable.ForeignKeys[0].RefTable = AgentsTable
	TrackingEntriesTable.Annotation = &entsql.Annotation{
		Table: "tracking_entries",
	}
}
