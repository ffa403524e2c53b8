// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
)

// PolicyAIImport is the model entity for the PolicyAIImport schema.
type PolicyAIImport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID uuid.UUID `json:"agent_id,omitempty"`
	// ClientID holds the value of the "client_id" field.
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	// StorageDisk holds the value of the "storage_disk" field.
	StorageDisk string `json:"storage_disk,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ProcessingStage holds the value of the "processing_stage" field.
	ProcessingStage *string `json:"processing_stage,omitempty"`
	// ProcessingHeartbeatAt holds the value of the "processing_heartbeat_at" field.
	ProcessingHeartbeatAt *time.Time `json:"processing_heartbeat_at,omitempty"`
	// ProcessingEndedAt holds the value of the "processing_ended_at" field.
	ProcessingEndedAt *time.Time `json:"processing_ended_at,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// AiData holds the value of the "ai_data" field.
	AiData json.RawMessage `json:"ai_data,omitempty"`
	// AiConfidence holds the value of the "ai_confidence" field.
	AiConfidence json.RawMessage `json:"ai_confidence,omitempty"`
	// MissingFields holds the value of the "missing_fields" field.
	MissingFields []string `json:"missing_fields,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// TookMs holds the value of the "took_ms" field.
	TookMs *int64 `json:"took_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PolicyAIImportQuery when eager-loading is set.
	Edges        PolicyAIImportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PolicyAIImportEdges holds the relations/edges for other nodes in the graph.
type PolicyAIImportEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolicyAIImportEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PolicyAIImport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case policyaiimport.FieldClientID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case policyaiimport.FieldAiData, policyaiimport.FieldAiConfidence, policyaiimport.FieldMissingFields:
			values[i] = new([]byte)
		case policyaiimport.FieldTookMs:
			values[i] = new(sql.NullInt64)
		case policyaiimport.FieldStorageDisk, policyaiimport.FieldFilePath, policyaiimport.FieldOriginalFilename, policyaiimport.FieldMimeType, policyaiimport.FieldStatus, policyaiimport.FieldProcessingStage, policyaiimport.FieldExtractedText, policyaiimport.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case policyaiimport.FieldProcessingHeartbeatAt, policyaiimport.FieldProcessingEndedAt, policyaiimport.FieldCreatedAt, policyaiimport.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case policyaiimport.FieldID, policyaiimport.FieldAgentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PolicyAIImport fields.
func (_m *PolicyAIImport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case policyaiimport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case policyaiimport.FieldAgentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value != nil {
				_m.AgentID = *value
			}
		case policyaiimport.FieldClientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = new(uuid.UUID)
				*_m.ClientID = *value.S.(*uuid.UUID)
			}
		case policyaiimport.FieldStorageDisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_disk", values[i])
			} else if value.Valid {
				_m.StorageDisk = value.String
			}
		case policyaiimport.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case policyaiimport.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case policyaiimport.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case policyaiimport.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case policyaiimport.FieldProcessingStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_stage", values[i])
			} else if value.Valid {
				_m.ProcessingStage = new(string)
				*_m.ProcessingStage = value.String
			}
		case policyaiimport.FieldProcessingHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processing_heartbeat_at", values[i])
			} else if value.Valid {
				_m.ProcessingHeartbeatAt = new(time.Time)
				*_m.ProcessingHeartbeatAt = value.Time
			}
		case policyaiimport.FieldProcessingEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processing_ended_at", values[i])
			} else if value.Valid {
				_m.ProcessingEndedAt = new(time.Time)
				*_m.ProcessingEndedAt = value.Time
			}
		case policyaiimport.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case policyaiimport.FieldAiData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AiData); err != nil {
					return fmt.Errorf("unmarshal field ai_data: %w", err)
				}
			}
		case policyaiimport.FieldAiConfidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_confidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AiConfidence); err != nil {
					return fmt.Errorf("unmarshal field ai_confidence: %w", err)
				}
			}
		case policyaiimport.FieldMissingFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field missing_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MissingFields); err != nil {
					return fmt.Errorf("unmarshal field missing_fields: %w", err)
				}
			}
		case policyaiimport.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case policyaiimport.FieldTookMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field took_ms", values[i])
			} else if value.Valid {
				_m.TookMs = new(int64)
				*_m.TookMs = value.Int64
			}
		case policyaiimport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case policyaiimport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PolicyAIImport.
// This includes values selected through modifiers, order, etc.
func (_m *PolicyAIImport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the PolicyAIImport entity.
func (_m *PolicyAIImport) QueryAgent() *AgentQuery {
	return NewPolicyAIImportClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this PolicyAIImport.
// Note that you need to call PolicyAIImport.Unwrap() before calling this method if this PolicyAIImport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PolicyAIImport) Update() *PolicyAIImportUpdateOne {
	return NewPolicyAIImportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PolicyAIImport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PolicyAIImport) Unwrap() *PolicyAIImport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PolicyAIImport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PolicyAIImport) String() string {
	var builder strings.Builder
	builder.WriteString("PolicyAIImport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	if v := _m.ClientID; v != nil {
		builder.WriteString("client_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("storage_disk=")
	builder.WriteString(_m.StorageDisk)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ProcessingStage; v != nil {
		builder.WriteString("processing_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProcessingHeartbeatAt; v != nil {
		builder.WriteString("processing_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingEndedAt; v != nil {
		builder.WriteString("processing_ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ai_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiData))
	builder.WriteString(", ")
	builder.WriteString("ai_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiConfidence))
	builder.WriteString(", ")
	builder.WriteString("missing_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissingFields))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TookMs; v != nil {
		builder.WriteString("took_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PolicyAIImports is a parsable slice of PolicyAIImport.
type PolicyAIImports []*PolicyAIImport
