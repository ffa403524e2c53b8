package ai

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Contractor is the person who contracted the policy.
type Contractor struct {
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"`
	SecondLastName string `json:"second_last_name"`
	RFC            string `json:"rfc"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// Insured is the covered person; often but not always the contractor.
type Insured struct {
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"`
	SecondLastName string `json:"second_last_name"`
	RFC            string `json:"rfc"`
}

// PolicyData holds the policy-level facts read off the document.
type PolicyData struct {
	InsurerName      string `json:"insurer_name"`
	ProductName      string `json:"product_name"`
	PolicyNumber     string `json:"policy_number"`
	ValidFrom        string `json:"valid_from"` // YYYY-MM-DD
	ValidTo          string `json:"valid_to"`   // YYYY-MM-DD
	Currency         string `json:"currency"`
	PaymentFrequency string `json:"payment_frequency"`
	PremiumTotal     string `json:"premium_total"`
}

// Beneficiary is one entry of the beneficiaries list. Percentage is nil
// when the document names a beneficiary without a share.
type Beneficiary struct {
	Name       string   `json:"name"`
	Percentage *float64 `json:"percentage"`
}

// Extraction is the fixed schema every AI response is normalized into.
// Every key is always present after normalization; callers never need to
// nil-check sub-objects.
type Extraction struct {
	Contractor    Contractor    `json:"contractor"`
	Insured       Insured       `json:"insured"`
	Policy        PolicyData    `json:"policy"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`
	Notes         string        `json:"notes"`
}

// extractionSchema is the fixed extraction contract, used both as the
// structured-output constraint sent to the model and to validate the
// normalized result locally.
const extractionSchema = `{
  "type": "object",
  "required": ["contractor", "insured", "policy", "beneficiaries", "notes"],
  "properties": {
    "contractor": {
      "type": "object",
      "required": ["first_name", "middle_name", "last_name", "second_last_name", "rfc", "email", "phone"],
      "properties": {
        "first_name": {"type": "string"},
        "middle_name": {"type": "string"},
        "last_name": {"type": "string"},
        "second_last_name": {"type": "string"},
        "rfc": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"}
      }
    },
    "insured": {
      "type": "object",
      "required": ["first_name", "middle_name", "last_name", "second_last_name", "rfc"],
      "properties": {
        "first_name": {"type": "string"},
        "middle_name": {"type": "string"},
        "last_name": {"type": "string"},
        "second_last_name": {"type": "string"},
        "rfc": {"type": "string"}
      }
    },
    "policy": {
      "type": "object",
      "required": ["insurer_name", "product_name", "policy_number", "valid_from", "valid_to", "currency", "payment_frequency", "premium_total"],
      "properties": {
        "insurer_name": {"type": "string"},
        "product_name": {"type": "string"},
        "policy_number": {"type": "string"},
        "valid_from": {"type": "string"},
        "valid_to": {"type": "string"},
        "currency": {"type": "string"},
        "payment_frequency": {"type": "string"},
        "premium_total": {"type": "string"}
      }
    },
    "beneficiaries": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "percentage"],
        "properties": {
          "name": {"type": "string"},
          "percentage": {"type": ["number", "null"]}
        }
      }
    },
    "notes": {"type": "string"}
  }
}`

var compiledSchema = jsonschema.MustCompileString("extraction.json", extractionSchema)

// ValidateNormalized checks a normalized extraction document against the
// fixed schema. Normalization guarantees conformance; this is the invariant
// check before the result is persisted as ai_data.
func ValidateNormalized(doc any) error {
	return compiledSchema.Validate(doc)
}

// SchemaJSON returns the extraction schema as sent to the model.
func SchemaJSON() string {
	return strings.TrimSpace(extractionSchema)
}
