package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/insurtech-mx/polizas-crm/internal/common"
)

// ParseResponse locates the JSON object inside a raw model reply and
// normalizes it into the fixed extraction schema. Models occasionally wrap
// the object in prose or code fences; everything outside the first '{' and
// the last '}' is ignored.
func ParseResponse(raw string) (Extraction, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return Extraction{}, fmt.Errorf("%w: no JSON object in reply", common.ErrInvalidAIResponse)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &doc); err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", common.ErrInvalidAIResponse, err)
	}
	return Normalize(doc), nil
}

// Normalize merges a decoded AI reply over the fully-keyed template. Keys
// the model omitted come out as empty strings; beneficiaries always hold at
// least one entry so the wizard has a row to render.
func Normalize(doc map[string]any) Extraction {
	var out Extraction

	if m, ok := doc["contractor"].(map[string]any); ok {
		out.Contractor = Contractor{
			FirstName:      str(m, "first_name"),
			MiddleName:     str(m, "middle_name"),
			LastName:       str(m, "last_name"),
			SecondLastName: str(m, "second_last_name"),
			RFC:            str(m, "rfc"),
			Email:          str(m, "email"),
			Phone:          str(m, "phone"),
		}
	}
	if m, ok := doc["insured"].(map[string]any); ok {
		out.Insured = Insured{
			FirstName:      str(m, "first_name"),
			MiddleName:     str(m, "middle_name"),
			LastName:       str(m, "last_name"),
			SecondLastName: str(m, "second_last_name"),
			RFC:            str(m, "rfc"),
		}
	}
	if m, ok := doc["policy"].(map[string]any); ok {
		out.Policy = PolicyData{
			InsurerName:      str(m, "insurer_name"),
			ProductName:      str(m, "product_name"),
			PolicyNumber:     str(m, "policy_number"),
			ValidFrom:        str(m, "valid_from"),
			ValidTo:          str(m, "valid_to"),
			Currency:         str(m, "currency"),
			PaymentFrequency: str(m, "payment_frequency"),
			PremiumTotal:     str(m, "premium_total"),
		}
	}

	if list, ok := doc["beneficiaries"].([]any); ok {
		for _, it := range list {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			out.Beneficiaries = append(out.Beneficiaries, Beneficiary{
				Name:       str(m, "name"),
				Percentage: pct(m["percentage"]),
			})
		}
	}
	if len(out.Beneficiaries) == 0 {
		// one empty placeholder row
		out.Beneficiaries = []Beneficiary{{}}
	}

	out.Notes = str(doc, "notes")
	return out
}

// ToJSON marshals a normalized extraction and re-checks it against the
// fixed schema, so nothing non-conformant ever reaches ai_data.
func ToJSON(ex Extraction) (json.RawMessage, error) {
	b, err := json.Marshal(ex)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if err := ValidateNormalized(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidAIResponse, err)
	}
	return b, nil
}

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// pct coerces a percentage value to *float64, mapping anything non-numeric
// (null, "", "N/A") to nil.
func pct(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "%"))
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}
