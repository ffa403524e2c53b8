package ai

import "strings"

// buildSystemPrompt composes the system message with the output contract.
// The rules mirror what the extraction schema cannot express: JSON only,
// empty string for unknowns, ISO dates, tolerant policy-number handling.
func buildSystemPrompt() string {
	parts := []string{
		"You are an insurance policy document parser for Mexican insurance policies.",
		"Return ONLY a JSON object that matches the provided JSON Schema. No prose, no markdown fences.",
		"Use the empty string for unknown text fields and null for unknown beneficiary percentages. Never invent data.",
		"Use ISO-8601 calendar dates (YYYY-MM-DD).",
		"Policy numbers may be alphanumeric or hexadecimal; copy them exactly as printed.",
		"Names are split as first_name, middle_name, last_name (paterno), second_last_name (materno).",
		"RFC is the Mexican tax id; copy it uppercase without spaces.",
		"premium_total is a plain decimal string without currency symbols or thousands separators.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract the policy data from the following document text.\n\nJSON Schema:\n")
	b.WriteString(SchemaJSON())
	b.WriteString("\n\nDocument text:\n")
	b.WriteString(text)
	return b.String()
}
