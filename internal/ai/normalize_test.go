package ai

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-mx/polizas-crm/internal/common"
)

func TestParseResponseStripsProseAndFences(t *testing.T) {
	raw := "Claro, aquí está el resultado:\n```json\n" +
		`{"contractor":{"first_name":"Ana","last_name":"García"},` +
		`"policy":{"policy_number":"POL-123"}}` +
		"\n```\nEspero que sirva."

	ex, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Ana", ex.Contractor.FirstName)
	assert.Equal(t, "García", ex.Contractor.LastName)
	assert.Equal(t, "POL-123", ex.Policy.PolicyNumber)
}

func TestParseResponseNoJSONObject(t *testing.T) {
	_, err := ParseResponse("lo siento, no puedo procesar este documento")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidAIResponse))
}

func TestParseResponseTruncatedJSON(t *testing.T) {
	_, err := ParseResponse(`{"contractor":{"first_name":"Ana"}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidAIResponse))
}

func TestNormalizeFillsEverySection(t *testing.T) {
	// model reply with most keys missing
	ex := Normalize(map[string]any{
		"policy": map[string]any{"policy_number": "  GNP-9 "},
	})

	assert.Equal(t, "GNP-9", ex.Policy.PolicyNumber)
	assert.Equal(t, "", ex.Contractor.FirstName)
	assert.Equal(t, "", ex.Insured.RFC)
	require.Len(t, ex.Beneficiaries, 1, "placeholder row expected")
	assert.Equal(t, "", ex.Beneficiaries[0].Name)
	assert.Nil(t, ex.Beneficiaries[0].Percentage)
}

func TestNormalizePercentageCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *float64
	}{
		{"number", 50.0, f(50)},
		{"numeric string", "33.3", f(33.3)},
		{"percent suffix", "25%", f(25)},
		{"null", nil, nil},
		{"empty string", "", nil},
		{"garbage", "N/A", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ex := Normalize(map[string]any{
				"beneficiaries": []any{map[string]any{"name": "Luis", "percentage": tc.in}},
			})
			require.Len(t, ex.Beneficiaries, 1)
			if tc.want == nil {
				assert.Nil(t, ex.Beneficiaries[0].Percentage)
			} else {
				require.NotNil(t, ex.Beneficiaries[0].Percentage)
				assert.InDelta(t, *tc.want, *ex.Beneficiaries[0].Percentage, 1e-9)
			}
		})
	}
}

// A normalized extraction must always re-serialize into a document the fixed
// schema accepts, whatever shape the model reply had.
func TestNormalizedOutputAlwaysValidatesAgainstSchema(t *testing.T) {
	replies := []string{
		`{}`,
		`{"contractor":null,"insured":null,"policy":null,"beneficiaries":null}`,
		`{"contractor":{"first_name":"Ana","rfc":"GAXA800101ABC"},"beneficiaries":[{"name":"Luis","percentage":"50%"},{"name":"Eva","percentage":null}]}`,
		`{"policy":{"premium_total":"12500.00","valid_from":"2026-01-01","valid_to":"2027-01-01"},"notes":"dos asegurados"}`,
	}
	for _, raw := range replies {
		ex, err := ParseResponse(raw)
		require.NoError(t, err, raw)
		b, err := ToJSON(ex)
		require.NoError(t, err, raw)

		var round Extraction
		require.NoError(t, json.Unmarshal(b, &round))
		assert.Equal(t, ex, round, "round trip must be lossless for %s", raw)
	}
}

func f(v float64) *float64 { return &v }
