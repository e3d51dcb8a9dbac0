package evaluator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhelGc/impactlens-eval/internal/analysis"
)

func parseResult(t *testing.T, raw string) analysis.Result {
	t.Helper()
	var result analysis.Result
	require.NoError(t, json.Unmarshal([]byte(raw), &result))
	return result
}

func TestBuildPrompt(t *testing.T) {
	result := parseResult(t, `{"report": {
		"summary": "Cambio en autenticación",
		"gapsIdentified": [{"category": "Testing"}],
		"recommendations": ["Agregar tests"],
		"regressionAreas": [{"area": "Login"}],
		"relatedTickets": [{"ticketKey": "PROJ-2"}]
	}}`)

	want := "Evaluate the following AI-generated analysis for clarity, relevance, and actionability.\n\n" +
		"Analysis Summary: Cambio en autenticación\n" +
		"Gaps: [{\"category\":\"Testing\"}]\n" +
		"Recommendations: [\"Agregar tests\"]\n" +
		"Regression Areas: [{\"area\":\"Login\"}]\n" +
		"Related Tickets: [{\"ticketKey\":\"PROJ-2\"}]\n"

	if diff := cmp.Diff(want, BuildPrompt(result)); diff != "" {
		t.Errorf("BuildPrompt() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPromptMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty report", raw: `{"report": {}}`},
		{name: "no report", raw: `{}`},
		{name: "null fields", raw: `{"report": {"summary": null, "gapsIdentified": null}}`},
		{name: "nil result", raw: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(parseResult(t, tt.raw))
			for _, line := range []string{
				"\nAnalysis Summary: \n",
				"\nGaps: \n",
				"\nRecommendations: \n",
				"\nRegression Areas: \n",
				"\nRelated Tickets: \n",
			} {
				assert.Contains(t, prompt, line)
			}
		})
	}
}

func TestBuildPromptMockScenario(t *testing.T) {
	prompt := BuildPrompt(parseResult(t, `{"report": {"summary": "ok", "gapsIdentified": "none"}}`))

	lines := strings.Split(strings.TrimSuffix(prompt, "\n"), "\n")
	want := []string{
		"Evaluate the following AI-generated analysis for clarity, relevance, and actionability.",
		"",
		"Analysis Summary: ok",
		"Gaps: none",
		"Recommendations: ",
		"Regression Areas: ",
		"Related Tickets: ",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("prompt lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	result := parseResult(t, `{"report": {
		"summary": "s",
		"gapsIdentified": [{"severity": "High", "category": "Docs", "suggestions": ["a", "b"]}],
		"relatedTickets": {"b": 1, "a": 2}
	}}`)

	first := BuildPrompt(result)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, BuildPrompt(result))
	}
}
