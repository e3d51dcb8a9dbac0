package evaluator

import (
	"strings"

	"github.com/PhelGc/impactlens-eval/internal/analysis"
)

const promptHeader = "Evaluate the following AI-generated analysis for clarity, relevance, and actionability.\n\n"

// promptLines etiqueta de cada línea y campo del reporte que interpola, en orden
var promptLines = []struct {
	label string
	field string
}{
	{"Analysis Summary", analysis.FieldSummary},
	{"Gaps", analysis.FieldGapsIdentified},
	{"Recommendations", analysis.FieldRecommendations},
	{"Regression Areas", analysis.FieldRegressionAreas},
	{"Related Tickets", analysis.FieldRelatedTickets},
}

// BuildPrompt arma el prompt de evaluación a partir del reporte del análisis.
// Los campos ausentes quedan vacíos; misma entrada produce siempre el mismo prompt.
func BuildPrompt(result analysis.Result) string {
	report := result.Report()

	var sb strings.Builder
	sb.WriteString(promptHeader)
	for _, line := range promptLines {
		sb.WriteString(line.label)
		sb.WriteString(": ")
		sb.WriteString(report.Field(line.field))
		sb.WriteString("\n")
	}
	return sb.String()
}
