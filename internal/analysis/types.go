package analysis

import (
	"bytes"
	"encoding/json"
)

// Campos del reporte que se incluyen en el prompt de evaluación
const (
	FieldSummary         = "summary"
	FieldGapsIdentified  = "gapsIdentified"
	FieldRecommendations = "recommendations"
	FieldRegressionAreas = "regressionAreas"
	FieldRelatedTickets  = "relatedTickets"
)

// Ticket representa un ticket de prueba. Los campos se conservan como JSON
// crudo para reenviarlos sin modificar al API de análisis.
type Ticket map[string]json.RawMessage

// ID devuelve el ticketId del ticket listo para imprimir
func (t Ticket) ID() string {
	return renderID(t["ticketId"])
}

// Result es la respuesta completa del API de análisis. Se conserva tal cual
// para enviarla como outputs del run.
type Result map[string]json.RawMessage

// Report devuelve el objeto report del resultado. Si falta o no es un objeto
// se devuelve un reporte vacío.
func (r Result) Report() Report {
	raw, ok := r["report"]
	if !ok {
		return Report{}
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil || report == nil {
		return Report{}
	}
	return report
}

// Report reporte generado por el análisis (summary, gaps, recomendaciones, etc.)
type Report map[string]json.RawMessage

// Field devuelve el campo como texto. Campos ausentes o null quedan vacíos,
// los strings se devuelven sin comillas y cualquier otro valor como JSON compacto.
func (r Report) Field(name string) string {
	raw, ok := r[name]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// MockEntry par ticketId + respuesta pregrabada del análisis
type MockEntry struct {
	TicketID json.RawMessage `json:"ticketId"`
	Response Result          `json:"response"`
}

// ID devuelve el ticketId de la entrada listo para imprimir
func (m MockEntry) ID() string {
	return renderID(m.TicketID)
}

// renderID imprime strings sin comillas y números como su literal JSON
func renderID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
