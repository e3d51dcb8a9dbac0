package evaluator

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrRunNotCreated el servicio no devolvió un run identificable, normalmente
// por una API key ausente o inválida
var ErrRunNotCreated = errors.New("run creation failed: check credentials (LANGCHAIN_API_KEY)")

// Criteria criterios con los que se puntúa cada análisis
var Criteria = []string{"clarity", "relevance", "actionability"}

// RunSpec metadatos fijos del run según la variante (en vivo o mock)
type RunSpec struct {
	Name    string
	RunType string // vacío en la variante en vivo
	Tags    []string
}

// RunRequest cuerpo de creación de run
type RunRequest struct {
	Name      string    `json:"name"`
	RunType   string    `json:"run_type,omitempty"`
	Inputs    any       `json:"inputs"`
	Outputs   any       `json:"outputs"`
	Tags      []string  `json:"tags"`
	StartTime time.Time `json:"start_time"`
}

// Run interacción registrada en el servicio de evaluación
type Run struct {
	ID string `json:"id"`
}

type evaluateRequest struct {
	Prompt   string   `json:"prompt"`
	Criteria []string `json:"criteria"`
}

// Score puntaje opaco devuelto por el servicio; se imprime tal cual
type Score json.RawMessage

func (s Score) String() string {
	return string(s)
}
