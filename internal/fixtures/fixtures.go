// Package fixtures carga los archivos JSON de prueba: tickets para la
// variante en vivo y respuestas pregrabadas para la variante mock.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PhelGc/impactlens-eval/internal/analysis"
)

// LoadTickets lee un arreglo JSON de tickets. Cada ticket debe tener ticketId.
func LoadTickets(path string) ([]analysis.Ticket, error) {
	var tickets []analysis.Ticket
	if err := readJSON(path, &tickets); err != nil {
		return nil, err
	}

	for i, ticket := range tickets {
		if ticket == nil {
			return nil, fmt.Errorf("%s: elemento %d no es un objeto", path, i)
		}
		if ticket.ID() == "" {
			return nil, fmt.Errorf("%s: elemento %d sin ticketId", path, i)
		}
	}

	return tickets, nil
}

// LoadMockEntries lee un arreglo JSON de pares {ticketId, response}
func LoadMockEntries(path string) ([]analysis.MockEntry, error) {
	var entries []analysis.MockEntry
	if err := readJSON(path, &entries); err != nil {
		return nil, err
	}

	for i, entry := range entries {
		if entry.ID() == "" {
			return nil, fmt.Errorf("%s: elemento %d sin ticketId", path, i)
		}
		if entry.Response == nil {
			return nil, fmt.Errorf("%s: elemento %d (%s) sin response", path, i, entry.ID())
		}
	}

	return entries, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("no se pudo leer %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("JSON inválido en %s: %w", path, err)
	}

	return nil
}
