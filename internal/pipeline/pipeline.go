// Package pipeline ejecuta la evaluación ticket por ticket: obtiene el
// resultado del análisis, lo puntúa con el servicio de evaluación e imprime
// el puntaje o el error. Un ticket fallido nunca detiene el recorrido.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chainguard-dev/clog"

	"github.com/PhelGc/impactlens-eval/internal/analysis"
	"github.com/PhelGc/impactlens-eval/internal/evaluator"
)

// Fixture un elemento a evaluar, cargado desde el archivo de prueba
type Fixture struct {
	TicketID string
	// Ticket payload enviado al API de análisis (variante en vivo)
	Ticket   analysis.Ticket
	// Recorded respuesta pregrabada (variante mock)
	Recorded analysis.Result
	// Inputs lo que se registra como inputs del run
	Inputs   any
}

// FromTickets arma los fixtures de la variante en vivo; el ticket completo va como inputs
func FromTickets(tickets []analysis.Ticket) []Fixture {
	fixtures := make([]Fixture, 0, len(tickets))
	for _, ticket := range tickets {
		fixtures = append(fixtures, Fixture{
			TicketID: ticket.ID(),
			Ticket:   ticket,
			Inputs:   ticket,
		})
	}
	return fixtures
}

// FromMockEntries arma los fixtures de la variante mock; solo {ticketId} va como inputs
func FromMockEntries(entries []analysis.MockEntry) []Fixture {
	fixtures := make([]Fixture, 0, len(entries))
	for _, entry := range entries {
		fixtures = append(fixtures, Fixture{
			TicketID: entry.ID(),
			Recorded: entry.Response,
			Inputs:   analysis.Ticket{"ticketId": entry.TicketID},
		})
	}
	return fixtures
}

// Producer obtiene el resultado del análisis para un fixture
type Producer interface {
	Produce(ctx context.Context, f Fixture) (analysis.Result, error)
}

// Analyzer lo que LiveProducer necesita del cliente del API de análisis
type Analyzer interface {
	Analyze(ctx context.Context, ticket analysis.Ticket) (analysis.Result, error)
}

// LiveProducer pide el análisis al backend por HTTP
type LiveProducer struct {
	Analyzer Analyzer
}

func (p LiveProducer) Produce(ctx context.Context, f Fixture) (analysis.Result, error) {
	return p.Analyzer.Analyze(ctx, f.Ticket)
}

// MockProducer devuelve la respuesta pregrabada del fixture
type MockProducer struct{}

var errNoRecordedResponse = errors.New("fixture sin respuesta pregrabada")

func (MockProducer) Produce(_ context.Context, f Fixture) (analysis.Result, error) {
	if f.Recorded == nil {
		return nil, errNoRecordedResponse
	}
	return f.Recorded, nil
}

// Scorer puntúa un resultado contra el servicio de evaluación
type Scorer interface {
	EvaluateAnalysis(ctx context.Context, spec evaluator.RunSpec, inputs any, result analysis.Result) (evaluator.Score, error)
}

// Outcome resultado de la evaluación de un ticket
type Outcome struct {
	TicketID string
	Score    evaluator.Score
	Err      error
}

// Notifier recibe el resultado de cada ticket (por ejemplo, Discord).
// Sus errores se registran en el log y no afectan el recorrido.
type Notifier interface {
	Notify(ctx context.Context, runName string, outcome Outcome) error
}

// Variant diferencias entre la evaluación en vivo y la mock
type Variant struct {
	Banner string
	Run    evaluator.RunSpec
}

// Live variante que consulta el API de análisis
func Live() Variant {
	return Variant{
		Banner: "Evaluating ticket",
		Run: evaluator.RunSpec{
			Name: "ImpactLens Output Quality Test",
			Tags: []string{"output-quality"},
		},
	}
}

// Mock variante que usa respuestas pregrabadas
func Mock() Variant {
	return Variant{
		Banner: "Evaluating mock ticket",
		Run: evaluator.RunSpec{
			Name:    "ImpactLens Output Quality Test (Mock)",
			RunType: "tool",
			Tags:    []string{"output-quality", "mock"},
		},
	}
}

// Summary conteo de tickets puntuados y fallidos
type Summary struct {
	Scored int
	Failed int
}

// Runner recorre los fixtures en orden y evalúa cada uno
type Runner struct {
	variant  Variant
	producer Producer
	scorer   Scorer
	notifier Notifier
	out      io.Writer
}

// NewRunner crea un Runner; notifier puede ser nil
func NewRunner(variant Variant, producer Producer, scorer Scorer, notifier Notifier, out io.Writer) *Runner {
	return &Runner{
		variant:  variant,
		producer: producer,
		scorer:   scorer,
		notifier: notifier,
		out:      out,
	}
}

// Run evalúa todos los fixtures en el orden del archivo. Los errores de cada
// ticket se imprimen y se continúa con el siguiente; no hay reintentos.
func (r *Runner) Run(ctx context.Context, fixtures []Fixture) Summary {
	var summary Summary

	for _, f := range fixtures {
		fmt.Fprintf(r.out, "\n%s: %s\n", r.variant.Banner, f.TicketID)

		outcome := r.evaluate(ctx, f)
		if outcome.Err != nil {
			fmt.Fprintf(r.out, "Error evaluating ticket %s: %v\n", f.TicketID, outcome.Err)
			clog.FromContext(ctx).With("ticket", f.TicketID).Warnf("evaluación fallida: %v", outcome.Err)
			summary.Failed++
		} else {
			fmt.Fprintf(r.out, "Evaluation Score: %s\n", outcome.Score)
			summary.Scored++
		}

		if r.notifier != nil {
			if err := r.notifier.Notify(ctx, r.variant.Run.Name, outcome); err != nil {
				clog.FromContext(ctx).With("ticket", f.TicketID).Warnf("error notificando resultado: %v", err)
			}
		}
	}

	return summary
}

func (r *Runner) evaluate(ctx context.Context, f Fixture) Outcome {
	outcome := Outcome{TicketID: f.TicketID}

	result, err := r.producer.Produce(ctx, f)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Score, outcome.Err = r.scorer.EvaluateAnalysis(ctx, r.variant.Run, f.Inputs, result)
	return outcome
}
