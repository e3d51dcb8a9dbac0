package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/go-resty/resty/v2"

	"github.com/PhelGc/impactlens-eval/internal/analysis"
)

// Client realiza llamadas al servicio de evaluación (API REST estilo LangSmith)
type Client struct {
	client *resty.Client
	now    func() time.Time
}

// NewClient crea un cliente del servicio de evaluación. La API key se envía
// en el header x-api-key; nunca se embebe en el código.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader("x-api-key", apiKey)
	}

	return &Client{client: client, now: time.Now}
}

// EvaluateAnalysis registra el run del ticket y pide su puntaje.
// Cada llamada crea un run nuevo en el servicio.
func (c *Client) EvaluateAnalysis(ctx context.Context, spec RunSpec, inputs any, result analysis.Result) (Score, error) {
	prompt := BuildPrompt(result)

	run, err := c.CreateRun(ctx, RunRequest{
		Name:    spec.Name,
		RunType: spec.RunType,
		Inputs:  inputs,
		Outputs: result,
		Tags:    spec.Tags,
	})
	if err != nil {
		return nil, err
	}

	clog.FromContext(ctx).With("run_id", run.ID).Debugf("run creado: %s", spec.Name)

	return c.Evaluate(ctx, run.ID, prompt, Criteria)
}

// CreateRun registra una interacción (inputs/outputs/tags) en el servicio.
// Si el servicio rechaza la autenticación o no devuelve id se reporta ErrRunNotCreated.
func (c *Client) CreateRun(ctx context.Context, req RunRequest) (*Run, error) {
	if req.StartTime.IsZero() {
		req.StartTime = c.now().UTC()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error serializando run: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/runs")
	if err != nil {
		return nil, fmt.Errorf("error llamando servicio de evaluación: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized, resp.StatusCode() == http.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d)", ErrRunNotCreated, resp.StatusCode())
	case !resp.IsSuccess():
		return nil, fmt.Errorf("error creando run (status %d): %s", resp.StatusCode(), resp.String())
	}

	var run Run
	if len(strings.TrimSpace(resp.String())) > 0 {
		if err := json.Unmarshal(resp.Body(), &run); err != nil {
			return nil, fmt.Errorf("%w: respuesta no reconocida: %v", ErrRunNotCreated, err)
		}
	}
	if strings.TrimSpace(run.ID) == "" {
		return nil, ErrRunNotCreated
	}

	return &run, nil
}

// Evaluate pide el puntaje del run con el prompt y los criterios dados
func (c *Client) Evaluate(ctx context.Context, runID, prompt string, criteria []string) (Score, error) {
	body, err := json.Marshal(evaluateRequest{Prompt: prompt, Criteria: criteria})
	if err != nil {
		return nil, fmt.Errorf("error serializando evaluación: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/runs/" + url.PathEscape(runID) + "/evaluate")
	if err != nil {
		return nil, fmt.Errorf("error llamando servicio de evaluación: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("error evaluando run %s (status %d): %s", runID, resp.StatusCode(), resp.String())
	}

	return Score(bytes.TrimSpace(resp.Body())), nil
}
