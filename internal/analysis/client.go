package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/go-resty/resty/v2"
)

// AnalyzePath ruta del endpoint de análisis del backend
const AnalyzePath = "/api/analysis/analyze"

// Client cliente del API de análisis de ImpactLens
type Client struct {
	client *resty.Client
}

// NewClient crea un cliente del API de análisis. Un timeout de 0 deja las
// peticiones sin límite de tiempo.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{client: client}
}

// Analyze envía el ticket al API de análisis y devuelve el resultado.
// Cualquier status fuera de 2xx se considera error.
func (c *Client) Analyze(ctx context.Context, ticket Ticket) (Result, error) {
	body, err := json.Marshal(ticket)
	if err != nil {
		return nil, fmt.Errorf("error serializando ticket: %w", err)
	}

	clog.FromContext(ctx).Debugf("POST %s para ticket %s", AnalyzePath, ticket.ID())

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(AnalyzePath)
	if err != nil {
		return nil, fmt.Errorf("error llamando API de análisis: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("error en API de análisis (status %d): %s", resp.StatusCode(), resp.String())
	}

	var result Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("error parseando respuesta de análisis: %w", err)
	}

	return result, nil
}
