package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PhelGc/impactlens-eval/internal/analysis"
	"github.com/PhelGc/impactlens-eval/internal/config"
	"github.com/PhelGc/impactlens-eval/internal/logging"
	"github.com/PhelGc/impactlens-eval/internal/pipeline"
)

func TestRun(t *testing.T) {
	var keys []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("x-api-key"))
		if r.URL.Path == "/runs" {
			fmt.Fprint(w, `{"id": "r1"}`)
			return
		}
		fmt.Fprint(w, `{"score": 4}`)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.LangSmith.Endpoint = srv.URL
	cfg.LangSmith.APIKey = "lsv2_env"

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), &logs, "info")

	fixtures := pipeline.FromMockEntries([]analysis.MockEntry{
		{TicketID: []byte(`"T-1"`), Response: analysis.Result{}},
	})

	var out bytes.Buffer
	summary := Run(ctx, cfg, pipeline.Mock(), pipeline.MockProducer{}, fixtures, &out)

	assert.Equal(t, pipeline.Summary{Scored: 1}, summary)
	assert.Equal(t, "\nEvaluating mock ticket: T-1\nEvaluation Score: {\"score\": 4}\n", out.String())
	assert.Equal(t, []string{"lsv2_env", "lsv2_env"}, keys)
	assert.Contains(t, logs.String(), "Evaluación completada")
}

func TestRunWarnsWithoutAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.LangSmith.Endpoint = srv.URL

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), &logs, "info")

	fixtures := pipeline.FromMockEntries([]analysis.MockEntry{
		{TicketID: []byte(`"T-1"`), Response: analysis.Result{}},
	})

	var out bytes.Buffer
	summary := Run(ctx, cfg, pipeline.Mock(), pipeline.MockProducer{}, fixtures, &out)

	assert.Equal(t, pipeline.Summary{Failed: 1}, summary)
	assert.Contains(t, logs.String(), "LANGCHAIN_API_KEY")
	assert.Contains(t, out.String(), "Error evaluating ticket T-1: run creation failed")
}
