package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-bridge/internal/adapter"
	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/service"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
	"github.com/MKhiriev/voice-bridge/models"
)

const testSkillPath = "/alexa"

func testConfig(webhookURL string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{IntentName: "QueryIntent"},
		Server: config.Server{
			SkillPath:    testSkillPath,
			MaxBodyBytes: 4096,
		},
		Downstream: config.Downstream{
			WebhookURL: webhookURL,
			Timeout:    time.Second,
		},
	}
}

// newTestRouter builds the full router with real services. A nil downstream
// leaves the webhook url unset.
func newTestRouter(t *testing.T, v verifier.Verifier, downstream http.HandlerFunc, mutate func(*config.StructuredConfig)) http.Handler {
	t.Helper()

	var url string
	if downstream != nil {
		srv := httptest.NewServer(downstream)
		t.Cleanup(srv.Close)
		url = srv.URL
	}

	cfg := testConfig(url)
	if mutate != nil {
		mutate(&cfg)
	}

	webhook := adapter.NewWebhookAdapter(cfg.Downstream, logger.Nop())
	services, err := service.NewServices(webhook, cfg, "test-version", logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, v, cfg.Server, logger.Nop()).Init()
}

// newMockedRouter builds the router around the given services.
func newMockedRouter(services *service.Services, v verifier.Verifier) http.Handler {
	return NewHandler(services, v, testConfig("").Server, logger.Nop()).Init()
}

func postSkill(router http.Handler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, testSkillPath, bytes.NewBufferString(body))
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, body []byte) models.ResponseEnvelope {
	t.Helper()
	var envelope models.ResponseEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope), "body: %s", body)
	require.Equal(t, models.EnvelopeVersion, envelope.Version)
	return envelope
}

const launchBody = `{"version":"1.0","session":{"sessionId":"s-1","user":{"userId":"u-1"}},` +
	`"request":{"type":"LaunchRequest","requestId":"r-1","timestamp":"2026-01-01T00:00:00Z","locale":"en-US"}}`

func queryBody(query string) string {
	slots := map[string]any{}
	if query != "" {
		slots["query"] = map[string]string{"name": "query", "value": query}
	}
	b, _ := json.Marshal(map[string]any{
		"version": "1.0",
		"session": map[string]any{"sessionId": "s-1", "user": map[string]string{"userId": "u-1"}},
		"request": map[string]any{
			"type":      "IntentRequest",
			"requestId": "r-2",
			"timestamp": "2026-01-01T00:00:00Z",
			"locale":    "pt-BR",
			"intent":    map[string]any{"name": "QueryIntent", "slots": slots},
		},
	})
	return string(b)
}
