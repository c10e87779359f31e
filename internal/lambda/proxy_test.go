package lambda

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-bridge/internal/adapter"
	"github.com/MKhiriev/voice-bridge/internal/config"
	httpHandler "github.com/MKhiriev/voice-bridge/internal/handler/http"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/service"
	"github.com/MKhiriev/voice-bridge/internal/speech"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
	"github.com/MKhiriev/voice-bridge/models"
)

const launchBody = `{"version":"1.0","request":{"type":"LaunchRequest","locale":"en-US"}}`

func newTestProxy(t *testing.T, downstream http.HandlerFunc) *Proxy {
	t.Helper()

	cfg := config.StructuredConfig{
		App:    config.App{IntentName: "QueryIntent"},
		Server: config.Server{SkillPath: "/alexa", MaxBodyBytes: 4096},
	}
	if downstream != nil {
		srv := httptest.NewServer(downstream)
		t.Cleanup(srv.Close)
		cfg.Downstream.WebhookURL = srv.URL
	}

	services, err := service.NewServices(adapter.NewWebhookAdapter(cfg.Downstream, logger.Nop()), cfg, "9.9.9", logger.Nop())
	require.NoError(t, err)

	router := httpHandler.NewHandler(services, verifier.Nop{}, cfg.Server, logger.Nop()).Init()
	return NewProxy(router, logger.Nop())
}

func decodeEnvelope(t *testing.T, body string) models.ResponseEnvelope {
	t.Helper()
	var envelope models.ResponseEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope
}

func TestProxy_Launch(t *testing.T) {
	p := newTestProxy(t, nil)

	resp, err := p.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/alexa",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       launchBody,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, resp.IsBase64Encoded)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, speech.Launch(speech.For("en-US")), decodeEnvelope(t, resp.Body))
}

func TestProxy_Base64Body(t *testing.T) {
	p := newTestProxy(t, nil)

	resp, err := p.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/alexa",
		Body:            base64.StdEncoding.EncodeToString([]byte(launchBody)),
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeEnvelope(t, resp.Body).Response.ShouldEndSession)
}

func TestProxy_InvalidBase64(t *testing.T) {
	p := newTestProxy(t, nil)

	resp, err := p.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/alexa",
		Body:            "%%%not base64",
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, speech.InvalidRequest(speech.For("")), decodeEnvelope(t, resp.Body))
}

func TestProxy_MethodNotAllowed(t *testing.T) {
	p := newTestProxy(t, nil)

	resp, err := p.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/alexa",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "POST", resp.Headers["Allow"])
	assert.Empty(t, resp.Body)
}

func TestProxy_ForwardsHeadersAndTraceID(t *testing.T) {
	var seenTrace string
	p := newTestProxy(t, func(w http.ResponseWriter, r *http.Request) {
		seenTrace = r.Header.Get("X-Trace-ID")
		_, _ = w.Write([]byte(`{"text":"done"}`))
	})

	body := `{"version":"1.0","request":{"type":"IntentRequest","locale":"en-US",` +
		`"intent":{"name":"QueryIntent","slots":{"query":{"name":"query","value":"lights"}}}}}`
	resp, err := p.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPost,
		Path:           "/alexa",
		Body:           body,
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-request-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gw-request-1", seenTrace)
	assert.Equal(t, "gw-request-1", resp.Headers["X-Trace-Id"])
	assert.Equal(t, "<speak>done</speak>", decodeEnvelope(t, resp.Body).Response.OutputSpeech.SSML)
}

func TestProxy_CompressedResponseIsBase64(t *testing.T) {
	p := newTestProxy(t, nil)

	resp, err := p.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:        http.MethodPost,
		Path:              "/alexa",
		MultiValueHeaders: map[string][]string{"Accept-Encoding": {"gzip"}},
		Body:              launchBody,
	})

	require.NoError(t, err)
	require.True(t, resp.IsBase64Encoded)
	assert.Equal(t, "gzip", resp.Headers["Content-Encoding"])

	compressed, err := base64.StdEncoding.DecodeString(resp.Body)
	require.NoError(t, err)
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.False(t, decodeEnvelope(t, string(plain)).Response.ShouldEndSession)
}

func TestProxy_VersionWithQueryString(t *testing.T) {
	p := newTestProxy(t, nil)

	resp, err := p.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/version",
		QueryStringParameters: map[string]string{"verbose": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "9.9.9", resp.Body)
}

func TestQueryString(t *testing.T) {
	got := queryString(events.APIGatewayProxyRequest{
		QueryStringParameters:           map[string]string{"a": "1", "b": "2"},
		MultiValueQueryStringParameters: map[string][]string{"a": {"1", "3"}},
	})

	assert.Equal(t, "a=1&a=3&b=2", got)
}
