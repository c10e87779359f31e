package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-bridge/models"
)

func TestWriteReply_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	reply := models.NewReply(models.ResponseEnvelope{
		Version:  models.EnvelopeVersion,
		Response: models.Response{ShouldEndSession: true},
	}).WithStatus(http.StatusUnauthorized)

	_, err := WriteReply(w, reply)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.0","response":{"shouldEndSession":true}}`, w.Body.String())
}

func TestWriteReply_PassThrough(t *testing.T) {
	raw := []byte(`{"version":"1.0",  "response":{"custom":true}}`)
	w := httptest.NewRecorder()

	_, err := WriteReply(w, models.PassThrough(raw))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, w.Body.Bytes())
}
