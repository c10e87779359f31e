package utils

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/voice-bridge/models"
)

// WriteReply writes a speech reply with its status. A pass-through reply is
// written byte for byte; otherwise the envelope is serialized.
func WriteReply(w http.ResponseWriter, reply models.Reply) (int, error) {
	body, err := reply.Body()
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing reply: %w", err)
	}

	return writeBody(w, body, reply.Status)
}

func writeBody(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
