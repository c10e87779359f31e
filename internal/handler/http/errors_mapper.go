package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/voice-bridge/internal/speech"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
	"github.com/MKhiriev/voice-bridge/models"
)

var errorStatusMap = map[error]int{
	ErrPayloadTooLarge:  http.StatusRequestEntityTooLarge,
	ErrReadingBody:      http.StatusBadRequest,
	ErrMalformedRequest: http.StatusBadRequest,

	verifier.ErrMissingSignature:    http.StatusUnauthorized,
	verifier.ErrInvalidCertURL:      http.StatusUnauthorized,
	verifier.ErrCertificateFetch:    http.StatusUnauthorized,
	verifier.ErrInvalidCertificate:  http.StatusUnauthorized,
	verifier.ErrInvalidSignature:    http.StatusUnauthorized,
	verifier.ErrInvalidTimestamp:    http.StatusUnauthorized,
	verifier.ErrTimestampExpired:    http.StatusUnauthorized,
	verifier.ErrApplicationMismatch: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// replyFromError builds the speech reply for a request that failed before
// reaching the service layer.
func replyFromError(err error, phrases speech.Phrases) models.Reply {
	status := statusFromError(err)

	var envelope models.ResponseEnvelope
	switch status {
	case http.StatusUnauthorized:
		envelope = speech.Unauthenticated(phrases)
	case http.StatusBadRequest:
		envelope = speech.InvalidRequest(phrases)
	default:
		envelope = speech.GenericError(phrases)
	}

	return models.NewReply(envelope).WithStatus(status)
}
