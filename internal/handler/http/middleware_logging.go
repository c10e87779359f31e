package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/voice-bridge/internal/logger"
)

type accessEntryKey struct{}

// accessEntry collects what handlers learn about a request for the access
// log line.
type accessEntry struct {
	requestType string
}

// setRequestType records the skill request type for the access log.
func setRequestType(ctx context.Context, requestType string) {
	if entry, ok := ctx.Value(accessEntryKey{}).(*accessEntry); ok {
		entry.requestType = requestType
	}
}

// withLogging writes one access log line per request. Server faults are
// logged at error level and rejected requests at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		entry := &accessEntry{}
		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r.WithContext(context.WithValue(r.Context(), accessEntryKey{}, entry)))

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := log.WithLevel(accessLevel(status)).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int64("bytes_in", r.ContentLength).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if entry.requestType != "" {
			event = event.Str("type", entry.requestType)
		}
		event.Msg("request served")
	})
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
