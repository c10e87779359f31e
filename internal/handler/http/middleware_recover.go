package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/speech"
	"github.com/MKhiriev/voice-bridge/internal/utils"
	"github.com/MKhiriev/voice-bridge/models"
)

// withRecover turns a panic into the generic error envelope with 500. If the
// handler had already started the response nothing more is written.
// [http.ErrAbortHandler] is re-raised so the server aborts the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log := logger.FromRequest(r)
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Bool("response_started", rw.wroteHeader).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			reply := models.NewReply(speech.GenericError(speech.For(""))).WithStatus(http.StatusInternalServerError)
			if _, err := utils.WriteReply(rw, reply); err != nil {
				log.Err(err).Msg("error writing panic response")
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
