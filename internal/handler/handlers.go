package handler

import (
	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/handler/http"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/service"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, verifier verifier.Verifier, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || verifier == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, verifier, cfg, logger),
	}, nil
}
