package http

import (
	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/service"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
)

type Handler struct {
	services *service.Services
	verifier verifier.Verifier

	skillPath    string
	maxBodyBytes int64

	logger *logger.Logger
}

// NewHandler wires the services and the request verifier to the HTTP
// transport. cfg must have passed config validation, which resolves
// MaxBodyBytes.
func NewHandler(services *service.Services, verifier verifier.Verifier, cfg config.Server, logger *logger.Logger) *Handler {
	skillPath := cfg.SkillPath
	if skillPath == "" {
		skillPath = config.DefaultSkillPath
	}

	logger.Info().Str("skill_path", skillPath).Msg("http handler created")
	return &Handler{
		services:     services,
		verifier:     verifier,
		skillPath:    skillPath,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}
