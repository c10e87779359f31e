package service

import (
	"fmt"

	"github.com/MKhiriev/voice-bridge/internal/adapter"
	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
)

type Services struct {
	SkillService   SkillService
	AppInfoService AppInfoService
}

func NewServices(webhook adapter.WebhookAdapter, cfg config.StructuredConfig, version string, logger *logger.Logger) (*Services, error) {
	skillService, err := NewSkillService(webhook, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating skill service: %w", err)
	}

	appInfoService, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SkillService:   skillService,
		AppInfoService: appInfoService,
	}, nil
}
