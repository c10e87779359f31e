package service

import (
	"context"

	"github.com/MKhiriev/voice-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SkillService turns one decoded platform request into exactly one reply.
type SkillService interface {
	// Respond never fails: downstream and configuration problems become
	// speech replies.
	Respond(ctx context.Context, envelope models.RequestEnvelope) models.Reply
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
