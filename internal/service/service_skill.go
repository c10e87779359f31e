// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/voice-bridge/internal/adapter"
	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/speech"
	"github.com/MKhiriev/voice-bridge/models"
)

type skillService struct {
	webhook    adapter.WebhookAdapter
	intentName string

	logger *logger.Logger
}

// NewSkillService builds the [SkillService] that answers cfg.IntentName by
// forwarding the query to webhook.
func NewSkillService(webhook adapter.WebhookAdapter, cfg config.App, logger *logger.Logger) (SkillService, error) {
	intentName := strings.TrimSpace(cfg.IntentName)
	if intentName == "" {
		return nil, ErrIntentNameIsNotSpecified
	}

	return &skillService{
		webhook:    webhook,
		intentName: intentName,
		logger:     logger,
	}, nil
}

// Respond implements [SkillService].
//
// LaunchRequest gets the launch prompt. The primary intent gets a re-prompt
// when its query is empty and the downstream answer otherwise. Everything
// else, SessionEndedRequest included, gets the not-understood reply.
func (s *skillService) Respond(ctx context.Context, envelope models.RequestEnvelope) models.Reply {
	log := logger.FromContext(ctx)
	phrases := speech.For(envelope.Request.Locale)

	switch envelope.Request.Type {
	case models.LaunchRequest:
		return models.NewReply(speech.Launch(phrases))
	case models.IntentRequest:
		intent := envelope.Request.Intent
		if intent == nil || intent.Name != s.intentName {
			break
		}
		query := ExtractQuery(intent)
		if query == "" {
			log.Debug().Msg("primary intent without a query, asking again")
			return models.NewReply(speech.AskQuery(phrases))
		}
		return s.answer(ctx, envelope, query, phrases)
	}

	log.Debug().
		Str("type", envelope.Request.Type).
		Str("intent", intentName(envelope.Request.Intent)).
		Msg("request not handled")
	return models.NewReply(speech.NotUnderstood(phrases))
}

// answer forwards query downstream and normalizes whatever comes back.
func (s *skillService) answer(ctx context.Context, envelope models.RequestEnvelope, query string, phrases speech.Phrases) models.Reply {
	log := logger.FromContext(ctx)

	body, err := s.webhook.Forward(ctx, models.Query{
		Query:     query,
		SessionID: envelope.SessionID(),
		UserID:    envelope.UserID(),
		Locale:    envelope.Request.Locale,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrDownstreamNotConfigured) {
			log.Error().Msg("downstream webhook url is not configured")
			return models.NewReply(speech.ConfigError(phrases))
		}
		log.Err(err).Msg("downstream webhook call failed")
		return models.NewReply(speech.GenericError(phrases))
	}

	answer := classifyAnswer(body)
	log.Debug().Stringer("kind", answer.kind).Msg("downstream answer classified")

	switch answer.kind {
	case answerEnvelope:
		return models.PassThrough(answer.raw)
	case answerText:
		if answer.markup {
			return models.NewReply(speech.Answer(speech.SSMLMarkup(answer.text)))
		}
		return models.NewReply(speech.Answer(speech.SSML(answer.text)))
	default:
		return models.NewReply(speech.NoAnswer(phrases))
	}
}

func intentName(intent *models.Intent) string {
	if intent == nil {
		return ""
	}
	return intent.Name
}
