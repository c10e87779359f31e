// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the operator's automation
// webhook.
//
// The primary abstraction is [WebhookAdapter], which decouples the service
// layer from the downstream protocol. The package ships an HTTP
// implementation ([NewWebhookAdapter]) built on resty.
//
// Error values defined in errors.go let callers use [errors.Is] to tell a
// missing configuration ([ErrDownstreamNotConfigured]) from a failed call
// ([ErrDownstreamUnavailable], [ErrDownstreamStatus]).
package adapter

import (
	"context"

	"github.com/MKhiriev/voice-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/webhook_adapter_mock.go -package=mock

// WebhookAdapter forwards a user query to the downstream webhook.
type WebhookAdapter interface {
	// Forward sends query in a single POST and returns the raw response body
	// of a 2xx answer. It never retries. The call is abandoned when ctx is
	// done or the configured timeout elapses.
	Forward(ctx context.Context, query models.Query) ([]byte, error)
}
