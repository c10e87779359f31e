// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/utils"
	"github.com/MKhiriev/voice-bridge/models"
)

// maxResponseBody bounds the downstream answer read into memory.
const maxResponseBody = 1 << 20

type webhookAdapter struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewWebhookAdapter constructs the HTTP implementation of [WebhookAdapter].
//
// An empty cfg.WebhookURL is accepted: every Forward then fails with
// [ErrDownstreamNotConfigured]. cfg.Timeout bounds each call and falls back
// to config.DefaultDownstreamTimeout when zero.
func NewWebhookAdapter(cfg config.Downstream, logger *logger.Logger) WebhookAdapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultDownstreamTimeout
	}

	client := utils.NewHTTPClient(
		utils.WithTimeout(timeout),
		utils.WithResponseBodyLimit(maxResponseBody),
		utils.WithHeader("Accept", "application/json, text/plain;q=0.9, */*;q=0.1"),
	)

	return &webhookAdapter{client: client, url: cfg.WebhookURL, logger: logger}
}

// Forward implements [WebhookAdapter]. The trace id found in ctx, if any, is
// sent in the X-Trace-ID header.
func (a *webhookAdapter) Forward(ctx context.Context, query models.Query) ([]byte, error) {
	if a.url == "" {
		return nil, ErrDownstreamNotConfigured
	}

	req := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(query)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}

	start := time.Now()
	resp, err := req.Post(a.url)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("%w: timed out after %s: %w", ErrDownstreamUnavailable, time.Since(start).Round(time.Millisecond), err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDownstreamUnavailable, err)
	}

	a.logger.Debug().
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Dur("duration", time.Since(start)).
		Msg("downstream webhook answered")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
