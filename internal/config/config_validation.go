// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] is usable and resolves
// derived values (MaxBodyBytes, capped downstream timeout).
//
// A missing downstream URL is deliberately not an error: the service keeps
// answering and reports the misconfiguration through speech replies.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if !strings.HasPrefix(cfg.Server.SkillPath, "/") {
		return fmt.Errorf("%w: skill path %q must start with /", ErrInvalidServerConfigs, cfg.Server.SkillPath)
	}
	if cfg.Server.MaxConnections < 0 {
		return fmt.Errorf("%w: negative max connections", ErrInvalidServerConfigs)
	}

	maxBody, err := parseSizeString(cfg.Server.MaxBodySize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	if maxBody <= 0 {
		return fmt.Errorf("%w: max body size must be positive", ErrInvalidServerConfigs)
	}
	cfg.Server.MaxBodyBytes = maxBody

	if raw := strings.TrimSpace(cfg.Downstream.WebhookURL); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDownstreamConfigs, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: webhook url must be an absolute http(s) URL", ErrInvalidDownstreamConfigs)
		}
		cfg.Downstream.WebhookURL = raw
	}
	if cfg.Downstream.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidDownstreamConfigs)
	}
	if cfg.Downstream.Timeout > MaxDownstreamTimeout {
		cfg.Downstream.Timeout = MaxDownstreamTimeout
	}

	if cfg.Verification.TimestampTolerance < 0 || cfg.Verification.CertCacheSize < 0 {
		return ErrInvalidVerificationConfigs
	}

	if strings.TrimSpace(cfg.App.IntentName) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
