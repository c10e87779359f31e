// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied by [configBuilder.withDefaults].
const (
	DefaultHTTPAddress        = ":8080"
	DefaultSkillPath          = "/"
	DefaultMaxBodySize        = "128KiB"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultDownstreamTimeout  = 8 * time.Second
	MaxDownstreamTimeout      = 10 * time.Second
	DefaultTimestampTolerance = 150 * time.Second
	DefaultCertCacheSize      = 10
	DefaultIntentName         = "QueryIntent"
)

// StructuredConfig is the top-level configuration container. It aggregates all
// sub-configurations and is populated by merging flags, environment variables,
// an optional config file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds behavior-neutral application settings.
	App App `envPrefix:"APP_"`

	// Server holds listen address, routing and limits for the inbound side.
	Server Server `envPrefix:"SERVER_"`

	// Downstream holds the automation webhook the queries are forwarded to.
	Downstream Downstream `envPrefix:"DOWNSTREAM_"`

	// Verification controls request signature verification.
	Verification Verification `envPrefix:"VERIFY_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Env: CONFIG
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Debug is a boolean-like string ("true", "1", "on", ...) switching
	// diagnostic log verbosity. It has no behavioral effect.
	// Env: APP_DEBUG
	Debug string `env:"DEBUG"`

	// IntentName is the intent whose slots carry the user's question.
	// Env: APP_INTENT_NAME
	IntentName string `env:"INTENT_NAME"`
}

// Server holds network, routing and limit settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SkillPath is the route the voice platform posts to.
	// Env: SERVER_SKILL_PATH
	SkillPath string `env:"SKILL_PATH"`

	// MaxBodySize bounds the inbound body, as a size string ("128KiB", "1mb").
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize string `env:"MAX_BODY_SIZE"`

	// MaxBodyBytes is MaxBodySize resolved by validation.
	MaxBodyBytes int64

	// MaxConnections limits concurrently accepted connections. Zero means
	// unlimited.
	// Env: SERVER_MAX_CONNECTIONS
	MaxConnections int `env:"MAX_CONNECTIONS"`

	// RequestTimeout bounds reading and writing a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Downstream describes the automation webhook.
type Downstream struct {
	// WebhookURL is the destination for forwarded queries. Leaving it empty is
	// allowed at startup; every query then gets a configuration error reply.
	// Env: DOWNSTREAM_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// Timeout abandons the downstream call. Capped at MaxDownstreamTimeout.
	// Env: DOWNSTREAM_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Verification controls the authenticity checks on inbound requests.
type Verification struct {
	// Signature is a boolean-like string; verification is enabled unless it
	// explicitly says otherwise. Disabling is meant for local testing only.
	// Env: VERIFY_SIGNATURE
	Signature string `env:"SIGNATURE"`

	// TimestampTolerance is the allowed skew of request.timestamp.
	// Env: VERIFY_TIMESTAMP_TOLERANCE
	TimestampTolerance time.Duration `env:"TIMESTAMP_TOLERANCE"`

	// SkillID, when set, must match the application id of every request.
	// Env: VERIFY_SKILL_ID
	SkillID string `env:"SKILL_ID"`

	// CertCacheSize bounds the number of cached signing certificates.
	// Env: VERIFY_CERT_CACHE_SIZE
	CertCacheSize int `env:"CERT_CACHE_SIZE"`
}

// DebugEnabled reports whether debug logging was requested.
func (a App) DebugEnabled() bool {
	return ParseToggle(a.Debug, false)
}

// Enabled reports whether signature verification is on. It defaults to true.
func (v Verification) Enabled() bool {
	return ParseToggle(v.Signature, true)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from flags, environment, the optional config file and
// defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(commandLineArgs()).
		withEnv().
		withFile().
		withDefaults().
		build()
}
