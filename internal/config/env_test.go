// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/etc/voice-bridge.yaml",

		"APP_DEBUG":       "true",
		"APP_INTENT_NAME": "AskIntent",

		"SERVER_ADDRESS":         "127.0.0.1:9000",
		"SERVER_SKILL_PATH":      "/alexa",
		"SERVER_MAX_BODY_SIZE":   "64KiB",
		"SERVER_MAX_CONNECTIONS": "100",
		"SERVER_REQUEST_TIMEOUT": "20s",

		"DOWNSTREAM_WEBHOOK_URL": "https://automation.example.com/webhook/ask",
		"DOWNSTREAM_TIMEOUT":     "5s",

		"VERIFY_SIGNATURE":           "false",
		"VERIFY_TIMESTAMP_TOLERANCE": "2m",
		"VERIFY_SKILL_ID":            "amzn1.ask.skill.test",
		"VERIFY_CERT_CACHE_SIZE":     "4",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/etc/voice-bridge.yaml", cfg.FilePath)
	assert.True(t, cfg.App.DebugEnabled())
	assert.Equal(t, "AskIntent", cfg.App.IntentName)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/alexa", cfg.Server.SkillPath)
	assert.Equal(t, "64KiB", cfg.Server.MaxBodySize)
	assert.Equal(t, 100, cfg.Server.MaxConnections)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "https://automation.example.com/webhook/ask", cfg.Downstream.WebhookURL)
	assert.Equal(t, 5*time.Second, cfg.Downstream.Timeout)

	assert.False(t, cfg.Verification.Enabled())
	assert.Equal(t, 2*time.Minute, cfg.Verification.TimestampTolerance)
	assert.Equal(t, "amzn1.ask.skill.test", cfg.Verification.SkillID)
	assert.Equal(t, 4, cfg.Verification.CertCacheSize)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Downstream.WebhookURL)
	assert.True(t, cfg.Verification.Enabled(), "verification must default to enabled")
	assert.False(t, cfg.App.DebugEnabled())
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("DOWNSTREAM_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
