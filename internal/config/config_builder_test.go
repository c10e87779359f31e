package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultSkillPath, cfg.Server.SkillPath)
	assert.Equal(t, int64(128*1024), cfg.Server.MaxBodyBytes)
	assert.Equal(t, DefaultDownstreamTimeout, cfg.Downstream.Timeout)
	assert.Equal(t, DefaultTimestampTolerance, cfg.Verification.TimestampTolerance)
	assert.Equal(t, DefaultIntentName, cfg.App.IntentName)
	assert.True(t, cfg.Verification.Enabled())
	assert.Empty(t, cfg.Downstream.WebhookURL)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while unset fields are filled in.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Downstream: Downstream{WebhookURL: "http://flags.local/hook"}},
		&StructuredConfig{Downstream: Downstream{WebhookURL: "http://env.local/hook", Timeout: 2 * time.Second}},
	)

	cfg, err := b.withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "http://flags.local/hook", cfg.Downstream.WebhookURL)
	assert.Equal(t, 2*time.Second, cfg.Downstream.Timeout)
}

func TestBuild_WithFileFromEnv(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", "downstream:\n  webhook_url: http://file.local/hook\n")
	t.Setenv("CONFIG", p)
	t.Setenv("VERIFY_SIGNATURE", "false")

	cfg, err := newConfigBuilder().
		withFlags(nil).
		withEnv().
		withFile().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://file.local/hook", cfg.Downstream.WebhookURL)
	assert.False(t, cfg.Verification.Enabled())
}

func TestBuild_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("DOWNSTREAM_WEBHOOK_URL", "http://env.local/hook")

	cfg, err := newConfigBuilder().
		withFlags([]string{"-webhook-url", "http://flag.local/hook"}).
		withEnv().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://flag.local/hook", cfg.Downstream.WebhookURL)
}

func TestBuild_MissingFileIsError(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", "/definitely/not/here.json"}).
		withFile().
		withDefaults().
		build()

	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestBuild_BadFlagIsError(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-nope"}).withDefaults().build()
	require.Error(t, err)
}
