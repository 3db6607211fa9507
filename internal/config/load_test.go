package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Config loading is driven by environment variables; these tests cannot run
// in parallel with each other.

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POKERTRAIN_DATABASE_URL", "postgres://localhost:5432/pokertrain")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "anonymous", cfg.Training.DefaultUserID)
	assert.Equal(t, 100, cfg.Training.MaxSynthesisAttempts)
	assert.Equal(t, "draw", cfg.Training.FallbackPolicy)
	assert.Equal(t, "postgres://localhost:5432/pokertrain", cfg.Database.URL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POKERTRAIN_DATABASE_URL", "postgres://db:5432/app")
	t.Setenv("POKERTRAIN_SERVER_PORT", "9000")
	t.Setenv("POKERTRAIN_SERVER_LOG_LEVEL", "debug")
	t.Setenv("POKERTRAIN_TRAINING_FALLBACK_POLICY", "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "error", cfg.Training.FallbackPolicy)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("POKERTRAIN_DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "POKERTRAIN_SERVER_LOG_LEVEL", value: "verbose"},
		{name: "bad fallback policy", key: "POKERTRAIN_TRAINING_FALLBACK_POLICY", value: "retry"},
		{name: "port out of range", key: "POKERTRAIN_SERVER_PORT", value: "70000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POKERTRAIN_DATABASE_URL", "postgres://localhost:5432/pokertrain")
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
