package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"SERVER_SHUTDOWN_TIMEOUT", "SERVER_METRICS_ENABLED", "SERVER_ALLOWED_ORIGINS",
	"LOG_LEVEL", "LOG_FORMAT", "AUTH_JWT_SECRET", "AUTH_TOKEN_TTL", "AUTH_USERS",
	"SETTLE_MAX_PARTICIPANTS",
}

// clearEnv blanks every variable FromEnv reads; blank means default.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.True(t, cfg.HTTP.MetricsEnabled)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 100, cfg.Settle.MaxParticipants)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_WRITE_TIMEOUT", "30s")
	t.Setenv("SERVER_METRICS_ENABLED", "false")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("AUTH_TOKEN_TTL", "1h")
	t.Setenv("SETTLE_MAX_PARTICIPANTS", "12")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr())
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
	assert.False(t, cfg.HTTP.MetricsEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Settle.MaxParticipants)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "SERVER_PORT", value: "http"},
		{key: "SERVER_PORT", value: "70000"},
		{key: "SERVER_READ_TIMEOUT", value: "soon"},
		{key: "SERVER_SHUTDOWN_TIMEOUT", value: "-1s"},
		{key: "SERVER_METRICS_ENABLED", value: "maybe"},
		{key: "SETTLE_MAX_PARTICIPANTS", value: "0"},
		{key: "AUTH_USERS", value: "alice@example.com:hash"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SETTLE_MAX_PARTICIPANTS=7\n"), 0o600))
	t.Chdir(dir)
	clearEnv(t)
	// godotenv only fills variables that are unset, not blank
	require.NoError(t, os.Unsetenv("SETTLE_MAX_PARTICIPANTS"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Settle.MaxParticipants)
}

func TestLoad_WithoutDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := Load()
	assert.NoError(t, err)
}
