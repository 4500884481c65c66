package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_NAME", "JWT_TTL", "CONN_RETRIES", "DEFAULT_LOCALE", "MATTERMOST_URL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "go_leave", cfg.DBName)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.ConnRetries)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("CONN_RETRIES", "2")
	t.Setenv("DEFAULT_LOCALE", "id")
	t.Setenv("MATTERMOST_URL", "https://chat.example.com/")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 2, cfg.ConnRetries)
	assert.Equal(t, "id", cfg.DefaultLocale)
	assert.Equal(t, "https://chat.example.com", cfg.MattermostURL)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("CONN_RETRIES", "-3")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.ConnRetries)
}
