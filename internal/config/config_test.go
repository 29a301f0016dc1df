package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gradebook-console/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"API_BASE_URL", "API_TIMEOUT_SECONDS",
		"SESSION_STORE_BACKEND", "SESSION_FILE",
		"REDIS_ADDR", "REDIS_DB", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
	assert.Equal(t, config.SessionBackendFile, cfg.Session.Backend)
	assert.NotEmpty(t, cfg.Session.FilePath)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://grades.school.edu/api")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("SESSION_STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.school.edu:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://grades.school.edu/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout())
	assert.Equal(t, config.SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "redis.school.edu:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("SESSION_STORE_BACKEND", "carrier-pigeon")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
