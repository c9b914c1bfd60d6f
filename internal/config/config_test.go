package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("JWT_ACCESS_TTL_MIN", "15")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("MINIO_USE_SSL")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("JWT_ACCESS_TTL_MIN")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DB_SSLMODE")
	os.Unsetenv("JWT_ACCESS_TTL_MIN")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 60*time.Minute, cfg.JWT.AccessTTL)
}

func TestGetEnvInt_Invalid(t *testing.T) {
	os.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	defer os.Unsetenv("DB_MAX_IDLE_CONNS")

	cfg := Load()

	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
}
