package config_test

import (
	"testing"

	"matchmeet/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadReadsIntegerSettings(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2525, cfg.SMTPPort)
}

func TestLoadFallsBackOnUnsetOrMalformedInts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("SMTP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "matchmeet",
	}
	assert.Equal(t, "host=db user=u password=p dbname=matchmeet port=5433 sslmode=disable", cfg.DSN())
}
