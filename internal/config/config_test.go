package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tools")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "postgres://localhost/tools", cfg.Database.URL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 8, cfg.FanOutLimit)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SUPABASE_DB_URL", "postgres://supabase/db")
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("DB_CONNECT_TIMEOUT", "5s")
	t.Setenv("ASSESSMENT_FANOUT_LIMIT", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "postgres://supabase/db", cfg.Database.URL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 2, cfg.FanOutLimit)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("SUPABASE_DB_URL", "")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/tools")
		t.Setenv("LOG_LEVEL", "loud")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})

	t.Run("non-positive fan-out", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/tools")
		t.Setenv("ASSESSMENT_FANOUT_LIMIT", "0")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "ASSESSMENT_FANOUT_LIMIT")
	})
}
