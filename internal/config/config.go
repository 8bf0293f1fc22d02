package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	Environment     string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration

	Database DatabaseConfig

	RedisURL string

	KafkaBrokers []string
	EventsTopic  string

	// FanOutLimit bounds concurrent per-tool and per-question fetches when listing assessments
	FanOutLimit int
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

// LoadConfig reads .env (if present) and the process environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config.godotenv: %w", err)
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("PORT", "4000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SUPABASE_DB_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_CONNECT_TIMEOUT", 30*time.Second)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("EVENTS_TOPIC", "assessment-events")
	v.SetDefault("ASSESSMENT_FANOUT_LIMIT", 8)
	v.AutomaticEnv()

	level, err := parseLogLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		dbURL = v.GetString("SUPABASE_DB_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL or SUPABASE_DB_URL must be set")
	}

	fanOut := v.GetInt("ASSESSMENT_FANOUT_LIMIT")
	if fanOut < 1 {
		return nil, fmt.Errorf("config: ASSESSMENT_FANOUT_LIMIT must be positive, got %d", fanOut)
	}

	return &Config{
		Port:            v.GetString("PORT"),
		Environment:     v.GetString("ENVIRONMENT"),
		LogLevel:        level,
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		Database: DatabaseConfig{
			URL:             dbURL,
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnectTimeout:  v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		RedisURL:     v.GetString("REDIS_URL"),
		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		EventsTopic:  v.GetString("EVENTS_TOPIC"),
		FanOutLimit:  fanOut,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
