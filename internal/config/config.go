package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

var ErrInvalidTelegramMode = errors.New("invalid telegram mode")

const (
	TelegramModePolling = "polling"
	TelegramModeWebhook = "webhook"
)

// Config holds all application configuration
type Config struct {
	Telegram  TelegramConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// TelegramConfig holds bot transport settings
type TelegramConfig struct {
	Token         string
	Mode          string
	WebhookURL    string
	WebhookSecret string
	// APIRate is the maximum number of outbound Bot API calls per second.
	APIRate      int
	AdminChatIDs []int64
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds owner API token settings
type AuthConfig struct {
	JWTSecret string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds event streaming configuration. Publishing is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// RateLimitConfig holds limiter rates in ulule formatted notation (e.g. "10-M")
type RateLimitConfig struct {
	UserCheck string
	API       string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Telegram, err = loadTelegram(); err != nil {
		return nil, err
	}
	if cfg.Database, err = LoadDatabase(); err != nil {
		return nil, err
	}

	cfg.Auth.JWTSecret = getEnvWithDefault("JWT_SECRET", "")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnvWithDefault("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Kafka configuration
	cfg.Kafka.Brokers = getEnvWithDefault("KAFKA_BROKERS", "")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "subgate.events")

	cfg.RateLimit.UserCheck = getEnvWithDefault("USER_CHECK_RATE", "10-M")
	cfg.RateLimit.API = getEnvWithDefault("API_RATE", "120-M")

	// Server configuration
	if cfg.Server.Port, err = strconv.Atoi(getEnvWithDefault("SERVER_PORT", "8080")); err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

func loadTelegram() (TelegramConfig, error) {
	var (
		tg  TelegramConfig
		err error
	)
	if tg.Token, err = requireEnv("TELEGRAM_BOT_TOKEN"); err != nil {
		return TelegramConfig{}, err
	}

	tg.Mode = getEnvWithDefault("TELEGRAM_MODE", TelegramModePolling)
	switch tg.Mode {
	case TelegramModePolling:
	case TelegramModeWebhook:
		if tg.WebhookURL, err = requireEnv("TELEGRAM_WEBHOOK_URL"); err != nil {
			return TelegramConfig{}, err
		}
		if tg.WebhookSecret, err = requireEnv("TELEGRAM_WEBHOOK_SECRET"); err != nil {
			return TelegramConfig{}, err
		}
	default:
		return TelegramConfig{}, fmt.Errorf("%s: %w", tg.Mode, ErrInvalidTelegramMode)
	}

	if tg.APIRate, err = strconv.Atoi(getEnvWithDefault("TELEGRAM_API_RATE", "25")); err != nil {
		return TelegramConfig{}, fmt.Errorf("failed to parse TELEGRAM_API_RATE: %w", err)
	}

	if tg.AdminChatIDs, err = parseIDList(getEnvWithDefault("ADMIN_CHAT_IDS", "")); err != nil {
		return TelegramConfig{}, fmt.Errorf("failed to parse ADMIN_CHAT_IDS: %w", err)
	}
	return tg, nil
}

// LoadDatabase reads only the database settings. Used by tooling that has no bot token.
func LoadDatabase() (DatabaseConfig, error) {
	var (
		db  DatabaseConfig
		err error
	)
	if db.Host, err = requireEnv("DB_HOST"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Name, err = requireEnv("DB_NAME"); err != nil {
		return DatabaseConfig{}, err
	}
	return db, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

func parseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
