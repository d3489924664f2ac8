package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int    // requests per minute per IP
	RedisURL     string // optional shared limiter storage, e.g. "redis://localhost:6379/0"

	// Notifications
	NotificationTTL time.Duration

	// Background jobs
	LinkCheckInterval time.Duration // 0 disables the saved-link checker

	// Data
	SeedData   bool   // load the sample records at startup
	ConfigFile string // optional YAML file with calendars and extra records

	// Logging
	LogLevel string // debug, info, warn, error
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:               getEnv("ENV", "development"),
		ServerAddr:        getEnv("SERVER_ADDR", ":3000"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:3000"),
		TLSEnabled:        getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", ""),
		RateLimitMax:      getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:          getEnv("REDIS_URL", ""),
		NotificationTTL:   getEnvDuration("NOTIFICATION_TTL", 5*time.Second),
		LinkCheckInterval: getEnvDuration("LINK_CHECK_INTERVAL", 0),
		SeedData:          getEnvBool("SEED_DATA", true),
		ConfigFile:        getEnv("CONFIG_FILE", "config.yaml"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", value)
		return fallback
	}
	return d
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("ignoring invalid boolean setting", "key", key, "value", value)
		return fallback
	}
	return b
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AllowedOrigins returns the CORS origins, defaulting to the base URL.
func (c *Config) AllowedOrigins() []string {
	origins := c.BaseURL
	if c.CORSOrigins != "" {
		origins = c.CORSOrigins
	}
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
