package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds service configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	// Postgres
	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgDB       string

	// Sessions
	SessionTTL     time.Duration
	SessionBackend string // "memory" | "redis"
	RedisAddr      string
	RedisPassword  string

	// HMAC secret for signed LGPD export links
	ExportSigningSecret string
}

// Load reads configuration from the environment, using a .env file when
// present. Defaults are suitable for local development.
func Load() *Config {
	_ = godotenv.Load() // .env is optional; real env vars win either way

	ttlHours := getInt("SESSION_TTL_HOURS", 12)

	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		PgHost:              getEnv("PG_HOST", "localhost"),
		PgPort:              getEnv("PG_PORT", "5432"),
		PgUser:              getEnv("PG_USER", "secretaria"),
		PgPassword:          getEnv("PG_PASSWORD", "secretaria"),
		PgDB:                getEnv("PG_DB", "secretaria"),
		SessionTTL:          time.Duration(ttlHours) * time.Hour,
		SessionBackend:      getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		ExportSigningSecret: getEnv("EXPORT_SIGNING_SECRET", "dev-secret-change-me"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
