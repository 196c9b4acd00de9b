package infra

import (
	"context"
	"net/url"
	"os"
	"strconv"

	"carbon-backend/app/src/shared/constants"
)

// Config carries the process configuration read from the environment.
type Config struct {
	HTTPPort         string
	MetricsPort      string
	DatabaseURL      string
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	ReadingsLimit    int
	DeviceMapPath    string
}

// LoadConfig reads configuration from the environment. Missing database
// credentials are not an error here; the store reports them at request
// time instead.
func LoadConfig() Config {
	return Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		MetricsPort:      getEnv("METRICS_PORT", "2112"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DatabaseHost:     os.Getenv("DB_HOST"),
		DatabasePort:     os.Getenv("DB_PORT"),
		DatabaseUser:     os.Getenv("DB_USER"),
		DatabasePassword: os.Getenv("DB_PASSWORD"),
		DatabaseName:     os.Getenv("DB_NAME"),
		ReadingsLimit:    getEnvInt("READINGS_LIMIT", constants.DefaultReadingsLimit),
		DeviceMapPath:    os.Getenv("DEVICE_MAP_PATH"),
	}
}

// DSN returns the Postgres connection string, preferring DATABASE_URL over
// the discrete DB_* parts. Empty when the store is unconfigured.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DatabaseHost == "" || c.DatabaseName == "" {
		return ""
	}
	host := c.DatabaseHost
	if c.DatabasePort != "" {
		host = c.DatabaseHost + ":" + c.DatabasePort
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     host,
		Path:     "/" + c.DatabaseName,
		RawQuery: "sslmode=disable",
	}
	if c.DatabaseUser != "" {
		if c.DatabasePassword != "" {
			u.User = url.UserPassword(c.DatabaseUser, c.DatabasePassword)
		} else {
			u.User = url.User(c.DatabaseUser)
		}
	}
	return u.String()
}

// LogConfig records the effective configuration with credentials redacted.
func LogConfig(ctx context.Context, logger *Logger, cfg Config) {
	logger.Printf(ctx, "HTTP_PORT=%s", cfg.HTTPPort)
	logger.Printf(ctx, "METRICS_PORT=%s", emptyFallback(cfg.MetricsPort, "(disabled)"))
	if cfg.DatabaseURL != "" {
		logger.Printf(ctx, "DATABASE_URL set (length %d)", len(cfg.DatabaseURL))
	} else {
		logger.Println(ctx, "DATABASE_URL not provided")
	}
	logger.Printf(ctx, "DB_HOST=%s", emptyFallback(cfg.DatabaseHost, "(not set)"))
	logger.Printf(ctx, "DB_PORT=%s", emptyFallback(cfg.DatabasePort, "(not set)"))
	logger.Printf(ctx, "DB_USER=%s", emptyFallback(cfg.DatabaseUser, "(not set)"))
	if cfg.DatabasePassword != "" {
		logger.Println(ctx, "DB_PASSWORD set (redacted)")
	} else {
		logger.Println(ctx, "DB_PASSWORD not provided")
	}
	logger.Printf(ctx, "DB_NAME=%s", emptyFallback(cfg.DatabaseName, "(not set)"))
	logger.Printf(ctx, "READINGS_LIMIT=%d", cfg.ReadingsLimit)
	logger.Printf(ctx, "DEVICE_MAP_PATH=%s", emptyFallback(cfg.DeviceMapPath, "(built-in table)"))
	if cfg.DSN() == "" {
		logger.Println(ctx, "database credentials missing; durable writes will fail at request time")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func emptyFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
