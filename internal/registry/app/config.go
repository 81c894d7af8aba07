package app

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	MaxBodyBytes        int64         // Request body cap (default: 1 MiB)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database file (default: ./clients.db)
	DatabaseURL    string // PostgreSQL DSN, required for the postgres driver

	ResendAPIKey  string        // Optional: without it every email fails as not configured
	FromEmail     string        // Sender address (default: onboarding@resend.dev)
	TestEmail     string        // Recipient for GET /test-email (default: test@example.com)
	NotifyTimeout time.Duration // Upper bound on the welcome email call (default: 10s)
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_FILE", "clients.db")
	v.SetDefault("RESEND_FROM_EMAIL", "onboarding@resend.dev")
	v.SetDefault("TEST_EMAIL", "test@example.com")
	v.SetDefault("NOTIFY_TIMEOUT", 10*time.Second)

	return Config{
		Env:                 v.GetString("ENV"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
		Port:                v.GetInt("PORT"),
		ShutdownGracePeriod: v.GetDuration("SHUTDOWN_GRACE_PERIOD"),
		MaxBodyBytes:        v.GetInt64("MAX_BODY_BYTES"),
		DatabaseDriver:      v.GetString("DATABASE_DRIVER"),
		DatabaseFile:        v.GetString("DATABASE_FILE"),
		DatabaseURL:         v.GetString("DATABASE_URL"),
		ResendAPIKey:        v.GetString("RESEND_API_KEY"),
		FromEmail:           v.GetString("RESEND_FROM_EMAIL"),
		TestEmail:           v.GetString("TEST_EMAIL"),
		NotifyTimeout:       v.GetDuration("NOTIFY_TIMEOUT"),
	}
}

// Validate rejects configurations the application cannot start with.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("DATABASE_FILE is required for the %s driver", DriverSQLite)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q (want %s or %s)", c.DatabaseDriver, DriverSQLite, DriverPostgres)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}
