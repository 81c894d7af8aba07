package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD", "MAX_BODY_BYTES",
		"DATABASE_DRIVER", "DATABASE_FILE", "DATABASE_URL", "RESEND_API_KEY",
		"RESEND_FROM_EMAIL", "TEST_EMAIL", "NOTIFY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "clients.db", cfg.DatabaseFile)
	require.Equal(t, "onboarding@resend.dev", cfg.FromEmail)
	require.Equal(t, "test@example.com", cfg.TestEmail)
	require.Equal(t, 10*time.Second, cfg.NotifyTimeout)
	require.Empty(t, cfg.ResendAPIKey)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/onboard")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("RESEND_FROM_EMAIL", "hello@firm.test")
	t.Setenv("NOTIFY_TIMEOUT", "3s")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg := LoadConfig()

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, "postgres://u:p@db:5432/onboard", cfg.DatabaseURL)
	require.Equal(t, "re_123", cfg.ResendAPIKey)
	require.Equal(t, "hello@firm.test", cfg.FromEmail)
	require.Equal(t, 3*time.Second, cfg.NotifyTimeout)
	require.Equal(t, int64(2048), cfg.MaxBodyBytes)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	base := Config{Port: 8080, DatabaseDriver: DriverSQLite, DatabaseFile: "x.db"}
	require.NoError(t, base.Validate())

	bad := base
	bad.DatabaseDriver = "mysql"
	require.ErrorContains(t, bad.Validate(), "unknown DATABASE_DRIVER")

	bad = base
	bad.DatabaseDriver = DriverPostgres
	require.ErrorContains(t, bad.Validate(), "DATABASE_URL is required")

	bad = base
	bad.Port = 0
	require.ErrorContains(t, bad.Validate(), "invalid PORT")
}
