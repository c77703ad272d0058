package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "STORE_DRIVER", "DATA_FILE", "SETTINGS_FILE", "DATABASE_URL",
		"CORS_ALLOWED_ORIGINS", "STATIC_DIR", "REQUEST_TIMEOUT", "IMPORT_TIMEOUT",
		"MAILER_PROVIDER", "MAILER_FROM_ADDRESS", "MAILER_FROM_NAME", "AWS_REGION",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DIGEST_TO", "DIGEST_CRON", "DIGEST_WINDOW_DAYS",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("GO_ENV", "production")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, StoreDriverFile, cfg.StoreDriver)
	assert.Equal(t, "data/talktrack.json", cfg.DataFile)
	assert.Empty(t, cfg.DBUrl)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.ImportTimeout)
	assert.Equal(t, "noop", cfg.MailerProvider)
	assert.Equal(t, 14, cfg.DigestWindowDays)
	assert.Empty(t, cfg.DigestCron)
	assert.Empty(t, cfg.DigestTo)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , http://b.test ,")
	t.Setenv("REQUEST_TIMEOUT", "3")
	t.Setenv("IMPORT_TIMEOUT", "1m")
	t.Setenv("MAILER_PROVIDER", "SES")
	t.Setenv("DIGEST_CRON", "0 8 * * MON")
	t.Setenv("DIGEST_WINDOW_DAYS", "30")
	t.Setenv("DIGEST_TO", "me@example.com, pa@example.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Contains(t, cfg.DBUrl, "postgres://")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.ImportTimeout)
	assert.Equal(t, "ses", cfg.MailerProvider)
	assert.Equal(t, "0 8 * * MON", cfg.DigestCron)
	assert.Equal(t, 30, cfg.DigestWindowDays)
	assert.Equal(t, []string{"me@example.com", "pa@example.com"}, cfg.DigestTo)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "STORE_DRIVER", "sqlite"},
		{"bad timeout", "REQUEST_TIMEOUT", "soon"},
		{"negative window", "DIGEST_WINDOW_DAYS", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
