package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/vocab")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("APP_ENV", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 24*time.Hour, cfg.Quiz.SessionTTL)
	assert.Equal(t, "0 * * * *", cfg.Quiz.JanitorSchedule)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.Gemini.APIKey)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/vocab", dsn)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("GEMINI_API_KEY", "secret")

	dir := t.TempDir()
	yaml := "quiz:\n  session_ttl: 2h\ngemini:\n  meaning_language: Russian\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := load(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2*time.Hour, cfg.Quiz.SessionTTL)
	assert.Equal(t, "Russian", cfg.Gemini.MeaningLanguage)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
}

func TestLoad_MissingVariables(t *testing.T) {
	tests := []struct {
		name  string
		token string
		dsn   string
	}{
		{name: "no token", dsn: "postgres://localhost/vocab"},
		{name: "no database url", token: "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_API_TOKEN", tt.token)
			t.Setenv("DATABASE_URL", tt.dsn)

			_, err := load(t.TempDir())
			assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
		})
	}
}

func TestDB_DSN_Empty(t *testing.T) {
	t.Parallel()

	_, err := DB{}.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}
