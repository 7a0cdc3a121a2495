package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const minimalYAML = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "hireflow"
  database: "hireflow"
  ssl_mode: "disable"
sendgrid:
  from_email: "no-reply@example.com"
jwt:
  secret: "test-secret-thats-at-least-32-chars!"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("DefaultsApplied", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalYAML))
		assert.NoError(t, err)

		assert.Equal(t, 10, cfg.Providers.TimeoutSeconds)
		assert.Equal(t, "https://api.zoom.us", cfg.Providers.Zoom.BaseURL)
		assert.Equal(t, "https://graph.microsoft.com", cfg.Providers.Teams.BaseURL)
		assert.Equal(t, 15, cfg.Dispatch.TimeoutSeconds)
		assert.Equal(t, "0 0 7 * * *", cfg.Scheduler.SendInterviewReminders)
		assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("ZOOM_ACCOUNT_ID", "acct-1")

		cfg, err := Load(writeConfig(t, minimalYAML))
		assert.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "acct-1", cfg.Providers.Zoom.AccountID)
	})

	t.Run("ShortJWTSecretRejected", func(t *testing.T) {
		content := strings.Replace(minimalYAML, "test-secret-thats-at-least-32-chars!", "short", 1)
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Database: "d", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@localhost:5432/d?sslmode=disable", cfg.GetDatabaseConnectionString())
}
