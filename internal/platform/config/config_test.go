package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	Load()

	assert.Equal(t, "", AppConfig.APIPort, "explicitly empty values are kept")
	assert.Equal(t, 5, AppConfig.DBMaxOpenConns)
	assert.False(t, AppConfig.EnforcePermissions)
	assert.Equal(t, 500*time.Millisecond, AppConfig.SimulatorDelay)
	assert.Contains(t, AppConfig.DBConnStr, "dbname=incident_management")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_ENFORCE_PERMISSIONS", "true")
	t.Setenv("API_BASE_URL", "http://localhost:3000/api/")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SIMULATOR_DELAY_MS", "0")

	Load()

	assert.True(t, AppConfig.EnforcePermissions)
	assert.Equal(t, "http://localhost:3000/api", AppConfig.APIBaseURL)
	assert.Equal(t, slog.LevelDebug, AppConfig.LogLevel)
	assert.Equal(t, time.Duration(0), AppConfig.SimulatorDelay)
}
