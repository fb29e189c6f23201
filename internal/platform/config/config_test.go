package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/tea")
	t.Setenv("PORT", "")
	t.Setenv("LOCATION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/tea", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, "0 7 * * *", cfg.AlertScanCron)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("ALERT_SCAN_CRON", "")
	t.Setenv("LOCATION", "Asia/Colombo")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Empty(t, cfg.AlertScanCron)
	assert.Equal(t, "Asia/Colombo", cfg.Location.String())
}

func TestLoadConfig_InvalidLocation(t *testing.T) {
	t.Setenv("LOCATION", "Mars/Olympus")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "invalid LOCATION")
}
