package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg, err := InitConfig(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "poputchik", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://fastapi.nl.tuna.am", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, DefaultCities, cfg.Search.Cities)
	assert.Equal(t, 1500*time.Millisecond, cfg.Extractor.Delay)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8000")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOGGER_LEVEL", "debug")

	cfg, err := InitConfig(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestInitConfig_LogLevelAlias(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := InitConfig(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestInitConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poputchik.yaml")
	content := []byte(`
api:
  base_url: https://trips.example.com
display:
  timezone: Asia/Yekaterinburg
search:
  cities: [Уфа, Орск]
extractor:
  delay: 10ms
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := InitConfig(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "https://trips.example.com", cfg.API.BaseURL)
	assert.Equal(t, "Asia/Yekaterinburg", cfg.Display.Timezone)
	assert.Equal(t, []string{"Уфа", "Орск"}, cfg.Search.Cities)
	assert.Equal(t, 10*time.Millisecond, cfg.Extractor.Delay)
	// untouched keys keep defaults
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestInitConfig_MissingFile(t *testing.T) {
	_, err := InitConfig(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	loc, err := Location(models.DisplayConfig{Timezone: ""})
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = Location(models.DisplayConfig{Timezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	loc, err = Location(models.DisplayConfig{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
	assert.Equal(t, time.Local, loc)
}
