package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "monthly_in_situ_co2_mlo.csv", cfg.CO2DataPath)
	assert.Equal(t, "NH.Ts+dSST.csv", cfg.TemperatureDataPath)
	assert.Empty(t, cfg.ZonesFile)
	assert.Equal(t, 1024, cfg.PNGWidth)
	assert.Equal(t, 512, cfg.PNGHeight)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("CO2_DATA_PATH", "/data/co2.csv")
	t.Setenv("TEMP_DATA_PATH", "/data/temp.csv")
	t.Setenv("ZONES_FILE", "/data/zones.yaml")
	t.Setenv("PNG_WIDTH", "800")
	t.Setenv("PNG_HEIGHT", "400")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/data/co2.csv", cfg.CO2DataPath)
	assert.Equal(t, "/data/temp.csv", cfg.TemperatureDataPath)
	assert.Equal(t, "/data/zones.yaml", cfg.ZonesFile)
	assert.Equal(t, 800, cfg.PNGWidth)
	assert.Equal(t, 400, cfg.PNGHeight)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidPNGSize(t *testing.T) {
	tests := map[string]string{
		"non numeric": "wide",
		"zero":        "0",
		"negative":    "-5",
	}
	for name, val := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("PNG_WIDTH", val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PNG_WIDTH")
		})
	}
}
