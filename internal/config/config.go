package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	CO2DataPath         string
	TemperatureDataPath string
	// ZonesFile optionally replaces the built-in axis presets.
	ZonesFile string

	PNGWidth  int
	PNGHeight int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	pngWidth, err := parsePositiveInt("PNG_WIDTH", 1024)
	if err != nil {
		return nil, err
	}
	pngHeight, err := parsePositiveInt("PNG_HEIGHT", 512)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:            sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:            sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:     shutdownTimeout,
		CO2DataPath:         sharedcfg.EnvOrDefault("CO2_DATA_PATH", "monthly_in_situ_co2_mlo.csv"),
		TemperatureDataPath: sharedcfg.EnvOrDefault("TEMP_DATA_PATH", "NH.Ts+dSST.csv"),
		ZonesFile:           os.Getenv("ZONES_FILE"),
		PNGWidth:            pngWidth,
		PNGHeight:           pngHeight,
	}

	if cfg.CO2DataPath == "" {
		return nil, errors.New("CO2_DATA_PATH is required")
	}
	if cfg.TemperatureDataPath == "" {
		return nil, errors.New("TEMP_DATA_PATH is required")
	}

	return cfg, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
