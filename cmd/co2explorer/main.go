// Command co2explorer serves the CO2 linear model dashboard.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aouyang1/go-co2explorer"
	httpadapter "github.com/aouyang1/go-co2explorer/internal/adapter/http"
	"github.com/aouyang1/go-co2explorer/internal/config"
	"github.com/aouyang1/go-co2explorer/internal/observability"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	opt := co2explorer.NewDefaultOptions()
	opt.CO2Path = cfg.CO2DataPath
	opt.TemperaturePath = cfg.TemperatureDataPath
	if cfg.ZonesFile != "" {
		zones, err := co2explorer.LoadZonesFile(cfg.ZonesFile)
		if err != nil {
			logger.Error("failed to load zones", "path", cfg.ZonesFile, "error", err)
			os.Exit(1)
		}
		opt.Zones = zones
	}

	explorer, err := co2explorer.Load(opt)
	if err != nil {
		logger.Error("failed to load datasets", "error", err)
		os.Exit(1)
	}
	metrics.DatasetRows.WithLabelValues("co2").Set(float64(len(explorer.CO2())))
	metrics.DatasetRows.WithLabelValues("temperature").Set(float64(len(explorer.Temperature())))
	logger.Info("datasets loaded",
		"co2_rows", len(explorer.CO2()),
		"temperature_rows", len(explorer.Temperature()),
		"zones", len(explorer.Zones()),
	)

	srv := httpadapter.NewServer(cfg.HTTPAddr, explorer, metrics, logger,
		httpadapter.WithPNGSize(cfg.PNGWidth, cfg.PNGHeight),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
