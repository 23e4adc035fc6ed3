package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rickgao/trade-ingest/internal/config"
	"github.com/rickgao/trade-ingest/internal/metrics"
	"github.com/rickgao/trade-ingest/internal/supervisor"
	"github.com/rickgao/trade-ingest/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/ingestor.local.yaml", "path to service config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ingestor",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"trade_config_path", cfg.TradeConfigPath,
	)

	tradeCfg, err := config.LoadTradeConfig(cfg.TradeConfigPath)
	if err != nil {
		logger.Error("failed to load trade config", "error", err)
		os.Exit(1)
	}
	if err := tradeCfg.Validate(); err != nil {
		logger.Error("invalid trade config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("connecting to store")
	sup, err := supervisor.New(ctx, cfg, tradeCfg, cfg.TradeConfigPath, logger)
	if err != nil {
		logger.Error("failed to build supervisor", "error", err)
		os.Exit(1)
	}
	logger.Info("store connected")

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: createHealthHandler(sup, cfg, logger),
	}

	go func() {
		logger.Info("starting metrics/health server", "port", cfg.Metrics.Port)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	logger.Info("ingestor running",
		"instance_id", cfg.Instance.ID,
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port),
	)

	sup.Run(ctx)

	logger.Info("shutting down metrics server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	metricsServer.Shutdown(shutdownCtx)

	logger.Info("ingestor stopped")
}

// createHealthHandler creates the HTTP handler for health and metrics
// endpoints.
func createHealthHandler(sup *supervisor.Supervisor, cfg *config.ServiceConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		if err := sup.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		health.Components["counters"] = sup.Counter().Snapshot()

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	mux.Handle(cfg.Metrics.Path, metrics.Handler(sup.Registry))

	return mux
}
