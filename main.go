package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/confersolutions/mcp-mortgage-server/internal/api"
	"github.com/confersolutions/mcp-mortgage-server/internal/config"
	"github.com/confersolutions/mcp-mortgage-server/internal/extractor"
	"github.com/confersolutions/mcp-mortgage-server/internal/fetcher"
	"github.com/confersolutions/mcp-mortgage-server/internal/tools"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	gateway := fetcher.New(fetcher.Config{
		AllowedDomains: cfg.AllowedDomains,
		MaxPDFSize:     cfg.MaxPDFSize,
		Timeout:        cfg.DownloadTimeout,
	})
	registry := tools.DefaultRegistry(gateway, extractor.ForMode(cfg.ExtractorMode))
	app := api.NewApp(cfg, registry, logger)

	go func() {
		logger.Info("server listening",
			"port", cfg.Port,
			"extractor_mode", cfg.ExtractorMode,
			"allowed_domains", cfg.AllowedDomains,
			"auth_enabled", cfg.APIKey != "")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
