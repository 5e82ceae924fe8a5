package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/enesozmus/betterrest/config"
	_ "github.com/enesozmus/betterrest/docs" // Swagger docs
	"github.com/enesozmus/betterrest/internal/httpserver"
	"github.com/enesozmus/betterrest/internal/middleware"
	"github.com/enesozmus/betterrest/internal/sleep/repository/artifact"
	"github.com/enesozmus/betterrest/pkg/log"
)

// @title       BetterRest API
// @description Bedtime recommendations from a pre-trained sleep regression model.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting BetterRest...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Model artifact: %s", cfg.Model.Path)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Model: artifact.Config{
			Path:      cfg.Model.Path,
			CacheSize: cfg.Model.CacheSize,
			CacheTTL:  cfg.Model.CacheTTL,
		},
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
