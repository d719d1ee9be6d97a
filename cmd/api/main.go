package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"sofia-assistant/config"
	_ "sofia-assistant/docs" // Swagger docs
	"sofia-assistant/internal/gateway"
	"sofia-assistant/internal/httpserver"
	"sofia-assistant/internal/knowledge"
	"sofia-assistant/internal/middleware"
	"sofia-assistant/internal/session"
	"sofia-assistant/internal/sofia/catalog"
	sofiaHTTP "sofia-assistant/internal/sofia/delivery/http"
	"sofia-assistant/internal/sofia/interpreter"
	"sofia-assistant/internal/sofia/usecase"
	"sofia-assistant/pkg/log"
	"sofia-assistant/pkg/sofiaai"
)

// @title       Sofia Assistant API
// @description Rule-based dialog command router with contextual suggestions and an AI generation gateway.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting Sofia Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant domain
	cat, err := catalog.New()
	if err != nil {
		logger.Error(ctx, "Failed to build action catalog: ", err)
		return
	}

	kb := knowledge.New()

	aiClient := sofiaai.NewClient(cfg.SofiaAI.BaseURL, cfg.SofiaAI.APIKey)
	if aiClient.Configured() {
		logger.Info(ctx, "Sofia AI provider configured")
	} else {
		logger.Warn(ctx, "Sofia AI provider not configured, gateway serves mock responses")
	}

	gw := gateway.New(aiClient, gateway.Config{
		RetryAttempts:      cfg.Gateway.RetryAttempts,
		RetryDelay:         cfg.Gateway.RetryDelay,
		MaxHistoryMessages: cfg.Gateway.MaxHistoryMessages,
	}, logger, nil)

	uc := usecase.New(logger, cat, kb, gw, interpreter.New())

	sessions := session.New(session.Config{
		Capacity:    cfg.Session.Capacity,
		TTL:         cfg.Session.TTL,
		MaxMessages: cfg.Session.MaxMessages,
	})

	sofiaHandler := sofiaHTTP.New(logger, uc, sessions)

	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		SofiaHandler: sofiaHandler,
		Middleware:   mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
