package main

import (
	"log"

	"github.com/Black-Room-Studios/livevibe-server/internal/router"
	"github.com/Black-Room-Studios/livevibe-server/pkg/config"
	"github.com/Black-Room-Studios/livevibe-server/pkg/logger"
	"github.com/Black-Room-Studios/livevibe-server/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zaplogger, err := logger.NewZapLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zaplogger.Sync()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, zaplogger); err != nil {
		zaplogger.Error("Failed to set up routes", "err", err)
		return
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
