package router

import (
	"fmt"

	"github.com/Black-Room-Studios/livevibe-server/internal/assets"
	"github.com/Black-Room-Studios/livevibe-server/internal/handlers"
	"github.com/Black-Room-Studios/livevibe-server/internal/store"
	"github.com/Black-Room-Studios/livevibe-server/internal/venues"
	"github.com/Black-Room-Studios/livevibe-server/pkg/config"
	"github.com/Black-Room-Studios/livevibe-server/pkg/logger"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes wires the store, scheduler, venue scorer and handlers and
// registers all application routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, log logger.Logger) error {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Uploaded images are served straight off disk
	e.Static("/uploads", cfg.UploadDir)

	assetStore, err := assets.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize asset store: %w", err)
	}

	expiry := store.NewExpiryScheduler(store.TimerRunner{}, assetStore, log)
	postStore := store.NewPostStore(cfg.PostLifetime, expiry, assetStore, log)

	registry, err := venues.LoadRegistry(cfg.VenuesPath)
	if err != nil {
		return fmt.Errorf("failed to load venue registry: %w", err)
	}
	scorer := venues.NewScorer(postStore, registry)
	log.Info("Venue registry loaded.", "venues", len(registry))

	api := e.Group("/api")

	postHandler := handlers.NewPostHandler(postStore, assetStore)
	postHandler.RegisterPostRoutes(api)
	log.Info("Post routes configured.")

	venueHandler := handlers.NewVenueHandler(scorer)
	venueHandler.RegisterVenueRoutes(api)
	log.Info("Venue routes configured.")

	return nil
}
