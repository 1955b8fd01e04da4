package handlers

import (
	"net/http"

	"github.com/Black-Room-Studios/livevibe-server/internal/venues"
	"github.com/labstack/echo/v4"
)

// VenueHandler handles HTTP requests related to venues
type VenueHandler struct {
	scorer *venues.Scorer
}

// NewVenueHandler creates a new VenueHandler
func NewVenueHandler(scorer *venues.Scorer) *VenueHandler {
	return &VenueHandler{scorer: scorer}
}

// RegisterVenueRoutes registers venue-related routes
func (h *VenueHandler) RegisterVenueRoutes(g *echo.Group) {
	g.GET("/venues", h.ListVenuesScored)
}

// ListVenuesScored returns every venue with its current vibe score
func (h *VenueHandler) ListVenuesScored(c echo.Context) error {
	return c.JSON(http.StatusOK, h.scorer.ScoreVenues())
}
