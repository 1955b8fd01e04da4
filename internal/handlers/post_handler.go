package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Black-Room-Studios/livevibe-server/internal/assets"
	"github.com/Black-Room-Studios/livevibe-server/internal/models"
	"github.com/Black-Room-Studios/livevibe-server/internal/store"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postStore  *store.PostStore
	assetStore assets.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postStore *store.PostStore, assetStore assets.Store) *PostHandler {
	return &PostHandler{
		postStore:  postStore,
		assetStore: assetStore,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/post", h.CreatePost)
	g.GET("/posts", h.ListNearby)
	g.POST("/posts/:id/like", h.LikePost)
}

// CreatePost accepts a multipart form with an image and creates a post
func (h *PostHandler) CreatePost(c echo.Context) error {
	// Absent coordinates would bind to 0 and pass range validation, so
	// presence is checked on the raw form values.
	if c.FormValue("lat") == "" || c.FormValue("lng") == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lat and lng are required")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read image file")
	}
	defer src.Close()

	// A failed upload aborts post creation.
	imageURL, err := h.assetStore.Save(file.Filename, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post, err := h.postStore.Insert(store.InsertRequest{
		Caption:     req.Caption,
		AnonID:      req.AnonID,
		DisplayName: req.DisplayName,
		Lat:         req.Lat,
		Lng:         req.Lng,
		ImageURL:    imageURL,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "post": post})
}

// ListNearby returns all fresh posts within a radius of the caller's location
func (h *PostHandler) ListNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing lat")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing lng")
	}

	radius := store.DefaultRadiusMiles
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid radius")
		}
	}

	return c.JSON(http.StatusOK, h.postStore.Query(lat, lng, radius))
}

// LikePost records a like on a post, once per submitter
func (h *PostHandler) LikePost(c echo.Context) error {
	postID := c.Param("id")

	var req models.LikePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	likes, err := h.postStore.Like(postID, req.AnonID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		if errors.Is(err, store.ErrAlreadyLiked) {
			return echo.NewHTTPError(http.StatusBadRequest, "Post already liked by this user")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "likes": likes})
}
