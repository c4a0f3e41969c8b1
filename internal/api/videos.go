package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sfaram/vidgrid/internal/app"
	"github.com/sfaram/vidgrid/internal/catalog"
	"github.com/sfaram/vidgrid/internal/models"
)

// Request/Response DTOs

// VideoRequest represents a create/update request body
type VideoRequest struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// VideoListResponse represents the full catalog
type VideoListResponse struct {
	Items []models.Video `json:"items"`
	Total int            `json:"total"`
}

// CreateVideoResponse carries the store-assigned id of a new entry
type CreateVideoResponse struct {
	ID string `json:"id"`
}

// DeleteResponse represents a successful delete operation
type DeleteResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// VideoHandler handles the JSON catalog API
type VideoHandler struct {
	catalog *catalog.Client
}

// NewVideoHandler creates a new video handler instance
func NewVideoHandler(client *catalog.Client) *VideoHandler {
	return &VideoHandler{catalog: client}
}

// List handles GET /api/videos. Reads degrade: an unreachable store yields
// an empty catalog, not an error.
func (h *VideoHandler) List(c *gin.Context) {
	videos := h.catalog.ListVideos(c.Request.Context())
	c.JSON(http.StatusOK, VideoListResponse{
		Items: videos,
		Total: len(videos),
	})
}

// Get handles GET /api/videos/:id
func (h *VideoHandler) Get(c *gin.Context) {
	id := c.Param("id")
	for _, v := range h.catalog.ListVideos(c.Request.Context()) {
		if v.ID == id {
			c.JSON(http.StatusOK, v)
			return
		}
	}
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   "not_found",
		Message: "The requested video does not exist or has been removed",
	})
}

// Create handles POST /api/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	draft, err := app.ValidateDraft(models.VideoDraft{
		URL:       req.URL,
		Title:     req.Title,
		Category:  req.Category,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	id, err := h.catalog.CreateVideo(c.Request.Context(), draft)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateVideoResponse{ID: id})
}

// Update handles PUT /api/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	draft, err := app.ValidateDraft(models.VideoDraft{
		URL:       req.URL,
		Title:     req.Title,
		Category:  req.Category,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	if err := h.catalog.UpdateVideo(c.Request.Context(), c.Param("id"), draft); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video updated"})
}

// Delete handles DELETE /api/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Message: "Video deleted"})
}

// writeStoreError maps catalog write failures onto HTTP statuses.
func writeStoreError(c *gin.Context, err error) {
	switch {
	case catalog.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "The requested video does not exist",
		})
	case catalog.IsStoreUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "store_unavailable",
			Message: "The catalog store is not configured",
		})
	default:
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "write_failed",
			Message: err.Error(),
		})
	}
}

// RequireAdmin gates the mutating API routes behind the session login.
func RequireAdmin(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.App(c).Snapshot().LoggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "Admin login required",
			})
			return
		}
		c.Next()
	}
}

// SetupVideoRoutes registers the JSON catalog routes
func SetupVideoRoutes(apiGroup *gin.RouterGroup, client *catalog.Client, sessions *SessionManager) {
	handler := NewVideoHandler(client)
	apiGroup.GET("/videos", handler.List)
	apiGroup.GET("/videos/:id", handler.Get)

	gated := apiGroup.Group("", RequireAdmin(sessions))
	gated.POST("/videos", handler.Create)
	gated.PUT("/videos/:id", handler.Update)
	gated.DELETE("/videos/:id", handler.Delete)
}
