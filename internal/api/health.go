package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sfaram/vidgrid/internal/catalog"
)

// HealthResponse represents the response from the health check endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Time   string `json:"time"`
	Detail string `json:"detail,omitempty"`
}

// HealthHandler handles health check requests
type HealthHandler struct {
	catalog *catalog.Client
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(client *catalog.Client) *HealthHandler {
	return &HealthHandler{catalog: client}
}

// Check handles the health check endpoint. An unreachable store degrades the
// report but the process itself stays healthy, mirroring the read policy.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.catalog.Health(ctx); err != nil {
		response.Status = "degraded"
		response.Store = "unreachable"
		response.Detail = err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response.Store = "healthy"
	c.JSON(http.StatusOK, response)
}

// SetupHealthRoutes registers health check routes
func SetupHealthRoutes(apiGroup *gin.RouterGroup, client *catalog.Client) {
	handler := NewHealthHandler(client)
	apiGroup.GET("/health", handler.Check)
}
