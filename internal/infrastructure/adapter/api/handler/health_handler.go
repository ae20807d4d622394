package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/dto"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	database HealthChecker
	logger   coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(database HealthChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{database: database, logger: logger}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.database.Check(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
}
