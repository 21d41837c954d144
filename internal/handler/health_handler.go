package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	readinessProbe func() error
}

// NewHealthHandler creates a new HealthHandler. readinessProbe may be nil
// when the service has no external dependency worth gating readiness on.
func NewHealthHandler(readinessProbe func() error) *HealthHandler {
	return &HealthHandler{readinessProbe: readinessProbe}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.readinessProbe != nil {
		if err := h.readinessProbe(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
