package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
)

// HealthChecker reports the state of a backing service.
type HealthChecker interface {
	Health() map[string]string
}

type HealthHandler struct {
	db HealthChecker
}

func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns the database status map, 503 when the database is down
func (h *HealthHandler) Health(c *gin.Context) {
	stats := h.db.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}

// Healthcheck is the enveloped liveness probe
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	apperror.HandleSuccess(c, http.StatusOK, gin.H{"status": "ok"}, "OK")
}
