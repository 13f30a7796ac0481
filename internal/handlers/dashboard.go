package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
)

type DashboardHandler struct {
	dashboard DashboardService
}

func NewDashboardHandler(dashboard DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats returns totals for the caller's channel
func (h *DashboardHandler) GetStats(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.dashboard.Stats(c.Request.Context(), owner)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// GetVideos lists the caller's videos, unpublished ones included
func (h *DashboardHandler) GetVideos(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	videos, err := h.dashboard.Videos(c.Request.Context(), owner, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
