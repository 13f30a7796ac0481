package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
)

type UserHandler struct {
	users ProfileService
}

func NewUserHandler(users ProfileService) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the authenticated user's account
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.users.Me(c.Request.Context(), userID)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, user, "Current user fetched successfully")
}

// ChannelProfile returns a channel's public profile with subscription counts
func (h *UserHandler) ChannelProfile(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}

	channel, err := h.users.ChannelProfile(c.Request.Context(), c.Param("username"), viewer)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, channel, "Channel profile fetched successfully")
}
