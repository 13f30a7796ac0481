package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type LikeHandler struct {
	likes LikeService
}

func NewLikeHandler(likes LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, "videoId", models.VideoTarget)
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, "commentId", models.CommentTarget)
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, "tweetId", models.TweetTarget)
}

func (h *LikeHandler) toggle(c *gin.Context, param string, target func(uuid.UUID) models.LikeTarget) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, param)
	if !ok {
		return
	}

	t := target(id)
	engaged, err := h.likes.Toggle(c.Request.Context(), t, userID)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	message := "Like removed from " + string(t.Kind())
	if engaged {
		message = "Liked " + string(t.Kind())
	}
	apperror.HandleSuccess(c, http.StatusOK, gin.H{"engaged": engaged}, message)
}

// GetLikedVideos lists the videos the caller liked, most recent like first
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	videos, err := h.likes.LikedVideos(c.Request.Context(), userID, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
