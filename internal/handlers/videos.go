package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/ids"
	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/service"
)

type VideoHandler struct {
	videos VideoService
}

func NewVideoHandler(videos VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

// GetVideos lists published videos, optionally scoped to one owner and
// filtered by a text query
func (h *VideoHandler) GetVideos(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}

	params := service.VideoListParams{
		ListParams: listParams(c),
		Query:      c.Query("query"),
	}
	if raw := c.Query("userId"); raw != "" {
		owner, err := ids.Parse("userId", raw)
		if err != nil {
			apperror.HandleError(c, err)
			return
		}
		params.OwnerID = owner
	}

	videos, err := h.videos.List(c.Request.Context(), viewer, params)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, videos, "Videos fetched successfully")
}

// PublishVideo stores a video whose files were already uploaded
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.PublishVideoRequest
	if !bindJSON(c, &input) {
		return
	}

	video, err := h.videos.Publish(c.Request.Context(), owner, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusCreated, video, "Video published successfully")
}

// GetVideo returns a single video and counts the view
func (h *VideoHandler) GetVideo(c *gin.Context) {
	viewer, id, ok := h.actorAndVideo(c)
	if !ok {
		return
	}

	video, err := h.videos.Get(c.Request.Context(), id, viewer)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, video, "Video fetched successfully")
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	actor, id, ok := h.actorAndVideo(c)
	if !ok {
		return
	}
	var input models.UpdateVideoRequest
	if !bindJSON(c, &input) {
		return
	}

	video, err := h.videos.Update(c.Request.Context(), id, actor, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) UpdateThumbnail(c *gin.Context) {
	actor, id, ok := h.actorAndVideo(c)
	if !ok {
		return
	}
	var input models.UpdateThumbnailRequest
	if !bindJSON(c, &input) {
		return
	}

	video, err := h.videos.UpdateThumbnail(c.Request.Context(), id, actor, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, video, "Thumbnail updated successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	actor, id, ok := h.actorAndVideo(c)
	if !ok {
		return
	}

	published, err := h.videos.TogglePublish(c.Request.Context(), id, actor)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	message := "Video unpublished"
	if published {
		message = "Video published"
	}
	apperror.HandleSuccess(c, http.StatusOK, gin.H{"isPublished": published}, message)
}

// DeleteVideo removes a video with its comments, likes and playlist entries
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	actor, id, ok := h.actorAndVideo(c)
	if !ok {
		return
	}

	if err := h.videos.Delete(c.Request.Context(), id, actor); err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, gin.H{}, "Video deleted successfully")
}

// History lists the videos the caller watched, most recent first
func (h *VideoHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	videos, err := h.videos.History(c.Request.Context(), userID, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, videos, "Watch history fetched successfully")
}

func (h *VideoHandler) actorAndVideo(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	actor, ok := currentUser(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, ok := pathID(c, "videoId")
	return actor, id, ok
}
