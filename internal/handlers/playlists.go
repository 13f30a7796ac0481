package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type PlaylistHandler struct {
	playlists PlaylistService
}

func NewPlaylistHandler(playlists PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists}
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.PlaylistRequest
	if !bindJSON(c, &input) {
		return
	}

	playlist, err := h.playlists.Create(c.Request.Context(), owner, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// GetPlaylist returns a playlist with the videos the caller can see
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := h.playlists.Get(c.Request.Context(), id, viewer)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	playlists, err := h.playlists.ListByUser(c.Request.Context(), userID, viewer, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "playlistId")
	if !ok {
		return
	}
	var input models.PlaylistRequest
	if !bindJSON(c, &input) {
		return
	}

	playlist, err := h.playlists.Update(c.Request.Context(), id, actor, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "playlistId")
	if !ok {
		return
	}

	if err := h.playlists.Delete(c.Request.Context(), id, actor); err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, gin.H{}, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	actor, playlistID, videoID, ok := h.membership(c)
	if !ok {
		return
	}

	playlist, err := h.playlists.AddVideo(c.Request.Context(), playlistID, videoID, actor)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, playlist, "Video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	actor, playlistID, videoID, ok := h.membership(c)
	if !ok {
		return
	}

	playlist, err := h.playlists.RemoveVideo(c.Request.Context(), playlistID, videoID, actor)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, playlist, "Video removed from playlist")
}

func (h *PlaylistHandler) membership(c *gin.Context) (actor, playlistID, videoID uuid.UUID, ok bool) {
	if actor, ok = currentUser(c); !ok {
		return
	}
	if videoID, ok = pathID(c, "videoId"); !ok {
		return
	}
	playlistID, ok = pathID(c, "playlistId")
	return
}
