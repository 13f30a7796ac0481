package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type CommentHandler struct {
	comments CommentService
}

func NewCommentHandler(comments CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// GetComments returns a page of a video's comments
func (h *CommentHandler) GetComments(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	comments, err := h.comments.List(c.Request.Context(), videoID, viewer, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	author, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}
	var input models.CommentRequest
	if !bindJSON(c, &input) {
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), videoID, author, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	var input models.CommentRequest
	if !bindJSON(c, &input) {
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), id, actor, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), id, actor); err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, gin.H{}, "Comment deleted successfully")
}
