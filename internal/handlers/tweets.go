package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type TweetHandler struct {
	tweets TweetService
}

func NewTweetHandler(tweets TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

func (h *TweetHandler) CreateTweet(c *gin.Context) {
	author, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.TweetRequest
	if !bindJSON(c, &input) {
		return
	}

	tweet, err := h.tweets.Create(c.Request.Context(), author, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// GetUserTweets lists a user's tweets with like counts
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	tweets, err := h.tweets.ListByUser(c.Request.Context(), userID, viewer, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "tweetId")
	if !ok {
		return
	}
	var input models.TweetRequest
	if !bindJSON(c, &input) {
		return
	}

	tweet, err := h.tweets.Update(c.Request.Context(), id, actor, input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "tweetId")
	if !ok {
		return
	}

	if err := h.tweets.Delete(c.Request.Context(), id, actor); err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, gin.H{}, "Tweet deleted successfully")
}
