package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
)

type SubscriptionHandler struct {
	subscriptions SubscriptionService
}

func NewSubscriptionHandler(subscriptions SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	subscriber, ok := currentUser(c)
	if !ok {
		return
	}
	channel, ok := pathID(c, "channelId")
	if !ok {
		return
	}

	subscribed, err := h.subscriptions.Toggle(c.Request.Context(), channel, subscriber)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}
	apperror.HandleSuccess(c, http.StatusOK, gin.H{"isSubscribed": subscribed}, message)
}

// GetSubscribers lists the users subscribed to a channel
func (h *SubscriptionHandler) GetSubscribers(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}
	channel, ok := pathID(c, "channelId")
	if !ok {
		return
	}

	subs, err := h.subscriptions.Subscribers(c.Request.Context(), channel, viewer, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, subs, "Subscribers fetched successfully")
}

// GetSubscribedChannels lists the channels a user subscribes to
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	viewer, ok := currentUser(c)
	if !ok {
		return
	}
	subscriber, ok := pathID(c, "subscriberId")
	if !ok {
		return
	}

	channels, err := h.subscriptions.Channels(c.Request.Context(), subscriber, viewer, listParams(c))
	if err != nil {
		apperror.HandleError(c, err)
		return
	}
	apperror.HandleSuccess(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
