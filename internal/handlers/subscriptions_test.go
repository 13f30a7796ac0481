package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/service"
)

func subscriptionRouter(user uuid.UUID, subs *MockSubscriptionService) http.Handler {
	h := NewSubscriptionHandler(subs)
	r := newRouter(user)
	r.POST("/subscriptions/c/:channelId", h.ToggleSubscription)
	r.GET("/subscriptions/c/:channelId", h.GetSubscribers)
	r.GET("/subscriptions/u/:subscriberId", h.GetSubscribedChannels)
	return r
}

func TestToggleSubscription(t *testing.T) {
	user, channel := uuid.New(), uuid.New()
	subs := new(MockSubscriptionService)
	subs.On("Toggle", mock.Anything, channel, user).Return(true, nil).Once()
	subs.On("Toggle", mock.Anything, channel, user).Return(false, nil).Once()
	r := subscriptionRouter(user, subs)

	_, env := perform(t, r, http.MethodPost, "/subscriptions/c/"+channel.String(), nil)
	assert.JSONEq(t, `{"isSubscribed":true}`, string(env.Data))
	assert.Equal(t, "Subscribed successfully", env.Message)

	_, env = perform(t, r, http.MethodPost, "/subscriptions/c/"+channel.String(), nil)
	assert.JSONEq(t, `{"isSubscribed":false}`, string(env.Data))
	subs.AssertExpectations(t)
}

func TestToggleSubscriptionSelf(t *testing.T) {
	user := uuid.New()
	subs := new(MockSubscriptionService)
	subs.On("Toggle", mock.Anything, user, user).
		Return(false, apperror.New(apperror.ErrValidation, "cannot subscribe to your own channel"))

	w, env := perform(t, subscriptionRouter(user, subs), http.MethodPost, "/subscriptions/c/"+user.String(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.False(t, env.Success)
}

func TestSubscriptionLists(t *testing.T) {
	user, other := uuid.New(), uuid.New()
	subs := new(MockSubscriptionService)
	subs.On("Subscribers", mock.Anything, other, user, service.ListParams{}).
		Return([]models.SubscriptionView{{ID: uuid.New(), SubscribersCount: 4}}, nil)
	subs.On("Channels", mock.Anything, other, user, service.ListParams{Limit: "500"}).
		Return([]models.SubscriptionView{}, nil)
	r := subscriptionRouter(user, subs)

	w, env := perform(t, r, http.MethodGet, "/subscriptions/c/"+other.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"subscribers_count":4`)

	w, env = perform(t, r, http.MethodGet, "/subscriptions/u/"+other.String()+"?limit=500", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = perform(t, r, http.MethodGet, "/subscriptions/u/"+other.String()[:35], nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
