package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emilythestrangee/videotube/backend/internal/config"
	"github.com/emilythestrangee/videotube/backend/internal/handlers"
)

type upDatabase struct{}

func (upDatabase) Health() map[string]string { return map[string]string{"status": "up"} }

type rejectAll struct{}

func (rejectAll) Verify(string) (uuid.UUID, error) { return uuid.Nil, errors.New("no") }

func testServer(t *testing.T) http.Handler {
	t.Helper()
	h := &handlers.Handler{
		Auth:         handlers.NewAuthHandler(nil),
		User:         handlers.NewUserHandler(nil),
		Video:        handlers.NewVideoHandler(nil),
		Comment:      handlers.NewCommentHandler(nil),
		Tweet:        handlers.NewTweetHandler(nil),
		Playlist:     handlers.NewPlaylistHandler(nil),
		Like:         handlers.NewLikeHandler(nil),
		Subscription: handlers.NewSubscriptionHandler(nil),
		Dashboard:    handlers.NewDashboardHandler(nil),
		Health:       handlers.NewHealthHandler(upDatabase{}),
	}
	cfg := config.Config{Port: "0", GinMode: gin.TestMode, CORSOrigins: []string{"https://app.example.com"}}
	return NewServer(cfg, zap.NewNop(), h, rejectAll{}).Handler
}

func TestPublicRoutes(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, true, env["success"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := testServer(t)
	id := uuid.NewString()

	routes := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/v1/likes/toggle/v/" + id},
		{http.MethodPost, "/api/v1/likes/toggle/c/" + id},
		{http.MethodPost, "/api/v1/likes/toggle/t/" + id},
		{http.MethodGet, "/api/v1/likes/videos"},
		{http.MethodPost, "/api/v1/subscriptions/c/" + id},
		{http.MethodGet, "/api/v1/subscriptions/c/" + id},
		{http.MethodGet, "/api/v1/subscriptions/u/" + id},
		{http.MethodGet, "/api/v1/comments/" + id},
		{http.MethodPatch, "/api/v1/comments/c/" + id},
		{http.MethodGet, "/api/v1/videos"},
		{http.MethodPatch, "/api/v1/videos/toggle/publish/" + id},
		{http.MethodPatch, "/api/v1/videos/" + id + "/thumbnail"},
		{http.MethodGet, "/api/v1/tweets/user/" + id},
		{http.MethodPatch, "/api/v1/playlists/add/" + id + "/" + id},
		{http.MethodGet, "/api/v1/playlists/user/" + id},
		{http.MethodGet, "/api/v1/users/c/gopher"},
		{http.MethodGet, "/api/v1/users/history"},
		{http.MethodGet, "/api/v1/dashboard/stats"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			req.Header.Set("Authorization", "Bearer whatever")
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/videos", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
