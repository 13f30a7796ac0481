package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/videotube/backend/internal/config"
	"github.com/emilythestrangee/videotube/backend/internal/handlers"
	"github.com/emilythestrangee/videotube/backend/internal/middleware"
)

type Server struct {
	cfg     config.Config
	log     *zap.Logger
	tokens  middleware.TokenVerifier
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer(cfg config.Config, log *zap.Logger, handler *handlers.Handler, tokens middleware.TokenVerifier) *http.Server {
	gin.SetMode(cfg.GinMode)
	handlers.RegisterValidators()

	newServer := &Server{
		cfg:     cfg,
		log:     log,
		tokens:  tokens,
		handler: handler,
	}

	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      newServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(s.log), middleware.RequestLogger(s.log))

	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := s.handler
	r.GET("/health", h.Health.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/healthcheck", h.Health.Healthcheck)
		api.POST("/users/register", h.Auth.Register)
		api.POST("/users/login", h.Auth.Login)

		protected := api.Group("")
		protected.Use(middleware.Auth(s.tokens))
		{
			users := protected.Group("/users")
			users.GET("/me", h.User.Me)
			users.GET("/c/:username", h.User.ChannelProfile)
			users.GET("/history", h.Video.History)

			videos := protected.Group("/videos")
			videos.GET("", h.Video.GetVideos)
			videos.POST("", h.Video.PublishVideo)
			videos.GET("/:videoId", h.Video.GetVideo)
			videos.PATCH("/:videoId", h.Video.UpdateVideo)
			videos.DELETE("/:videoId", h.Video.DeleteVideo)
			videos.PATCH("/:videoId/thumbnail", h.Video.UpdateThumbnail)
			videos.PATCH("/toggle/publish/:videoId", h.Video.TogglePublish)

			comments := protected.Group("/comments")
			comments.GET("/:videoId", h.Comment.GetComments)
			comments.POST("/:videoId", h.Comment.CreateComment)
			comments.PATCH("/c/:commentId", h.Comment.UpdateComment)
			comments.DELETE("/c/:commentId", h.Comment.DeleteComment)

			tweets := protected.Group("/tweets")
			tweets.POST("", h.Tweet.CreateTweet)
			tweets.GET("/user/:userId", h.Tweet.GetUserTweets)
			tweets.PATCH("/:tweetId", h.Tweet.UpdateTweet)
			tweets.DELETE("/:tweetId", h.Tweet.DeleteTweet)

			playlists := protected.Group("/playlists")
			playlists.POST("", h.Playlist.CreatePlaylist)
			playlists.GET("/:playlistId", h.Playlist.GetPlaylist)
			playlists.PATCH("/:playlistId", h.Playlist.UpdatePlaylist)
			playlists.DELETE("/:playlistId", h.Playlist.DeletePlaylist)
			playlists.PATCH("/add/:videoId/:playlistId", h.Playlist.AddVideo)
			playlists.PATCH("/remove/:videoId/:playlistId", h.Playlist.RemoveVideo)
			playlists.GET("/user/:userId", h.Playlist.GetUserPlaylists)

			likes := protected.Group("/likes")
			likes.POST("/toggle/v/:videoId", h.Like.ToggleVideoLike)
			likes.POST("/toggle/c/:commentId", h.Like.ToggleCommentLike)
			likes.POST("/toggle/t/:tweetId", h.Like.ToggleTweetLike)
			likes.GET("/videos", h.Like.GetLikedVideos)

			subscriptions := protected.Group("/subscriptions")
			subscriptions.POST("/c/:channelId", h.Subscription.ToggleSubscription)
			subscriptions.GET("/c/:channelId", h.Subscription.GetSubscribers)
			subscriptions.GET("/u/:subscriberId", h.Subscription.GetSubscribedChannels)

			dashboard := protected.Group("/dashboard")
			dashboard.GET("/stats", h.Dashboard.GetStats)
			dashboard.GET("/videos", h.Dashboard.GetVideos)
		}
	}

	return r
}
