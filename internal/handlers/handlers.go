package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/database"
	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/service"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Video        *VideoHandler
	Comment      *CommentHandler
	Tweet        *TweetHandler
	Playlist     *PlaylistHandler
	Like         *LikeHandler
	Subscription *SubscriptionHandler
	Dashboard    *DashboardHandler
	Health       *HealthHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(svc *service.Services, db database.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Users),
		User:         NewUserHandler(svc.Users),
		Video:        NewVideoHandler(svc.Videos),
		Comment:      NewCommentHandler(svc.Comments),
		Tweet:        NewTweetHandler(svc.Tweets),
		Playlist:     NewPlaylistHandler(svc.Playlists),
		Like:         NewLikeHandler(svc.Likes),
		Subscription: NewSubscriptionHandler(svc.Subscriptions),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Health:       NewHealthHandler(db),
	}
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}

type ProfileService interface {
	Me(ctx context.Context, id uuid.UUID) (*models.User, error)
	ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*models.ChannelProfile, error)
}

type VideoService interface {
	List(ctx context.Context, viewer uuid.UUID, params service.VideoListParams) ([]models.VideoView, error)
	Publish(ctx context.Context, owner uuid.UUID, req models.PublishVideoRequest) (*models.Video, error)
	Get(ctx context.Context, id, viewer uuid.UUID) (*models.VideoView, error)
	Update(ctx context.Context, id, actor uuid.UUID, req models.UpdateVideoRequest) (*models.Video, error)
	UpdateThumbnail(ctx context.Context, id, actor uuid.UUID, req models.UpdateThumbnailRequest) (*models.Video, error)
	TogglePublish(ctx context.Context, id, actor uuid.UUID) (bool, error)
	Delete(ctx context.Context, id, actor uuid.UUID) error
	History(ctx context.Context, user uuid.UUID, params service.ListParams) ([]models.WatchedVideo, error)
}

type CommentService interface {
	List(ctx context.Context, videoID, viewer uuid.UUID, params service.ListParams) ([]models.CommentView, error)
	Add(ctx context.Context, videoID, author uuid.UUID, req models.CommentRequest) (*models.Comment, error)
	Update(ctx context.Context, id, actor uuid.UUID, req models.CommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, id, actor uuid.UUID) error
}

type TweetService interface {
	Create(ctx context.Context, author uuid.UUID, req models.TweetRequest) (*models.Tweet, error)
	ListByUser(ctx context.Context, userID, viewer uuid.UUID, params service.ListParams) ([]models.TweetView, error)
	Update(ctx context.Context, id, actor uuid.UUID, req models.TweetRequest) (*models.Tweet, error)
	Delete(ctx context.Context, id, actor uuid.UUID) error
}

type PlaylistService interface {
	Create(ctx context.Context, owner uuid.UUID, req models.PlaylistRequest) (*models.Playlist, error)
	Get(ctx context.Context, id, viewer uuid.UUID) (*models.PlaylistView, error)
	ListByUser(ctx context.Context, userID, viewer uuid.UUID, params service.ListParams) ([]models.PlaylistView, error)
	Update(ctx context.Context, id, actor uuid.UUID, req models.PlaylistRequest) (*models.Playlist, error)
	Delete(ctx context.Context, id, actor uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID, actor uuid.UUID) (*models.PlaylistView, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actor uuid.UUID) (*models.PlaylistView, error)
}

type LikeService interface {
	Toggle(ctx context.Context, target models.LikeTarget, user uuid.UUID) (bool, error)
	LikedVideos(ctx context.Context, user uuid.UUID, params service.ListParams) ([]models.LikedVideo, error)
}

type SubscriptionService interface {
	Toggle(ctx context.Context, channel, subscriber uuid.UUID) (bool, error)
	Subscribers(ctx context.Context, channel, viewer uuid.UUID, params service.ListParams) ([]models.SubscriptionView, error)
	Channels(ctx context.Context, subscriber, viewer uuid.UUID, params service.ListParams) ([]models.SubscriptionView, error)
}

type DashboardService interface {
	Stats(ctx context.Context, owner uuid.UUID) (*models.ChannelStats, error)
	Videos(ctx context.Context, owner uuid.UUID, params service.ListParams) ([]models.VideoView, error)
}
