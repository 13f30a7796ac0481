// Package service holds the business rules between the HTTP handlers and the
// store: ownership, existence and visibility checks, list policies and the
// translation of storage errors into application errors.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/paging"
	"github.com/emilythestrangee/videotube/backend/internal/store"
)

// ListParams are the raw paging and sorting query values of a list request.
type ListParams struct {
	Page     string
	Limit    string
	SortBy   string
	SortType string
}

func (p ListParams) page() paging.Page {
	return paging.Normalize(p.Page, p.Limit)
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*models.ChannelProfile, error)
}

type VideoRepository interface {
	Search(ctx context.Context, q store.VideoQuery) ([]models.VideoView, error)
	Detail(ctx context.Context, id, viewer uuid.UUID) (*models.VideoView, error)
	Create(ctx context.Context, v *models.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Video, error)
	TogglePublish(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecordView(ctx context.Context, videoID, userID uuid.UUID) error
	History(ctx context.Context, userID uuid.UUID, page paging.Page) ([]models.WatchedVideo, error)
}

type CommentRepository interface {
	ListByVideo(ctx context.Context, videoID, viewer uuid.UUID, sort paging.Sort, page paging.Page) ([]models.CommentView, error)
	Create(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TweetRepository interface {
	ListByOwner(ctx context.Context, ownerID, viewer uuid.UUID, sort paging.Sort, page paging.Page) ([]models.TweetView, error)
	Create(ctx context.Context, t *models.Tweet) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PlaylistRepository interface {
	Create(ctx context.Context, p *models.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Playlist, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
	Detail(ctx context.Context, id, viewer uuid.UUID) (*models.PlaylistView, error)
	ListByOwner(ctx context.Context, ownerID, viewer uuid.UUID, page paging.Page) ([]models.PlaylistView, error)
}

type LikeRepository interface {
	Toggle(ctx context.Context, target models.LikeTarget, userID uuid.UUID) (bool, error)
	TargetExists(ctx context.Context, target models.LikeTarget, viewer uuid.UUID) (bool, error)
	LikedVideos(ctx context.Context, userID uuid.UUID, page paging.Page) ([]models.LikedVideo, error)
}

type SubscriptionRepository interface {
	Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error)
	Subscribers(ctx context.Context, channelID, viewer uuid.UUID, page paging.Page) ([]models.SubscriptionView, error)
	Channels(ctx context.Context, subscriberID, viewer uuid.UUID, page paging.Page) ([]models.SubscriptionView, error)
}

type StatsRepository interface {
	Stats(ctx context.Context, ownerID uuid.UUID) (*models.ChannelStats, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

type Services struct {
	Users         *UserService
	Videos        *VideoService
	Comments      *CommentService
	Tweets        *TweetService
	Playlists     *PlaylistService
	Likes         *LikeService
	Subscriptions *SubscriptionService
	Dashboard     *DashboardService
}

func New(st *store.Store, tokens TokenIssuer, log *zap.Logger) *Services {
	return &Services{
		Users:         NewUserService(st.Users, tokens),
		Videos:        NewVideoService(st.Videos, log),
		Comments:      NewCommentService(st.Comments, st.Videos),
		Tweets:        NewTweetService(st.Tweets),
		Playlists:     NewPlaylistService(st.Playlists, st.Videos),
		Likes:         NewLikeService(st.Likes),
		Subscriptions: NewSubscriptionService(st.Subscriptions, st.Users),
		Dashboard:     NewDashboardService(st.Dashboard, st.Videos),
	}
}

// storeError converts a store error into an AppError. what names the entity
// in NotFound and Conflict messages.
func storeError(err error, what string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperror.NotFound(what)
	case errors.Is(err, store.ErrDuplicate):
		return apperror.New(apperror.ErrConflict, what+" already exists")
	}
	return apperror.Wrap(apperror.ErrDatabase, "database error", err)
}

func forbidden(action string) error {
	return apperror.Forbidden("only the owner can " + action)
}
