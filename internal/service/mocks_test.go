package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/paging"
	"github.com/emilythestrangee/videotube/backend/internal/store"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*models.ChannelProfile, error) {
	args := m.Called(ctx, username, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChannelProfile), args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Search(ctx context.Context, q store.VideoQuery) ([]models.VideoView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.VideoView), args.Error(1)
}

func (m *MockVideoRepository) Detail(ctx context.Context, id, viewer uuid.UUID) (*models.VideoView, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VideoView), args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, v *models.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Video, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoRepository) TogglePublish(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) RecordView(ctx context.Context, videoID, userID uuid.UUID) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *MockVideoRepository) History(ctx context.Context, userID uuid.UUID, page paging.Page) ([]models.WatchedVideo, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]models.WatchedVideo), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID, viewer uuid.UUID, sort paging.Sort, page paging.Page) ([]models.CommentView, error) {
	args := m.Called(ctx, videoID, viewer, sort, page)
	return args.Get(0).([]models.CommentView), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, c *models.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerID, viewer uuid.UUID, sort paging.Sort, page paging.Page) ([]models.TweetView, error) {
	args := m.Called(ctx, ownerID, viewer, sort, page)
	return args.Get(0).([]models.TweetView), args.Error(1)
}

func (m *MockTweetRepository) Create(ctx context.Context, t *models.Tweet) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Tweet, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, p *models.Playlist) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Playlist, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) Detail(ctx context.Context, id, viewer uuid.UUID) (*models.PlaylistView, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaylistView), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerID, viewer uuid.UUID, page paging.Page) ([]models.PlaylistView, error) {
	args := m.Called(ctx, ownerID, viewer, page)
	return args.Get(0).([]models.PlaylistView), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, target models.LikeTarget, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, target, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) TargetExists(ctx context.Context, target models.LikeTarget, viewer uuid.UUID) (bool, error) {
	args := m.Called(ctx, target, viewer)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) LikedVideos(ctx context.Context, userID uuid.UUID, page paging.Page) ([]models.LikedVideo, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]models.LikedVideo), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	args := m.Called(ctx, channelID, subscriberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Subscribers(ctx context.Context, channelID, viewer uuid.UUID, page paging.Page) ([]models.SubscriptionView, error) {
	args := m.Called(ctx, channelID, viewer, page)
	return args.Get(0).([]models.SubscriptionView), args.Error(1)
}

func (m *MockSubscriptionRepository) Channels(ctx context.Context, subscriberID, viewer uuid.UUID, page paging.Page) ([]models.SubscriptionView, error) {
	args := m.Called(ctx, subscriberID, viewer, page)
	return args.Get(0).([]models.SubscriptionView), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*models.ChannelStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChannelStats), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
