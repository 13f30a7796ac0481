package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) List(ctx context.Context, viewer uuid.UUID, params service.VideoListParams) ([]models.VideoView, error) {
	args := m.Called(ctx, viewer, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VideoView), args.Error(1)
}

func (m *MockVideoService) Publish(ctx context.Context, owner uuid.UUID, req models.PublishVideoRequest) (*models.Video, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) Get(ctx context.Context, id, viewer uuid.UUID) (*models.VideoView, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VideoView), args.Error(1)
}

func (m *MockVideoService) Update(ctx context.Context, id, actor uuid.UUID, req models.UpdateVideoRequest) (*models.Video, error) {
	args := m.Called(ctx, id, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) UpdateThumbnail(ctx context.Context, id, actor uuid.UUID, req models.UpdateThumbnailRequest) (*models.Video, error) {
	args := m.Called(ctx, id, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) TogglePublish(ctx context.Context, id, actor uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, actor)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *MockVideoService) History(ctx context.Context, user uuid.UUID, params service.ListParams) ([]models.WatchedVideo, error) {
	args := m.Called(ctx, user, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchedVideo), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context, videoID, viewer uuid.UUID, params service.ListParams) ([]models.CommentView, error) {
	args := m.Called(ctx, videoID, viewer, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentView), args.Error(1)
}

func (m *MockCommentService) Add(ctx context.Context, videoID, author uuid.UUID, req models.CommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, videoID, author, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, id, actor uuid.UUID, req models.CommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, id, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) Create(ctx context.Context, owner uuid.UUID, req models.PlaylistRequest) (*models.Playlist, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Get(ctx context.Context, id, viewer uuid.UUID) (*models.PlaylistView, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaylistView), args.Error(1)
}

func (m *MockPlaylistService) ListByUser(ctx context.Context, userID, viewer uuid.UUID, params service.ListParams) ([]models.PlaylistView, error) {
	args := m.Called(ctx, userID, viewer, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlaylistView), args.Error(1)
}

func (m *MockPlaylistService) Update(ctx context.Context, id, actor uuid.UUID, req models.PlaylistRequest) (*models.Playlist, error) {
	args := m.Called(ctx, id, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *MockPlaylistService) AddVideo(ctx context.Context, playlistID, videoID, actor uuid.UUID) (*models.PlaylistView, error) {
	args := m.Called(ctx, playlistID, videoID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaylistView), args.Error(1)
}

func (m *MockPlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, actor uuid.UUID) (*models.PlaylistView, error) {
	args := m.Called(ctx, playlistID, videoID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaylistView), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Toggle(ctx context.Context, target models.LikeTarget, user uuid.UUID) (bool, error) {
	args := m.Called(ctx, target, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeService) LikedVideos(ctx context.Context, user uuid.UUID, params service.ListParams) ([]models.LikedVideo, error) {
	args := m.Called(ctx, user, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LikedVideo), args.Error(1)
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Toggle(ctx context.Context, channel, subscriber uuid.UUID) (bool, error) {
	args := m.Called(ctx, channel, subscriber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionService) Subscribers(ctx context.Context, channel, viewer uuid.UUID, params service.ListParams) ([]models.SubscriptionView, error) {
	args := m.Called(ctx, channel, viewer, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubscriptionView), args.Error(1)
}

func (m *MockSubscriptionService) Channels(ctx context.Context, subscriber, viewer uuid.UUID, params service.ListParams) ([]models.SubscriptionView, error) {
	args := m.Called(ctx, subscriber, viewer, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubscriptionView), args.Error(1)
}
