package service

import (
	"context"

	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/paging"
)

func TestLikeToggle(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)
	user := uuid.New()
	target := models.VideoTarget(uuid.New())

	repo.On("TargetExists", mock.Anything, target, user).Return(true, nil)
	repo.On("Toggle", mock.Anything, target, user).Return(true, nil).Once()
	repo.On("Toggle", mock.Anything, target, user).Return(false, nil).Once()

	liked, err := svc.Toggle(context.Background(), target, user)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.Toggle(context.Background(), target, user)
	require.NoError(t, err)
	assert.False(t, liked)

	repo.AssertExpectations(t)
}

func TestLikeToggleMissingTarget(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)
	target := models.CommentTarget(uuid.New())

	repo.On("TargetExists", mock.Anything, target, mock.Anything).Return(false, nil)

	_, err := svc.Toggle(context.Background(), target, uuid.New())
	assert.Equal(t, apperror.ErrNotFound, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "comment not found")
	repo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeToggleHiddenVideo(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)
	viewer := uuid.New()
	target := models.VideoTarget(uuid.New())

	// the store reports an unpublished video of another owner as absent
	repo.On("TargetExists", mock.Anything, target, viewer).Return(false, nil)

	_, err := svc.Toggle(context.Background(), target, viewer)
	assert.Equal(t, apperror.ErrNotFound, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "video not found")
	repo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeToggleInvalidTarget(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)

	_, err := svc.Toggle(context.Background(), models.LikeTarget{}, uuid.New())
	assert.Equal(t, apperror.ErrInvalidReference, apperror.CodeOf(err))
	repo.AssertNotCalled(t, "TargetExists", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeToggleStorageFailure(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)
	target := models.TweetTarget(uuid.New())

	repo.On("TargetExists", mock.Anything, target, mock.Anything).Return(false, errors.New("connection reset"))

	_, err := svc.Toggle(context.Background(), target, uuid.New())
	assert.Equal(t, apperror.ErrDatabase, apperror.CodeOf(err))
}

func TestLikedVideosNormalizesPage(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)
	user := uuid.New()

	repo.On("LikedVideos", mock.Anything, user, paging.Page{Number: 2, Skip: 5, Limit: 5}).
		Return([]models.LikedVideo{}, nil)

	got, err := svc.LikedVideos(context.Background(), user, ListParams{Page: "2", Limit: "5"})
	require.NoError(t, err)
	assert.Empty(t, got)
	repo.AssertExpectations(t)
}
