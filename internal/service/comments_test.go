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
	"github.com/emilythestrangee/videotube/backend/internal/store"
)

func TestCommentList(t *testing.T) {
	comments, videos := new(MockCommentRepository), new(MockVideoRepository)
	svc := NewCommentService(comments, videos)
	videoID, viewer := uuid.New(), uuid.New()

	videos.On("Detail", mock.Anything, videoID, viewer).Return(&models.VideoView{ID: videoID}, nil)
	comments.On("ListByVideo", mock.Anything, videoID, viewer,
		paging.Sort{Column: "likes_count", Desc: true}, paging.Page{Number: 1, Skip: 0, Limit: 10}).
		Return([]models.CommentView{}, nil)

	got, err := svc.List(context.Background(), videoID, viewer, ListParams{SortBy: "likes", SortType: "desc"})
	require.NoError(t, err)
	assert.Empty(t, got)
	comments.AssertExpectations(t)
}

func TestCommentListHiddenVideo(t *testing.T) {
	comments, videos := new(MockCommentRepository), new(MockVideoRepository)
	svc := NewCommentService(comments, videos)
	videoID, viewer := uuid.New(), uuid.New()

	// unpublished videos of other owners are not found by the store
	videos.On("Detail", mock.Anything, videoID, viewer).
		Return(nil, errors.Wrap(store.ErrNotFound, "video detail"))

	_, err := svc.List(context.Background(), videoID, viewer, ListParams{})
	assert.Equal(t, apperror.ErrNotFound, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "video not found")
	comments.AssertNotCalled(t, "ListByVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentListUnknownSort(t *testing.T) {
	comments, videos := new(MockCommentRepository), new(MockVideoRepository)
	svc := NewCommentService(comments, videos)

	_, err := svc.List(context.Background(), uuid.New(), uuid.New(), ListParams{SortBy: "content"})
	assert.Equal(t, apperror.ErrInvalidReference, apperror.CodeOf(err))
	videos.AssertNotCalled(t, "Detail", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentUpdateOwnerOnly(t *testing.T) {
	comments, videos := new(MockCommentRepository), new(MockVideoRepository)
	svc := NewCommentService(comments, videos)
	id, owner := uuid.New(), uuid.New()

	comments.On("FindByID", mock.Anything, id).
		Return(&models.Comment{Base: models.Base{ID: id}, OwnerID: owner, Content: "hi"}, nil)
	comments.On("UpdateContent", mock.Anything, id, "edited").
		Return(&models.Comment{Base: models.Base{ID: id}, OwnerID: owner, Content: "edited"}, nil)

	_, err := svc.Update(context.Background(), id, uuid.New(), models.CommentRequest{Content: "edited"})
	assert.Equal(t, apperror.ErrForbidden, apperror.CodeOf(err))

	got, err := svc.Update(context.Background(), id, owner, models.CommentRequest{Content: "  edited "})
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
}
