package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type CommentService struct {
	comments CommentRepository
	videos   VideoRepository
}

func NewCommentService(comments CommentRepository, videos VideoRepository) *CommentService {
	return &CommentService{comments: comments, videos: videos}
}

// List returns a page of the comments on a video the viewer can see. A
// video without comments yields an empty list.
func (s *CommentService) List(ctx context.Context, videoID, viewer uuid.UUID, params ListParams) ([]models.CommentView, error) {
	sort, err := commentSorts.Resolve(params.SortBy, params.SortType)
	if err != nil {
		return nil, err
	}
	if _, err := s.videos.Detail(ctx, videoID, viewer); err != nil {
		return nil, storeError(err, "video")
	}
	comments, err := s.comments.ListByVideo(ctx, videoID, viewer, sort, params.page())
	if err != nil {
		return nil, storeError(err, "comments")
	}
	return comments, nil
}

// Add comments on a video the author can see.
func (s *CommentService) Add(ctx context.Context, videoID, author uuid.UUID, req models.CommentRequest) (*models.Comment, error) {
	if _, err := s.videos.Detail(ctx, videoID, author); err != nil {
		return nil, storeError(err, "video")
	}
	comment := &models.Comment{
		VideoID: videoID,
		OwnerID: author,
		Content: strings.TrimSpace(req.Content),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, storeError(err, "comment")
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, id, actor uuid.UUID, req models.CommentRequest) (*models.Comment, error) {
	if err := s.authorize(ctx, id, actor, "edit this comment"); err != nil {
		return nil, err
	}
	comment, err := s.comments.UpdateContent(ctx, id, strings.TrimSpace(req.Content))
	if err != nil {
		return nil, storeError(err, "comment")
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.authorize(ctx, id, actor, "delete this comment"); err != nil {
		return err
	}
	return storeError(s.comments.Delete(ctx, id), "comment")
}

func (s *CommentService) authorize(ctx context.Context, id, actor uuid.UUID, action string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "comment")
	}
	if comment.OwnerID != actor {
		return forbidden(action)
	}
	return nil
}
