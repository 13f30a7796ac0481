package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type LikeService struct {
	likes LikeRepository
}

func NewLikeService(likes LikeRepository) *LikeService {
	return &LikeService{likes: likes}
}

// Toggle flips the user's like on the target and reports whether the user
// likes it afterwards.
func (s *LikeService) Toggle(ctx context.Context, target models.LikeTarget, user uuid.UUID) (bool, error) {
	if !target.Valid() {
		return false, apperror.New(apperror.ErrInvalidReference, "like target must be a video, comment or tweet")
	}
	ok, err := s.likes.TargetExists(ctx, target, user)
	if err != nil {
		return false, storeError(err, string(target.Kind()))
	}
	if !ok {
		return false, apperror.NotFound(string(target.Kind()))
	}

	liked, err := s.likes.Toggle(ctx, target, user)
	if err != nil {
		return false, storeError(err, "like")
	}
	return liked, nil
}

func (s *LikeService) LikedVideos(ctx context.Context, user uuid.UUID, params ListParams) ([]models.LikedVideo, error) {
	videos, err := s.likes.LikedVideos(ctx, user, params.page())
	if err != nil {
		return nil, storeError(err, "liked videos")
	}
	return videos, nil
}
