package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/paging"
	"github.com/emilythestrangee/videotube/backend/internal/pipeline"
	"github.com/emilythestrangee/videotube/backend/internal/relation"
)

type LikeStore struct {
	db     *gorm.DB
	engine *relation.Engine
}

// Toggle likes the target if the user does not like it yet, and unlikes it
// otherwise. It returns whether the user likes the target afterwards.
func (s *LikeStore) Toggle(ctx context.Context, target models.LikeTarget, userID uuid.UUID) (bool, error) {
	liked, err := s.engine.Toggle(ctx, relation.Like(target, userID))
	if err != nil {
		return false, translate(err, "toggle like")
	}
	return liked, nil
}

func (s *LikeStore) IsLiked(ctx context.Context, target models.LikeTarget, userID uuid.UUID) (bool, error) {
	liked, err := s.engine.Exists(ctx, relation.Like(target, userID))
	if err != nil {
		return false, translate(err, "check like")
	}
	return liked, nil
}

// Count returns the number of likes on the target.
func (s *LikeStore) Count(ctx context.Context, target models.LikeTarget) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("target_kind = ? AND target_id = ?", string(target.Kind()), target.ID()).
		Count(&n).Error
	return n, translate(err, "count likes")
}

// TargetExists reports whether the liked content exists and the viewer may
// see it. Videos, and comments through their video, are visible when
// published or owned by the viewer.
func (s *LikeStore) TargetExists(ctx context.Context, target models.LikeTarget, viewer uuid.UUID) (bool, error) {
	visible := visibleTo(viewer)
	db := s.db.WithContext(ctx)

	var q *gorm.DB
	switch target.Kind() {
	case models.TargetVideo:
		q = db.Model(&models.Video{}).Where("videos.id = ?", target.ID())
	case models.TargetComment:
		q = db.Model(&models.Comment{}).
			Joins("JOIN videos ON videos.id = comments.video_id").
			Where("comments.id = ?", target.ID())
	case models.TargetTweet:
		return exists(ctx, s.db, &models.Tweet{}, target.ID(), "like target exists")
	default:
		return false, errors.Errorf("unknown like target kind %q", target.Kind())
	}

	var n int64
	if err := q.Where(visible.Where, visible.Args...).Count(&n).Error; err != nil {
		return false, translate(err, "like target exists")
	}
	return n > 0, nil
}

type likedRow struct {
	Video   videoRow  `gorm:"embedded"`
	LikedAt time.Time `gorm:"column:liked__created_at"`
}

// LikedVideos lists the visible videos the user likes, most recently liked
// first, each with its live like count.
func (s *LikeStore) LikedVideos(ctx context.Context, userID uuid.UUID, page paging.Page) ([]models.LikedVideo, error) {
	liked := pipeline.Lookup{
		From:         "likes",
		As:           "liked",
		LocalField:   "id",
		ForeignField: "target_id",
		Fields:       []string{"created_at"},
		Where:        "target_kind = ? AND liked_by_id = ?",
		Args:         []interface{}{string(models.TargetVideo), userID},
		Mode:         pipeline.Unwind,
	}
	p := videoPipeline(userID,
		[]pipeline.Stage{visibleTo(userID)},
		[]pipeline.Stage{liked},
		[]pipeline.Stage{pipeline.First{Lookup: "liked"}},
	).Then(
		pipeline.Sort{Column: "liked.created_at", Desc: true},
		pageStage(page),
		pipeline.Project{Fields: videoColumns},
	)

	var rows []likedRow
	if err := run(ctx, s.db, p, &rows, "liked videos"); err != nil {
		return nil, err
	}
	out := make([]models.LikedVideo, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.LikedVideo{VideoView: r.Video.view(), LikedAt: r.LikedAt})
	}
	return out, nil
}
