package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/paging"
	"github.com/emilythestrangee/videotube/backend/internal/pipeline"
	"github.com/emilythestrangee/videotube/backend/internal/profile"
)

type CommentStore struct {
	db *gorm.DB
}

type commentRow struct {
	ID         uuid.UUID
	VideoID    uuid.UUID
	OwnerID    uuid.UUID
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LikesCount int64
	IsLiked    bool
	Owner      profile.Joined `gorm:"embedded;embeddedPrefix:owner__"`
}

// ListByVideo lists a video's comments with like counts, the viewer's like
// flag and the commenter's public profile.
func (s *CommentStore) ListByVideo(ctx context.Context, videoID, viewer uuid.UUID, sort paging.Sort, page paging.Page) ([]models.CommentView, error) {
	p := pipeline.From("comments",
		pipeline.Eq("comments.video_id", videoID),
		likesLookup(models.TargetComment),
		ownerLookup("owner", "owner_id"),
	).Then(engagement(viewer)...).Then(
		sortStage(sort),
		pageStage(page),
		pipeline.Project{Fields: commentColumns},
	)

	var rows []commentRow
	if err := run(ctx, s.db, p, &rows, "list comments"); err != nil {
		return nil, err
	}
	out := make([]models.CommentView, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.CommentView{
			ID:        r.ID,
			VideoID:   r.VideoID,
			Content:   r.Content,
			Likes:     r.LikesCount,
			IsLiked:   r.IsLiked,
			Owner:     r.Owner.Profile(),
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

func (s *CommentStore) Create(ctx context.Context, c *models.Comment) error {
	return translate(s.db.WithContext(ctx).Create(c).Error, "create comment")
}

func (s *CommentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var c models.Comment
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find comment")
	}
	return &c, nil
}

func (s *CommentStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, s.db, &models.Comment{}, id, "comment exists")
}

func (s *CommentStore) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	var c models.Comment
	res := s.db.WithContext(ctx).Model(&c).Clauses(clause.Returning{}).
		Where("id = ?", id).Update("content", content)
	if res.Error != nil {
		return nil, translate(res.Error, "update comment")
	}
	if res.RowsAffected == 0 {
		return nil, errors.Wrap(ErrNotFound, "update comment")
	}
	return &c, nil
}

// Delete removes a comment and the likes targeting it.
func (s *CommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteLikeable(ctx, s.db, models.CommentTarget(id), &models.Comment{}, "delete comment")
}

// deleteLikeable deletes one likeable row and the likes targeting it in a
// single transaction.
func deleteLikeable(ctx context.Context, db *gorm.DB, target models.LikeTarget, model interface{}, op string) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", string(target.Kind()), target.ID()).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", target.ID()).Delete(model)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err, op)
}
