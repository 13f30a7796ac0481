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

type TweetStore struct {
	db *gorm.DB
}

type tweetRow struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LikesCount int64
	IsLiked    bool
	Owner      profile.Joined `gorm:"embedded;embeddedPrefix:owner__"`
}

func (s *TweetStore) ListByOwner(ctx context.Context, ownerID, viewer uuid.UUID, sort paging.Sort, page paging.Page) ([]models.TweetView, error) {
	p := pipeline.From("tweets",
		pipeline.Eq("tweets.owner_id", ownerID),
		likesLookup(models.TargetTweet),
		ownerLookup("owner", "owner_id"),
	).Then(engagement(viewer)...).Then(
		sortStage(sort),
		pageStage(page),
		pipeline.Project{Fields: tweetColumns},
	)

	var rows []tweetRow
	if err := run(ctx, s.db, p, &rows, "list tweets"); err != nil {
		return nil, err
	}
	out := make([]models.TweetView, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.TweetView{
			ID:        r.ID,
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

func (s *TweetStore) Create(ctx context.Context, t *models.Tweet) error {
	return translate(s.db.WithContext(ctx).Create(t).Error, "create tweet")
}

func (s *TweetStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error) {
	var t models.Tweet
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find tweet")
	}
	return &t, nil
}

func (s *TweetStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, s.db, &models.Tweet{}, id, "tweet exists")
}

func (s *TweetStore) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Tweet, error) {
	var t models.Tweet
	res := s.db.WithContext(ctx).Model(&t).Clauses(clause.Returning{}).
		Where("id = ?", id).Update("content", content)
	if res.Error != nil {
		return nil, translate(res.Error, "update tweet")
	}
	if res.RowsAffected == 0 {
		return nil, errors.Wrap(ErrNotFound, "update tweet")
	}
	return &t, nil
}

// Delete removes a tweet and the likes targeting it.
func (s *TweetStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteLikeable(ctx, s.db, models.TweetTarget(id), &models.Tweet{}, "delete tweet")
}
