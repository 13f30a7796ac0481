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

type VideoStore struct {
	db *gorm.DB
}

// videoRow is one row of a video pipeline.
type videoRow struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
	Duration    float64
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LikesCount  int64
	IsLiked     bool
	Owner       profile.Joined `gorm:"embedded;embeddedPrefix:owner__"`
}

func (r videoRow) view() models.VideoView {
	return models.VideoView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		VideoFile:   r.VideoFile,
		Thumbnail:   r.Thumbnail,
		Duration:    r.Duration,
		Views:       r.Views,
		IsPublished: r.IsPublished,
		Likes:       r.LikesCount,
		IsLiked:     r.IsLiked,
		Owner:       r.Owner.Profile(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func videoViews(rows []videoRow) []models.VideoView {
	out := make([]models.VideoView, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.view())
	}
	return out
}

// videoPipeline assembles a video read: match stages, then any extra lookups
// and derived values on top of the shared likes/owner stages.
func videoPipeline(viewer uuid.UUID, match []pipeline.Stage, lookups []pipeline.Stage, derived []pipeline.Stage) *pipeline.Pipeline {
	return pipeline.From("videos", match...).
		Then(lookups...).
		Then(likesLookup(models.TargetVideo), ownerLookup("owner", "owner_id")).
		Then(engagement(viewer)...).
		Then(derived...)
}

// VideoQuery selects videos for a listing.
type VideoQuery struct {
	Viewer  uuid.UUID
	OwnerID uuid.UUID
	Text    string
	Sort    paging.Sort
	Page    paging.Page
}

// Search lists the videos visible to the viewer, optionally restricted to one
// owner and to titles or descriptions containing Text.
func (s *VideoStore) Search(ctx context.Context, q VideoQuery) ([]models.VideoView, error) {
	match := []pipeline.Stage{visibleTo(q.Viewer)}
	if q.OwnerID != uuid.Nil {
		match = append(match, pipeline.Eq("videos.owner_id", q.OwnerID))
	}
	if q.Text != "" {
		pattern := "%" + escapeLike(q.Text) + "%"
		match = append(match, pipeline.Match{
			Where: "videos.title ILIKE ? OR videos.description ILIKE ?",
			Args:  []interface{}{pattern, pattern},
		})
	}

	p := videoPipeline(q.Viewer, match, nil, nil).Then(
		sortStage(q.Sort),
		pageStage(q.Page),
		pipeline.Project{Fields: videoColumns},
	)

	var rows []videoRow
	if err := run(ctx, s.db, p, &rows, "search videos"); err != nil {
		return nil, err
	}
	return videoViews(rows), nil
}

// Detail reads one video with its derived values. Unpublished videos are
// only found by their owner.
func (s *VideoStore) Detail(ctx context.Context, id, viewer uuid.UUID) (*models.VideoView, error) {
	match := []pipeline.Stage{pipeline.Eq("videos.id", id), visibleTo(viewer)}
	p := videoPipeline(viewer, match, nil, nil).Then(pipeline.Project{Fields: videoColumns})

	var rows []videoRow
	if err := run(ctx, s.db, p, &rows, "video detail"); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrNotFound, "video detail")
	}
	v := rows[0].view()
	return &v, nil
}

func (s *VideoStore) Create(ctx context.Context, v *models.Video) error {
	return translate(s.db.WithContext(ctx).Create(v).Error, "create video")
}

func (s *VideoStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	var v models.Video
	if err := s.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find video")
	}
	return &v, nil
}

// Exists reports whether a video with id exists, published or not.
func (s *VideoStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, s.db, &models.Video{}, id, "video exists")
}

// Update sets the given columns and returns the updated row.
func (s *VideoStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Video, error) {
	var v models.Video
	res := s.db.WithContext(ctx).Model(&v).Clauses(clause.Returning{}).
		Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, translate(res.Error, "update video")
	}
	if res.RowsAffected == 0 {
		return nil, errors.Wrap(ErrNotFound, "update video")
	}
	return &v, nil
}

// TogglePublish flips is_published in a single statement and returns the
// new value.
func (s *VideoStore) TogglePublish(ctx context.Context, id uuid.UUID) (bool, error) {
	var v models.Video
	res := s.db.WithContext(ctx).Model(&v).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "is_published"}}}).
		Where("id = ?", id).
		Update("is_published", gorm.Expr("NOT is_published"))
	if res.Error != nil {
		return false, translate(res.Error, "toggle publish")
	}
	if res.RowsAffected == 0 {
		return false, errors.Wrap(ErrNotFound, "toggle publish")
	}
	return v.IsPublished, nil
}

// Delete removes a video together with its comments, every like targeting
// the video or those comments, its playlist memberships and watch history.
func (s *VideoStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments := tx.Model(&models.Comment{}).Select("id").Where("video_id = ?", id)
		if err := tx.Where("target_kind = ? AND target_id IN (?)", string(models.TargetComment), comments).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_kind = ? AND target_id = ?", string(models.TargetVideo), id).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.WatchHistory{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Video{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err, "delete video")
}

// RecordView counts one view and moves the video to the top of the user's
// watch history. Anonymous views are counted only.
func (s *VideoStore) RecordView(ctx context.Context, videoID, userID uuid.UUID) error {
	db := s.db.WithContext(ctx)
	err := db.Model(&models.Video{}).Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return translate(err, "increment views")
	}
	if userID == uuid.Nil {
		return nil
	}

	entry := models.WatchHistory{UserID: userID, VideoID: videoID, WatchedAt: time.Now().UTC()}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
	}).Create(&entry).Error
	return translate(err, "record watch history")
}

type watchedRow struct {
	Video     videoRow  `gorm:"embedded"`
	WatchedAt time.Time `gorm:"column:history__watched_at"`
}

// History lists the videos the user watched, most recent first.
func (s *VideoStore) History(ctx context.Context, userID uuid.UUID, page paging.Page) ([]models.WatchedVideo, error) {
	history := pipeline.Lookup{
		From:         "watch_history",
		As:           "history",
		LocalField:   "id",
		ForeignField: "video_id",
		Fields:       []string{"watched_at"},
		Where:        "user_id = ?",
		Args:         []interface{}{userID},
		Mode:         pipeline.Unwind,
	}
	p := videoPipeline(userID,
		[]pipeline.Stage{visibleTo(userID)},
		[]pipeline.Stage{history},
		[]pipeline.Stage{pipeline.First{Lookup: "history"}},
	).Then(
		pipeline.Sort{Column: "history.watched_at", Desc: true},
		pageStage(page),
		pipeline.Project{Fields: videoColumns},
	)

	var rows []watchedRow
	if err := run(ctx, s.db, p, &rows, "watch history"); err != nil {
		return nil, err
	}
	out := make([]models.WatchedVideo, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.WatchedVideo{VideoView: r.Video.view(), WatchedAt: r.WatchedAt})
	}
	return out, nil
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID, op string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translate(err, op)
	}
	return count > 0, nil
}
