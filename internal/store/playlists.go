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

type PlaylistStore struct {
	db *gorm.DB
}

type playlistRow struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Owner       profile.Joined `gorm:"embedded;embeddedPrefix:owner__"`
}

type playlistVideoRow struct {
	Video      videoRow  `gorm:"embedded"`
	PlaylistID uuid.UUID `gorm:"column:entry__playlist_id"`
}

func (s *PlaylistStore) Create(ctx context.Context, p *models.Playlist) error {
	return translate(s.db.WithContext(ctx).Create(p).Error, "create playlist")
}

func (s *PlaylistStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Playlist, error) {
	var p models.Playlist
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find playlist")
	}
	return &p, nil
}

func (s *PlaylistStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Playlist, error) {
	var p models.Playlist
	res := s.db.WithContext(ctx).Model(&p).Clauses(clause.Returning{}).
		Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, translate(res.Error, "update playlist")
	}
	if res.RowsAffected == 0 {
		return nil, errors.Wrap(ErrNotFound, "update playlist")
	}
	return &p, nil
}

// Delete removes a playlist and its memberships.
func (s *PlaylistStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Playlist{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err, "delete playlist")
}

// AddVideo adds a video to a playlist. Adding a member again is a no-op.
func (s *PlaylistStore) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	entry := models.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
	return translate(err, "add playlist video")
}

// RemoveVideo removes a video from a playlist and reports whether it was a
// member.
func (s *PlaylistStore) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{})
	if res.Error != nil {
		return false, translate(res.Error, "remove playlist video")
	}
	return res.RowsAffected > 0, nil
}

// Detail reads a playlist with its owner and the member videos the viewer
// may see, in the order they were added.
func (s *PlaylistStore) Detail(ctx context.Context, id, viewer uuid.UUID) (*models.PlaylistView, error) {
	views, err := s.list(ctx, pipeline.Eq("playlists.id", id), viewer, nil, "playlist detail")
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errors.Wrap(ErrNotFound, "playlist detail")
	}
	return &views[0], nil
}

// ListByOwner lists a user's playlists, newest first, with their videos.
func (s *PlaylistStore) ListByOwner(ctx context.Context, ownerID, viewer uuid.UUID, page paging.Page) ([]models.PlaylistView, error) {
	return s.list(ctx, pipeline.Eq("playlists.owner_id", ownerID), viewer, &page, "list playlists")
}

func (s *PlaylistStore) list(ctx context.Context, match pipeline.Match, viewer uuid.UUID, page *paging.Page, op string) ([]models.PlaylistView, error) {
	p := pipeline.From("playlists",
		match,
		ownerLookup("owner", "owner_id"),
		pipeline.First{Lookup: "owner"},
		pipeline.Sort{Column: "playlists.created_at", Desc: true},
	)
	if page != nil {
		p = p.Then(pageStage(*page))
	}
	p = p.Then(pipeline.Project{Fields: []string{"id", "owner_id", "name", "description", "created_at", "updated_at"}})

	var rows []playlistRow
	if err := run(ctx, s.db, p, &rows, op); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.PlaylistView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	videos, err := s.videosOf(ctx, ids, viewer)
	if err != nil {
		return nil, err
	}

	out := make([]models.PlaylistView, 0, len(rows))
	for _, r := range rows {
		members := videos[r.ID]
		if members == nil {
			members = []models.VideoView{}
		}
		out = append(out, models.PlaylistView{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Owner:       r.Owner.Profile(),
			Videos:      members,
			TotalVideos: len(members),
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return out, nil
}

// videosOf reads the visible member videos of several playlists in one
// query, grouped by playlist.
func (s *PlaylistStore) videosOf(ctx context.Context, playlistIDs []uuid.UUID, viewer uuid.UUID) (map[uuid.UUID][]models.VideoView, error) {
	entry := pipeline.Lookup{
		From:         "playlist_videos",
		As:           "entry",
		LocalField:   "id",
		ForeignField: "video_id",
		Fields:       []string{"playlist_id", "added_at"},
		Where:        "playlist_id IN ?",
		Args:         []interface{}{playlistIDs},
		Mode:         pipeline.Unwind,
	}
	p := videoPipeline(viewer,
		[]pipeline.Stage{visibleTo(viewer)},
		[]pipeline.Stage{entry},
		[]pipeline.Stage{pipeline.First{Lookup: "entry"}},
	).Then(
		pipeline.Sort{Column: "entry.added_at"},
		pipeline.Project{Fields: videoColumns},
	)

	var rows []playlistVideoRow
	if err := run(ctx, s.db, p, &rows, "playlist videos"); err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]models.VideoView, len(playlistIDs))
	for _, r := range rows {
		grouped[r.PlaylistID] = append(grouped[r.PlaylistID], r.Video.view())
	}
	return grouped, nil
}
