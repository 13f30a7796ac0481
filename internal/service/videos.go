package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/store"
)

type VideoService struct {
	videos VideoRepository
	log    *zap.Logger
}

func NewVideoService(videos VideoRepository, log *zap.Logger) *VideoService {
	return &VideoService{videos: videos, log: log}
}

// VideoListParams filter a video listing. A zero OwnerID lists every owner.
type VideoListParams struct {
	ListParams
	Query   string
	OwnerID uuid.UUID
}

// List returns the videos visible to viewer. Unknown owners and unmatched
// queries yield an empty list.
func (s *VideoService) List(ctx context.Context, viewer uuid.UUID, params VideoListParams) ([]models.VideoView, error) {
	sort, err := videoSorts.Resolve(params.SortBy, params.SortType)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.Search(ctx, store.VideoQuery{
		Viewer:  viewer,
		OwnerID: params.OwnerID,
		Text:    strings.TrimSpace(params.Query),
		Sort:    sort,
		Page:    params.page(),
	})
	if err != nil {
		return nil, storeError(err, "videos")
	}
	return videos, nil
}

func (s *VideoService) Publish(ctx context.Context, owner uuid.UUID, req models.PublishVideoRequest) (*models.Video, error) {
	video := &models.Video{
		OwnerID:     owner,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		VideoFile:   req.VideoFile,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
		IsPublished: true,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, storeError(err, "video")
	}
	return video, nil
}

// Get reads a video for viewer and then counts the view. A failure to count
// is logged and does not fail the read.
func (s *VideoService) Get(ctx context.Context, id, viewer uuid.UUID) (*models.VideoView, error) {
	video, err := s.videos.Detail(ctx, id, viewer)
	if err != nil {
		return nil, storeError(err, "video")
	}
	if err := s.videos.RecordView(ctx, id, viewer); err != nil {
		s.log.Warn("failed to record video view",
			zap.String("video_id", id.String()),
			zap.String("user_id", viewer.String()),
			zap.Error(err),
		)
	}
	return video, nil
}

func (s *VideoService) Update(ctx context.Context, id, actor uuid.UUID, req models.UpdateVideoRequest) (*models.Video, error) {
	return s.update(ctx, id, actor, map[string]interface{}{
		"title":       strings.TrimSpace(req.Title),
		"description": strings.TrimSpace(req.Description),
	})
}

func (s *VideoService) UpdateThumbnail(ctx context.Context, id, actor uuid.UUID, req models.UpdateThumbnailRequest) (*models.Video, error) {
	return s.update(ctx, id, actor, map[string]interface{}{"thumbnail": req.Thumbnail})
}

func (s *VideoService) update(ctx context.Context, id, actor uuid.UUID, fields map[string]interface{}) (*models.Video, error) {
	if err := s.authorize(ctx, id, actor, "edit this video"); err != nil {
		return nil, err
	}
	video, err := s.videos.Update(ctx, id, fields)
	if err != nil {
		return nil, storeError(err, "video")
	}
	return video, nil
}

// TogglePublish flips the video's visibility and returns the new state.
func (s *VideoService) TogglePublish(ctx context.Context, id, actor uuid.UUID) (bool, error) {
	if err := s.authorize(ctx, id, actor, "publish or unpublish this video"); err != nil {
		return false, err
	}
	published, err := s.videos.TogglePublish(ctx, id)
	if err != nil {
		return false, storeError(err, "video")
	}
	return published, nil
}

func (s *VideoService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.authorize(ctx, id, actor, "delete this video"); err != nil {
		return err
	}
	return storeError(s.videos.Delete(ctx, id), "video")
}

// History lists the videos the user watched, most recent first.
func (s *VideoService) History(ctx context.Context, user uuid.UUID, params ListParams) ([]models.WatchedVideo, error) {
	videos, err := s.videos.History(ctx, user, params.page())
	if err != nil {
		return nil, storeError(err, "watch history")
	}
	return videos, nil
}

func (s *VideoService) authorize(ctx context.Context, id, actor uuid.UUID, action string) error {
	video, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "video")
	}
	if video.OwnerID != actor {
		return forbidden(action)
	}
	return nil
}
