package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/store"
)

type DashboardService struct {
	stats  StatsRepository
	videos VideoRepository
}

func NewDashboardService(stats StatsRepository, videos VideoRepository) *DashboardService {
	return &DashboardService{stats: stats, videos: videos}
}

func (s *DashboardService) Stats(ctx context.Context, owner uuid.UUID) (*models.ChannelStats, error) {
	stats, err := s.stats.Stats(ctx, owner)
	if err != nil {
		return nil, storeError(err, "channel stats")
	}
	return stats, nil
}

// Videos lists the owner's videos, published or not.
func (s *DashboardService) Videos(ctx context.Context, owner uuid.UUID, params ListParams) ([]models.VideoView, error) {
	sort, err := videoSorts.Resolve(params.SortBy, params.SortType)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.Search(ctx, store.VideoQuery{
		Viewer:  owner,
		OwnerID: owner,
		Sort:    sort,
		Page:    params.page(),
	})
	if err != nil {
		return nil, storeError(err, "videos")
	}
	return videos, nil
}
