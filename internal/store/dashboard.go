package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type DashboardStore struct {
	db *gorm.DB
}

// Stats totals a channel's videos, views, video likes and subscribers.
func (s *DashboardStore) Stats(ctx context.Context, ownerID uuid.UUID) (*models.ChannelStats, error) {
	db := s.db.WithContext(ctx)
	var stats models.ChannelStats

	var videos struct {
		TotalVideos int64
		TotalViews  int64
	}
	err := db.Model(&models.Video{}).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views").
		Where("owner_id = ?", ownerID).
		Scan(&videos).Error
	if err != nil {
		return nil, translate(err, "video totals")
	}
	stats.TotalVideos = videos.TotalVideos
	stats.TotalViews = videos.TotalViews

	err = db.Model(&models.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_kind = ? AND videos.owner_id = ?", string(models.TargetVideo), ownerID).
		Count(&stats.TotalLikes).Error
	if err != nil {
		return nil, translate(err, "like totals")
	}

	err = db.Model(&models.Subscription{}).
		Where("channel_id = ?", ownerID).
		Count(&stats.TotalSubscribers).Error
	if err != nil {
		return nil, translate(err, "subscriber totals")
	}
	return &stats, nil
}
