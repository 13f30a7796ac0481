package models

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	Base
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `gorm:"not null" json:"video_file"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `gorm:"not null" json:"views"`
	IsPublished bool      `gorm:"not null;index" json:"is_published"`
}

// PublishVideoRequest carries the URLs of an already uploaded video.
type PublishVideoRequest struct {
	Title       string  `json:"title" binding:"required,notblank,max=200"`
	Description string  `json:"description" binding:"required,notblank"`
	VideoFile   string  `json:"video_file" binding:"required,url"`
	Thumbnail   string  `json:"thumbnail" binding:"required,url"`
	Duration    float64 `json:"duration" binding:"gte=0"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Description string `json:"description" binding:"required,notblank"`
}

type UpdateThumbnailRequest struct {
	Thumbnail string `json:"thumbnail" binding:"required,url"`
}

// WatchHistory records the last time a user watched a video.
type WatchHistory struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	VideoID   uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"video_id"`
	WatchedAt time.Time `gorm:"not null" json:"watched_at"`
}

func (WatchHistory) TableName() string { return "watch_history" }
