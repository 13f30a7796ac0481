package models

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	Base
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
}

// PlaylistVideo is one membership row. The composite key gives set
// semantics: a video appears in a playlist at most once.
type PlaylistVideo struct {
	PlaylistID uuid.UUID `gorm:"type:uuid;primaryKey" json:"playlist_id"`
	VideoID    uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"video_id"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`
}

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Description string `json:"description" binding:"required,notblank"`
}
