package models

import "github.com/google/uuid"

type Comment struct {
	Base
	VideoID uuid.UUID `gorm:"type:uuid;not null;index" json:"video_id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Content string    `gorm:"type:text;not null" json:"content"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,notblank,max=5000"`
}
