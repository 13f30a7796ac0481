package models

import "github.com/google/uuid"

type Tweet struct {
	Base
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Content string    `gorm:"type:text;not null" json:"content"`
}

type TweetRequest struct {
	Content string `json:"content" binding:"required,notblank,max=1000"`
}
