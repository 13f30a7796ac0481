package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TargetKind names the kind of content a like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// LikeTarget is exactly one of a video, a comment or a tweet. The zero value
// is not a valid target; build one with VideoTarget, CommentTarget or
// TweetTarget.
type LikeTarget struct {
	kind TargetKind
	id   uuid.UUID
}

func VideoTarget(id uuid.UUID) LikeTarget   { return LikeTarget{kind: TargetVideo, id: id} }
func CommentTarget(id uuid.UUID) LikeTarget { return LikeTarget{kind: TargetComment, id: id} }
func TweetTarget(id uuid.UUID) LikeTarget   { return LikeTarget{kind: TargetTweet, id: id} }

func (t LikeTarget) Kind() TargetKind { return t.kind }
func (t LikeTarget) ID() uuid.UUID    { return t.id }

func (t LikeTarget) Valid() bool {
	return t.kind.Valid() && t.id != uuid.Nil
}

func (t LikeTarget) String() string {
	return string(t.kind) + ":" + t.id.String()
}

// Like is a relation row: its existence means LikedByID likes the target.
type Like struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TargetKind TargetKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_likes_target_user,priority:1;check:chk_likes_target_kind,target_kind IN ('video','comment','tweet')" json:"target_kind"`
	TargetID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_likes_target_user,priority:2" json:"target_id"`
	LikedByID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_likes_target_user,priority:3;index" json:"liked_by_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewLike(target LikeTarget, user uuid.UUID) *Like {
	return &Like{
		TargetKind: target.kind,
		TargetID:   target.id,
		LikedByID:  user,
	}
}

func (l *Like) Target() LikeTarget {
	return LikeTarget{kind: l.TargetKind, id: l.TargetID}
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
