package models

import (
	"time"

	"github.com/google/uuid"
)

// PublicProfile is the only part of a user embedded in other responses.
type PublicProfile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
}

type VideoView struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	VideoFile   string         `json:"video_file"`
	Thumbnail   string         `json:"thumbnail"`
	Duration    float64        `json:"duration"`
	Views       int64          `json:"views"`
	IsPublished bool           `json:"is_published"`
	Likes       int64          `json:"likes"`
	IsLiked     bool           `json:"is_liked"`
	Owner       *PublicProfile `json:"owner"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type LikedVideo struct {
	VideoView
	LikedAt time.Time `json:"liked_at"`
}

type WatchedVideo struct {
	VideoView
	WatchedAt time.Time `json:"watched_at"`
}

type CommentView struct {
	ID        uuid.UUID      `json:"id"`
	VideoID   uuid.UUID      `json:"video_id"`
	Content   string         `json:"content"`
	Likes     int64          `json:"likes"`
	IsLiked   bool           `json:"is_liked"`
	Owner     *PublicProfile `json:"owner"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type TweetView struct {
	ID        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	Likes     int64          `json:"likes"`
	IsLiked   bool           `json:"is_liked"`
	Owner     *PublicProfile `json:"owner"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type PlaylistView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       *PublicProfile `json:"owner"`
	Videos      []VideoView    `json:"videos"`
	TotalVideos int            `json:"total_videos"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SubscriptionView is one entry of a subscriber or subscribed-channel list.
// User is the subscriber or the channel, depending on the list.
type SubscriptionView struct {
	ID               uuid.UUID      `json:"id"`
	User             *PublicProfile `json:"user"`
	SubscribersCount int64          `json:"subscribers_count"`
	IsSubscribed     bool           `json:"is_subscribed"`
	SubscribedAt     time.Time      `json:"subscribed_at"`
}

type ChannelProfile struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	Avatar            string    `json:"avatar"`
	CoverImage        string    `json:"cover_image"`
	SubscribersCount  int64     `json:"subscribers_count"`
	SubscribedToCount int64     `json:"subscribed_to_count"`
	IsSubscribed      bool      `json:"is_subscribed"`
	CreatedAt         time.Time `json:"created_at"`
}

type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
	TotalSubscribers int64 `json:"total_subscribers"`
}
