// Package relation toggles relation rows: a like or a subscription exists
// exactly when the row for its pair exists.
package relation

import (
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

// Relation addresses the single row representing one (subject, target) pair.
type Relation interface {
	// Name identifies the relation kind in errors and logs.
	Name() string
	Validate() error
	// Pair returns the condition matching this pair's row.
	Pair() (string, []interface{})
	// Model is an empty row used to resolve the table.
	Model() interface{}
	// NewRow is the row inserted when the pair is absent.
	NewRow() interface{}
}

type like struct {
	target models.LikeTarget
	user   uuid.UUID
}

// Like is the relation between a user and a video, comment or tweet.
func Like(target models.LikeTarget, user uuid.UUID) Relation {
	return like{target: target, user: user}
}

func (r like) Name() string { return string(r.target.Kind()) + " like" }

func (r like) Validate() error {
	if !r.target.Valid() {
		return apperror.New(apperror.ErrInvalidReference, "like target must be a video, comment or tweet")
	}
	if r.user == uuid.Nil {
		return apperror.InvalidReference("user")
	}
	return nil
}

func (r like) Pair() (string, []interface{}) {
	return "target_kind = ? AND target_id = ? AND liked_by_id = ?",
		[]interface{}{string(r.target.Kind()), r.target.ID(), r.user}
}

func (r like) Model() interface{}  { return &models.Like{} }
func (r like) NewRow() interface{} { return models.NewLike(r.target, r.user) }

type subscription struct {
	channel    uuid.UUID
	subscriber uuid.UUID
}

// Subscription is the relation between a subscriber and a channel.
func Subscription(channel, subscriber uuid.UUID) Relation {
	return subscription{channel: channel, subscriber: subscriber}
}

func (r subscription) Name() string { return "subscription" }

func (r subscription) Validate() error {
	if r.channel == uuid.Nil {
		return apperror.InvalidReference("channelId")
	}
	if r.subscriber == uuid.Nil {
		return apperror.InvalidReference("subscriber")
	}
	if r.channel == r.subscriber {
		return apperror.New(apperror.ErrValidation, "cannot subscribe to your own channel")
	}
	return nil
}

func (r subscription) Pair() (string, []interface{}) {
	return "channel_id = ? AND subscriber_id = ?", []interface{}{r.channel, r.subscriber}
}

func (r subscription) Model() interface{} { return &models.Subscription{} }

func (r subscription) NewRow() interface{} {
	return &models.Subscription{ChannelID: r.channel, SubscriberID: r.subscriber}
}
