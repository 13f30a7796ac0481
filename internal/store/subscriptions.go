package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/paging"
	"github.com/emilythestrangee/videotube/backend/internal/pipeline"
	"github.com/emilythestrangee/videotube/backend/internal/profile"
	"github.com/emilythestrangee/videotube/backend/internal/relation"
)

type SubscriptionStore struct {
	db     *gorm.DB
	engine *relation.Engine
}

// Toggle subscribes subscriberID to the channel, or unsubscribes if already
// subscribed. It returns whether the subscription exists afterwards.
func (s *SubscriptionStore) Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	subscribed, err := s.engine.Toggle(ctx, relation.Subscription(channelID, subscriberID))
	if err != nil {
		return false, translate(err, "toggle subscription")
	}
	return subscribed, nil
}

func (s *SubscriptionStore) IsSubscribed(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	subscribed, err := s.engine.Exists(ctx, relation.Subscription(channelID, subscriberID))
	if err != nil {
		return false, translate(err, "check subscription")
	}
	return subscribed, nil
}

type memberRow struct {
	ID               uuid.UUID
	CreatedAt        time.Time
	SubscribersCount int64
	IsSubscribed     bool
	Member           profile.Joined `gorm:"embedded;embeddedPrefix:member__"`
}

// Subscribers lists the users subscribed to a channel.
func (s *SubscriptionStore) Subscribers(ctx context.Context, channelID, viewer uuid.UUID, page paging.Page) ([]models.SubscriptionView, error) {
	return s.members(ctx, "subscriptions.channel_id", channelID, "subscriber_id", viewer, page, "list subscribers")
}

// Channels lists the channels a user is subscribed to.
func (s *SubscriptionStore) Channels(ctx context.Context, subscriberID, viewer uuid.UUID, page paging.Page) ([]models.SubscriptionView, error) {
	return s.members(ctx, "subscriptions.subscriber_id", subscriberID, "channel_id", viewer, page, "list subscribed channels")
}

// members lists the other side of every subscription matching column = id,
// along with that user's subscriber count and whether the viewer follows
// them.
func (s *SubscriptionStore) members(ctx context.Context, column string, id uuid.UUID, other string, viewer uuid.UUID, page paging.Page, op string) ([]models.SubscriptionView, error) {
	p := pipeline.From("subscriptions",
		pipeline.Eq(column, id),
		ownerLookup("member", other),
		pipeline.Lookup{
			From:         "subscriptions",
			As:           "followers",
			LocalField:   other,
			ForeignField: "channel_id",
		},
		pipeline.Size{Lookup: "followers", As: "subscribers_count"},
		pipeline.Contains{Lookup: "followers", Field: "subscriber_id", Value: viewerValue(viewer), As: "is_subscribed"},
		pipeline.First{Lookup: "member"},
		pipeline.Sort{Column: "subscriptions.created_at", Desc: true},
		pageStage(page),
		pipeline.Project{Fields: []string{"id", "created_at"}},
	)

	var rows []memberRow
	if err := run(ctx, s.db, p, &rows, op); err != nil {
		return nil, err
	}
	out := make([]models.SubscriptionView, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.SubscriptionView{
			ID:               r.ID,
			User:             r.Member.Profile(),
			SubscribersCount: r.SubscribersCount,
			IsSubscribed:     r.IsSubscribed,
			SubscribedAt:     r.CreatedAt,
		})
	}
	return out, nil
}

// SubscriberCount returns the number of subscribers of a channel.
func (s *SubscriptionStore) SubscriberCount(ctx context.Context, channelID uuid.UUID) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).Count(&n).Error
	return n, translate(err, "count subscribers")
}
