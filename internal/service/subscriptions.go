package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type SubscriptionService struct {
	subscriptions SubscriptionRepository
	users         UserRepository
}

func NewSubscriptionService(subscriptions SubscriptionRepository, users UserRepository) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions, users: users}
}

// Toggle flips the subscriber's subscription to channel and reports whether
// it exists afterwards.
func (s *SubscriptionService) Toggle(ctx context.Context, channel, subscriber uuid.UUID) (bool, error) {
	if channel == subscriber {
		return false, apperror.New(apperror.ErrValidation, "cannot subscribe to your own channel")
	}
	ok, err := s.users.Exists(ctx, channel)
	if err != nil {
		return false, storeError(err, "channel")
	}
	if !ok {
		return false, apperror.NotFound("channel")
	}

	subscribed, err := s.subscriptions.Toggle(ctx, channel, subscriber)
	if err != nil {
		return false, storeError(err, "subscription")
	}
	return subscribed, nil
}

func (s *SubscriptionService) Subscribers(ctx context.Context, channel, viewer uuid.UUID, params ListParams) ([]models.SubscriptionView, error) {
	subs, err := s.subscriptions.Subscribers(ctx, channel, viewer, params.page())
	if err != nil {
		return nil, storeError(err, "subscribers")
	}
	return subs, nil
}

func (s *SubscriptionService) Channels(ctx context.Context, subscriber, viewer uuid.UUID, params ListParams) ([]models.SubscriptionView, error) {
	channels, err := s.subscriptions.Channels(ctx, subscriber, viewer, params.page())
	if err != nil {
		return nil, storeError(err, "subscribed channels")
	}
	return channels, nil
}
