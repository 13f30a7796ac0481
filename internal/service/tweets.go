package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type TweetService struct {
	tweets TweetRepository
}

func NewTweetService(tweets TweetRepository) *TweetService {
	return &TweetService{tweets: tweets}
}

func (s *TweetService) Create(ctx context.Context, author uuid.UUID, req models.TweetRequest) (*models.Tweet, error) {
	tweet := &models.Tweet{OwnerID: author, Content: strings.TrimSpace(req.Content)}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, storeError(err, "tweet")
	}
	return tweet, nil
}

func (s *TweetService) ListByUser(ctx context.Context, userID, viewer uuid.UUID, params ListParams) ([]models.TweetView, error) {
	sort, err := tweetSorts.Resolve(params.SortBy, params.SortType)
	if err != nil {
		return nil, err
	}
	tweets, err := s.tweets.ListByOwner(ctx, userID, viewer, sort, params.page())
	if err != nil {
		return nil, storeError(err, "tweets")
	}
	return tweets, nil
}

func (s *TweetService) Update(ctx context.Context, id, actor uuid.UUID, req models.TweetRequest) (*models.Tweet, error) {
	if err := s.authorize(ctx, id, actor, "edit this tweet"); err != nil {
		return nil, err
	}
	tweet, err := s.tweets.UpdateContent(ctx, id, strings.TrimSpace(req.Content))
	if err != nil {
		return nil, storeError(err, "tweet")
	}
	return tweet, nil
}

func (s *TweetService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.authorize(ctx, id, actor, "delete this tweet"); err != nil {
		return err
	}
	return storeError(s.tweets.Delete(ctx, id), "tweet")
}

func (s *TweetService) authorize(ctx context.Context, id, actor uuid.UUID, action string) error {
	tweet, err := s.tweets.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "tweet")
	}
	if tweet.OwnerID != actor {
		return forbidden(action)
	}
	return nil
}
