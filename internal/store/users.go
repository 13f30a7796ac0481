package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/pipeline"
)

type UserStore struct {
	db *gorm.DB
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	return translate(s.db.WithContext(ctx).Create(u).Error, "create user")
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find user")
	}
	return &u, nil
}

// FindByLogin finds a user by email or username, case-insensitively.
func (s *UserStore) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	var u models.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ? OR LOWER(username) = ?", login, login).
		First(&u).Error
	if err != nil {
		return nil, translate(err, "find user by login")
	}
	return &u, nil
}

func (s *UserStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, s.db, &models.User{}, id, "user exists")
}

type channelRow struct {
	ID                uuid.UUID
	Username          string
	FullName          string
	Avatar            string
	CoverImage        string
	CreatedAt         time.Time
	SubscribersCount  int64
	SubscribedToCount int64
	IsSubscribed      bool
}

// ChannelProfile reads a user's public channel with subscriber counts and
// whether the viewer is subscribed.
func (s *UserStore) ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*models.ChannelProfile, error) {
	p := pipeline.From("users",
		pipeline.Eq("LOWER(users.username)", strings.ToLower(strings.TrimSpace(username))),
		pipeline.Lookup{From: "subscriptions", As: "subscribers", LocalField: "id", ForeignField: "channel_id"},
		pipeline.Lookup{From: "subscriptions", As: "subscribed_to", LocalField: "id", ForeignField: "subscriber_id"},
		pipeline.Size{Lookup: "subscribers", As: "subscribers_count"},
		pipeline.Size{Lookup: "subscribed_to", As: "subscribed_to_count"},
		pipeline.Contains{Lookup: "subscribers", Field: "subscriber_id", Value: viewerValue(viewer), As: "is_subscribed"},
		pipeline.Project{Fields: []string{"id", "username", "full_name", "avatar", "cover_image", "created_at"}},
	)

	var rows []channelRow
	if err := run(ctx, s.db, p, &rows, "channel profile"); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrNotFound, "channel profile")
	}
	r := rows[0]
	return &models.ChannelProfile{
		ID:                r.ID,
		Username:          r.Username,
		FullName:          r.FullName,
		Avatar:            r.Avatar,
		CoverImage:        r.CoverImage,
		SubscribersCount:  r.SubscribersCount,
		SubscribedToCount: r.SubscribedToCount,
		IsSubscribed:      r.IsSubscribed,
		CreatedAt:         r.CreatedAt,
	}, nil
}
