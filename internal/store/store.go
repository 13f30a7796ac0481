// Package store reads and writes the domain tables through gorm. Every read
// that surfaces derived values is expressed as a pipeline.
package store

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/emilythestrangee/videotube/backend/internal/pipeline"
	"github.com/emilythestrangee/videotube/backend/internal/relation"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

const uniqueViolation = "23505"

// translate maps driver errors onto the store sentinels and adds op as
// context.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Wrapf(ErrDuplicate, "%s: %s", op, pgErr.ConstraintName)
	}
	return errors.Wrap(err, op)
}

// run compiles p and scans its rows into dest.
func run(ctx context.Context, db *gorm.DB, p *pipeline.Pipeline, dest interface{}, op string) error {
	tx, err := p.Build(db.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, op)
	}
	return translate(tx.Find(dest).Error, op)
}

// escapeLike quotes the ILIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type Store struct {
	Users         *UserStore
	Videos        *VideoStore
	Comments      *CommentStore
	Tweets        *TweetStore
	Playlists     *PlaylistStore
	Likes         *LikeStore
	Subscriptions *SubscriptionStore
	Dashboard     *DashboardStore
}

func New(db *gorm.DB) *Store {
	engine := relation.NewEngine(db)
	return &Store{
		Users:         &UserStore{db: db},
		Videos:        &VideoStore{db: db},
		Comments:      &CommentStore{db: db},
		Tweets:        &TweetStore{db: db},
		Playlists:     &PlaylistStore{db: db},
		Likes:         &LikeStore{db: db, engine: engine},
		Subscriptions: &SubscriptionStore{db: db, engine: engine},
		Dashboard:     &DashboardStore{db: db},
	}
}
