// Package dbtest provides a migrated PostgreSQL database for integration
// tests, backed by a testcontainers postgres container shared by every test
// in the package under test.
package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/emilythestrangee/videotube/backend/internal/database"
)

var (
	once      sync.Once
	shared    *gorm.DB
	container *postgres.PostgresContainer
	startErr  error
)

var tables = []string{
	"watch_history", "playlist_videos", "playlists", "likes",
	"subscriptions", "comments", "tweets", "videos", "users",
}

// Open returns an empty, migrated database. The test is skipped with -short
// or when no container provider is reachable.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		shared, startErr = start(context.Background())
	})
	require.NoError(t, startErr)
	require.NoError(t, truncate(shared))
	return shared
}

// Terminate stops the shared container, if one was started. Call it from
// TestMain after m.Run.
func Terminate() {
	if container != nil {
		_ = container.Terminate(context.Background())
	}
}

func start(ctx context.Context) (*gorm.DB, error) {
	ctr, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("videotube"),
		postgres.WithUsername("videotube"),
		postgres.WithPassword("videotube"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}
	container = ctr

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}
	db, err := database.Open(dsn, zap.NewNop())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func truncate(db *gorm.DB) error {
	for _, table := range tables {
		if err := db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			return err
		}
	}
	return nil
}
