package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/emilythestrangee/videotube/backend/internal/auth"
	"github.com/emilythestrangee/videotube/backend/internal/config"
	"github.com/emilythestrangee/videotube/backend/internal/database"
	"github.com/emilythestrangee/videotube/backend/internal/handlers"
	"github.com/emilythestrangee/videotube/backend/internal/logger"
	"github.com/emilythestrangee/videotube/backend/internal/server"
	"github.com/emilythestrangee/videotube/backend/internal/service"
	"github.com/emilythestrangee/videotube/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	db, err := database.New(cfg.Database, log)
	if err != nil {
		return errors.Wrap(err, "initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	tokens := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.TTL)
	services := service.New(store.New(db.GetDB()), tokens, log)
	srv := server.NewServer(cfg, log, handlers.NewHandler(services, db), tokens)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}
