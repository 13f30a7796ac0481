package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type PlaylistService struct {
	playlists PlaylistRepository
	videos    VideoRepository
}

func NewPlaylistService(playlists PlaylistRepository, videos VideoRepository) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (s *PlaylistService) Create(ctx context.Context, owner uuid.UUID, req models.PlaylistRequest) (*models.Playlist, error) {
	playlist := &models.Playlist{
		OwnerID:     owner,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, storeError(err, "playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) Get(ctx context.Context, id, viewer uuid.UUID) (*models.PlaylistView, error) {
	playlist, err := s.playlists.Detail(ctx, id, viewer)
	if err != nil {
		return nil, storeError(err, "playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) ListByUser(ctx context.Context, userID, viewer uuid.UUID, params ListParams) ([]models.PlaylistView, error) {
	playlists, err := s.playlists.ListByOwner(ctx, userID, viewer, params.page())
	if err != nil {
		return nil, storeError(err, "playlists")
	}
	return playlists, nil
}

func (s *PlaylistService) Update(ctx context.Context, id, actor uuid.UUID, req models.PlaylistRequest) (*models.Playlist, error) {
	if err := s.authorize(ctx, id, actor, "edit this playlist"); err != nil {
		return nil, err
	}
	playlist, err := s.playlists.Update(ctx, id, map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": strings.TrimSpace(req.Description),
	})
	if err != nil {
		return nil, storeError(err, "playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.authorize(ctx, id, actor, "delete this playlist"); err != nil {
		return err
	}
	return storeError(s.playlists.Delete(ctx, id), "playlist")
}

// AddVideo adds a video the actor can see to the actor's playlist. Adding a
// video twice leaves a single entry.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, actor uuid.UUID) (*models.PlaylistView, error) {
	if err := s.authorize(ctx, playlistID, actor, "add videos to this playlist"); err != nil {
		return nil, err
	}
	if _, err := s.videos.Detail(ctx, videoID, actor); err != nil {
		return nil, storeError(err, "video")
	}
	if err := s.playlists.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, storeError(err, "playlist")
	}
	return s.Get(ctx, playlistID, actor)
}

// RemoveVideo removes a video from the actor's playlist. Removing a video
// that is not in the playlist is NotFound.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, actor uuid.UUID) (*models.PlaylistView, error) {
	if err := s.authorize(ctx, playlistID, actor, "remove videos from this playlist"); err != nil {
		return nil, err
	}
	removed, err := s.playlists.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, storeError(err, "playlist")
	}
	if !removed {
		return nil, apperror.NotFound("video in playlist")
	}
	return s.Get(ctx, playlistID, actor)
}

func (s *PlaylistService) authorize(ctx context.Context, id, actor uuid.UUID, action string) error {
	playlist, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "playlist")
	}
	if playlist.OwnerID != actor {
		return forbidden(action)
	}
	return nil
}
