package playlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// Create creates a new playlist owned by the actor.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, input CreatePlaylistInput) (*domain.Playlist, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.playlists.Create(ctx, strings.TrimSpace(input.Name), actorID)
	if err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	s.log.InfoContext(ctx, "playlist created",
		slog.String("playlist_id", p.ID.String()),
		slog.String("owner_id", actorID.String()),
	)

	return p, nil
}

// List returns the playlists the actor owns or collaborates on.
func (s *Service) List(ctx context.Context, actorID uuid.UUID) ([]domain.PlaylistWithOwner, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	playlists, err := s.playlists.ListByUser(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}

	return playlists, nil
}

// Delete removes a playlist. Only the owner may delete; collaborators may
// not. Membership rows and activity records go with it.
func (s *Service) Delete(ctx context.Context, actorID, playlistID uuid.UUID) error {
	if actorID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if playlistID == uuid.Nil {
		return domain.NewValidationError("playlist_id", "required")
	}

	if err := s.VerifyOwnership(ctx, actorID, playlistID); err != nil {
		return err
	}

	if err := s.playlists.Delete(ctx, playlistID); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}

	s.log.InfoContext(ctx, "playlist deleted",
		slog.String("playlist_id", playlistID.String()),
		slog.String("user_id", actorID.String()),
	)

	return nil
}
