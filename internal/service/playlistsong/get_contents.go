package playlistsong

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// GetContents returns a playlist with its current songs. Reads go through
// the same access check as writes: a stranger cannot see the contents at all.
func (s *Service) GetContents(ctx context.Context, actorID, playlistID uuid.UUID) (*PlaylistContents, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if playlistID == uuid.Nil {
		return nil, domain.NewValidationError("playlist_id", "required")
	}

	if err := s.access.VerifyAccess(ctx, actorID, playlistID); err != nil {
		return nil, err
	}

	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}

	songs, err := s.memberships.ListSongs(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list playlist songs: %w", err)
	}

	return &PlaylistContents{Playlist: *p, Songs: songs}, nil
}
