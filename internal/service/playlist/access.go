package playlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// VerifyOwnership checks that the actor owns the playlist. A missing
// playlist is ErrNotFound; an existing playlist owned by someone else is
// ErrForbidden. That distinction is what keeps "no such playlist" and "not
// yours" as separate responses.
func (s *Service) VerifyOwnership(ctx context.Context, actorID, playlistID uuid.UUID) error {
	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("get playlist: %w", err)
	}
	if p.OwnerID != actorID {
		return fmt.Errorf("playlist %s: %w", playlistID, domain.ErrForbidden)
	}
	return nil
}

// VerifyAccess checks that the actor may operate on the playlist: owners
// pass immediately, collaborators pass after a collaboration lookup, everyone
// else gets ErrForbidden. Every playlist-scoped read and write goes through
// here before touching membership or activity state.
func (s *Service) VerifyAccess(ctx context.Context, actorID, playlistID uuid.UUID) error {
	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("get playlist: %w", err)
	}
	if p.OwnerID == actorID {
		return nil
	}

	ok, err := s.playlists.IsCollaborator(ctx, playlistID, actorID)
	if err != nil {
		return fmt.Errorf("check collaborator: %w", err)
	}
	if !ok {
		return fmt.Errorf("playlist %s: %w", playlistID, domain.ErrForbidden)
	}

	return nil
}
