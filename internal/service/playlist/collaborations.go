package playlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// AddCollaborator grants a user membership rights on a playlist. Only the
// owner may manage collaborators, and the owner cannot be added as one.
func (s *Service) AddCollaborator(ctx context.Context, actorID uuid.UUID, input CollaborationInput) (uuid.UUID, error) {
	if actorID == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	if err := s.VerifyOwnership(ctx, actorID, input.PlaylistID); err != nil {
		return uuid.Nil, err
	}
	if input.UserID == actorID {
		return uuid.Nil, domain.NewValidationError("user_id", "owner cannot be a collaborator")
	}

	// The user must exist; the FK alone would also catch this, but a clean
	// not-found beats a mapped constraint error in the response.
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return uuid.Nil, fmt.Errorf("get user: %w", err)
	}

	id, err := s.playlists.AddCollaborator(ctx, input.PlaylistID, input.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("add collaborator: %w", err)
	}

	s.log.InfoContext(ctx, "collaborator added",
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("owner_id", actorID.String()),
	)

	return id, nil
}

// RemoveCollaborator revokes a user's membership rights on a playlist.
func (s *Service) RemoveCollaborator(ctx context.Context, actorID uuid.UUID, input CollaborationInput) error {
	if actorID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.VerifyOwnership(ctx, actorID, input.PlaylistID); err != nil {
		return err
	}

	if err := s.playlists.RemoveCollaborator(ctx, input.PlaylistID, input.UserID); err != nil {
		return fmt.Errorf("remove collaborator: %w", err)
	}

	s.log.InfoContext(ctx, "collaborator removed",
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("owner_id", actorID.String()),
	)

	return nil
}
