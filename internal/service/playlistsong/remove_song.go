package playlistsong

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// RemoveSong removes a song from a playlist and records the mutation.
// Removing a song that is not in the playlist is an error, and no activity
// record is written for it: the log only ever reflects mutations that
// actually happened.
func (s *Service) RemoveSong(ctx context.Context, actorID uuid.UUID, input MembershipInput) error {
	if actorID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.access.VerifyAccess(ctx, actorID, input.PlaylistID); err != nil {
		return err
	}

	if err := s.memberships.Remove(ctx, input.PlaylistID, input.SongID); err != nil {
		return fmt.Errorf("remove song: %w", err)
	}

	if err := s.activities.Append(ctx, domain.Activity{
		PlaylistID: input.PlaylistID,
		SongID:     input.SongID,
		UserID:     actorID,
		Action:     domain.ActivityActionDeleted,
	}); err != nil {
		s.log.ErrorContext(ctx, "activity append failed after remove",
			slog.String("playlist_id", input.PlaylistID.String()),
			slog.String("song_id", input.SongID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("append activity: %w", err)
	}

	s.log.InfoContext(ctx, "song removed from playlist",
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("song_id", input.SongID.String()),
		slog.String("user_id", actorID.String()),
	)

	return nil
}
