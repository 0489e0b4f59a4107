package playlistsong

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// AddSong adds a song to a playlist and records the mutation in the activity
// log. The order is strict: access check, song existence, ledger insert,
// activity append. Nothing is written before the access check passes, so a
// rejected caller leaves no trace.
//
// The ledger insert and the activity append are not one transaction. If the
// append fails after the insert committed, the song stays in the playlist and
// the caller gets a server error; a retry of the add then reports a conflict.
// That inconsistency window is accepted in exchange for never holding a
// transaction open across both tables.
func (s *Service) AddSong(ctx context.Context, actorID uuid.UUID, input MembershipInput) (uuid.UUID, error) {
	if actorID == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	if err := s.access.VerifyAccess(ctx, actorID, input.PlaylistID); err != nil {
		return uuid.Nil, err
	}

	if _, err := s.songs.GetByID(ctx, input.SongID); err != nil {
		return uuid.Nil, fmt.Errorf("get song: %w", err)
	}

	// The unique constraint on (playlist_id, song_id) is the duplicate
	// check; a concurrent add of the same pair loses here, not earlier.
	membershipID, err := s.memberships.Add(ctx, input.PlaylistID, input.SongID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("add song: %w", err)
	}

	if err := s.activities.Append(ctx, domain.Activity{
		PlaylistID: input.PlaylistID,
		SongID:     input.SongID,
		UserID:     actorID,
		Action:     domain.ActivityActionAdded,
	}); err != nil {
		s.log.ErrorContext(ctx, "activity append failed after add",
			slog.String("playlist_id", input.PlaylistID.String()),
			slog.String("song_id", input.SongID.String()),
			slog.String("error", err.Error()),
		)
		return uuid.Nil, fmt.Errorf("append activity: %w", err)
	}

	s.log.InfoContext(ctx, "song added to playlist",
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("song_id", input.SongID.String()),
		slog.String("user_id", actorID.String()),
	)

	return membershipID, nil
}
