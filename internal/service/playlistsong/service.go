// Package playlistsong orchestrates playlist membership mutations: access
// check, catalog check, ledger write, then an activity record for the audit
// trail. The ledger write and the activity append are deliberately separate
// statements, not one transaction; see AddSong for the trade-off.
package playlistsong

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type membershipRepo interface {
	Add(ctx context.Context, playlistID, songID uuid.UUID) (uuid.UUID, error)
	Remove(ctx context.Context, playlistID, songID uuid.UUID) error
	ListSongs(ctx context.Context, playlistID uuid.UUID) ([]domain.Song, error)
}

type activityRepo interface {
	Append(ctx context.Context, rec domain.Activity) error
}

type songRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
}

type accessVerifier interface {
	VerifyAccess(ctx context.Context, actorID, playlistID uuid.UUID) error
}

type playlistGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
}

// Service provides playlist membership operations.
type Service struct {
	memberships membershipRepo
	activities  activityRepo
	songs       songRepo
	access      accessVerifier
	playlists   playlistGetter
	log         *slog.Logger
}

// NewService creates a new playlist membership service.
func NewService(
	log *slog.Logger,
	memberships membershipRepo,
	activities activityRepo,
	songs songRepo,
	access accessVerifier,
	playlists playlistGetter,
) *Service {
	return &Service{
		memberships: memberships,
		activities:  activities,
		songs:       songs,
		access:      access,
		playlists:   playlists,
		log:         log.With("service", "playlistsong"),
	}
}

// PlaylistContents is a playlist together with its current songs.
type PlaylistContents struct {
	Playlist domain.Playlist
	Songs    []domain.Song
}
