// Package activity exposes the playlist audit trail to authorized readers.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type activityRepo interface {
	ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]domain.Activity, error)
}

type accessVerifier interface {
	VerifyAccess(ctx context.Context, actorID, playlistID uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type songRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
}

// Service provides read access to playlist activity history.
type Service struct {
	activities activityRepo
	access     accessVerifier
	users      userRepo
	songs      songRepo
	log        *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, activities activityRepo, access accessVerifier, users userRepo, songs songRepo) *Service {
	return &Service{
		activities: activities,
		access:     access,
		users:      users,
		songs:      songs,
		log:        log.With("service", "activity"),
	}
}

// Record is one activity record resolved for presentation: username and song
// title instead of bare ids. Deleted songs keep their id as the title, since
// the log outlives the catalog row.
type Record struct {
	Username string
	Title    string
	Activity domain.Activity
}

// ListByPlaylist returns the full activity history of a playlist, oldest
// first, with usernames and song titles resolved. Access is checked first;
// a stranger learns nothing about the history, not even that it is empty.
func (s *Service) ListByPlaylist(ctx context.Context, actorID, playlistID uuid.UUID) ([]Record, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if playlistID == uuid.Nil {
		return nil, domain.NewValidationError("playlist_id", "required")
	}

	if err := s.access.VerifyAccess(ctx, actorID, playlistID); err != nil {
		return nil, err
	}

	records, err := s.activities.ListByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	usernames := make(map[uuid.UUID]string)
	titles := make(map[uuid.UUID]string)

	out := make([]Record, len(records))
	for i, rec := range records {
		username, ok := usernames[rec.UserID]
		if !ok {
			username = rec.UserID.String()
			if u, err := s.users.GetByID(ctx, rec.UserID); err == nil {
				username = u.Username
			}
			usernames[rec.UserID] = username
		}

		title, ok := titles[rec.SongID]
		if !ok {
			// Song rows may be gone; the record still stands.
			title = rec.SongID.String()
			if song, err := s.songs.GetByID(ctx, rec.SongID); err == nil {
				title = song.Title
			}
			titles[rec.SongID] = title
		}

		out[i] = Record{Username: username, Title: title, Activity: rec}
	}

	return out, nil
}
