// Package playlist provides playlist management and the single access
// decision point used by every playlist-scoped operation. Ownership and
// collaboration checks live here and nowhere else.
package playlist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type playlistRepo interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Playlist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithOwner, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddCollaborator(ctx context.Context, playlistID, userID uuid.UUID) (uuid.UUID, error)
	RemoveCollaborator(ctx context.Context, playlistID, userID uuid.UUID) error
	IsCollaborator(ctx context.Context, playlistID, userID uuid.UUID) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service provides playlist management operations.
type Service struct {
	playlists playlistRepo
	users     userRepo
	log       *slog.Logger
}

// NewService creates a new playlist service.
func NewService(log *slog.Logger, playlists playlistRepo, users userRepo) *Service {
	return &Service{
		playlists: playlists,
		users:     users,
		log:       log.With("service", "playlist"),
	}
}
