// Package song provides catalog song management.
package song

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type songRepo interface {
	Create(ctx context.Context, song *domain.Song) (*domain.Song, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
	List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, error)
	Update(ctx context.Context, id uuid.UUID, params domain.SongUpdateParams) (*domain.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type albumRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)
}

// Service provides song catalog operations.
type Service struct {
	songs  songRepo
	albums albumRepo
	log    *slog.Logger
}

// NewService creates a new song service.
func NewService(log *slog.Logger, songs songRepo, albums albumRepo) *Service {
	return &Service{
		songs:  songs,
		albums: albums,
		log:    log.With("service", "song"),
	}
}
