// Package album provides catalog album management and the album like
// counter with its Redis-backed cache.
package album

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type albumRepo interface {
	Create(ctx context.Context, name string, year int) (*domain.Album, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AlbumUpdateParams) (*domain.Album, error)
	SetCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error
	Delete(ctx context.Context, id uuid.UUID) error

	Like(ctx context.Context, albumID, userID uuid.UUID) error
	Unlike(ctx context.Context, albumID, userID uuid.UUID) error
	CountLikes(ctx context.Context, albumID uuid.UUID) (int, error)
}

type songRepo interface {
	ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Song, error)
}

type likesCache interface {
	Get(ctx context.Context, albumID uuid.UUID) (int, bool, error)
	Set(ctx context.Context, albumID uuid.UUID, count int) error
	Invalidate(ctx context.Context, albumID uuid.UUID) error
}

// Service provides album catalog operations.
type Service struct {
	albums albumRepo
	songs  songRepo
	cache  likesCache
	log    *slog.Logger
}

// NewService creates a new album service.
func NewService(log *slog.Logger, albums albumRepo, songs songRepo, cache likesCache) *Service {
	return &Service{
		albums: albums,
		songs:  songs,
		cache:  cache,
		log:    log.With("service", "album"),
	}
}

// AlbumWithSongs is an album with its songs attached on read.
type AlbumWithSongs struct {
	Album domain.Album
	Songs []domain.Song
}

// LikeCount is an album like total plus where it came from.
type LikeCount struct {
	Count     int
	FromCache bool
}
