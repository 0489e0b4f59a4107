package album

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// Create adds an album to the catalog.
func (s *Service) Create(ctx context.Context, input AlbumInput) (*domain.Album, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.albums.Create(ctx, strings.TrimSpace(input.Name), input.Year)
	if err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}

	s.log.InfoContext(ctx, "album created",
		slog.String("album_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// GetByID returns an album with its songs. Song enrichment degrades
// gracefully: if the song listing fails, the album is still returned with an
// empty song list and the failure is logged.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*AlbumWithSongs, error) {
	a, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}

	songs, err := s.songs.ListByAlbum(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "album song enrichment failed",
			slog.String("album_id", id.String()),
			slog.String("error", err.Error()),
		)
		songs = []domain.Song{}
	}

	return &AlbumWithSongs{Album: *a, Songs: songs}, nil
}

// Update replaces an album's name and year. The cover URL is managed
// separately by the upload flow.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input AlbumInput) (*domain.Album, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("album_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.albums.Update(ctx, id, domain.AlbumUpdateParams{
		Name: strings.TrimSpace(input.Name),
		Year: input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("update album: %w", err)
	}

	s.log.InfoContext(ctx, "album updated", slog.String("album_id", id.String()))

	return updated, nil
}

// SetCover stores the public URL of an uploaded cover on the album.
func (s *Service) SetCover(ctx context.Context, id uuid.UUID, coverURL string) error {
	if id == uuid.Nil {
		return domain.NewValidationError("album_id", "required")
	}

	if err := s.albums.SetCoverURL(ctx, id, coverURL); err != nil {
		return fmt.Errorf("set cover url: %w", err)
	}

	s.log.InfoContext(ctx, "album cover updated", slog.String("album_id", id.String()))

	return nil
}

// Delete removes an album. Songs referencing it keep existing with their
// album reference cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("album_id", "required")
	}

	if err := s.albums.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete album: %w", err)
	}

	s.log.InfoContext(ctx, "album deleted", slog.String("album_id", id.String()))

	return nil
}
