package song

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// Create adds a song to the catalog. A referenced album must exist.
func (s *Service) Create(ctx context.Context, input SongInput) (*domain.Song, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.AlbumID != nil {
		if _, err := s.albums.GetByID(ctx, *input.AlbumID); err != nil {
			return nil, fmt.Errorf("get album: %w", err)
		}
	}

	created, err := s.songs.Create(ctx, &domain.Song{
		Title:     strings.TrimSpace(input.Title),
		Year:      input.Year,
		Genre:     strings.TrimSpace(input.Genre),
		Performer: strings.TrimSpace(input.Performer),
		Duration:  input.Duration,
		AlbumID:   input.AlbumID,
	})
	if err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}

	s.log.InfoContext(ctx, "song created",
		slog.String("song_id", created.ID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}

// GetByID returns a single song.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

// List returns songs matching the filter. Title and performer filters are
// case-insensitive substring matches and combine with AND.
func (s *Service) List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, error) {
	songs, err := s.songs.List(ctx, domain.SongFilter{
		Title:     strings.TrimSpace(filter.Title),
		Performer: strings.TrimSpace(filter.Performer),
	})
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return songs, nil
}

// Update replaces a song's attributes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input SongInput) (*domain.Song, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("song_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.AlbumID != nil {
		if _, err := s.albums.GetByID(ctx, *input.AlbumID); err != nil {
			return nil, fmt.Errorf("get album: %w", err)
		}
	}

	updated, err := s.songs.Update(ctx, id, domain.SongUpdateParams{
		Title:     strings.TrimSpace(input.Title),
		Year:      input.Year,
		Genre:     strings.TrimSpace(input.Genre),
		Performer: strings.TrimSpace(input.Performer),
		Duration:  input.Duration,
		AlbumID:   input.AlbumID,
	})
	if err != nil {
		return nil, fmt.Errorf("update song: %w", err)
	}

	s.log.InfoContext(ctx, "song updated", slog.String("song_id", id.String()))

	return updated, nil
}

// Delete removes a song from the catalog. Playlist membership rows go with
// it via the foreign key; activity records referencing the song remain.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("song_id", "required")
	}

	if err := s.songs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete song: %w", err)
	}

	s.log.InfoContext(ctx, "song deleted", slog.String("song_id", id.String()))

	return nil
}
