// Package upload handles album cover uploads: the file goes to the cover
// store, the resulting public URL goes on the album.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/adapter/filestore"
	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type coverStore interface {
	Save(r io.Reader, contentType string) (string, error)
}

type albumCoverSetter interface {
	SetCover(ctx context.Context, id uuid.UUID, coverURL string) error
}

// Service stores album covers.
type Service struct {
	store   coverStore
	albums  albumCoverSetter
	maxSize int64
	log     *slog.Logger
}

// NewService creates a new upload service.
func NewService(log *slog.Logger, store coverStore, albums albumCoverSetter, maxSize int64) *Service {
	return &Service{
		store:   store,
		albums:  albums,
		maxSize: maxSize,
		log:     log.With("service", "upload"),
	}
}

// UploadCover validates and stores a cover image, then records its URL on
// the album. A cover saved to disk for an album that then turns out not to
// exist is left behind as an orphan file; covers are content-addressed by
// random name, so that is waste, not corruption.
func (s *Service) UploadCover(ctx context.Context, albumID uuid.UUID, r io.Reader, contentType string, size int64) (string, error) {
	if albumID == uuid.Nil {
		return "", domain.NewValidationError("album_id", "required")
	}
	if !filestore.SupportedContentType(contentType) {
		return "", domain.NewValidationError("cover", "unsupported content type")
	}
	if size > s.maxSize {
		return "", domain.NewValidationError("cover", fmt.Sprintf("max %d bytes", s.maxSize))
	}

	url, err := s.store.Save(io.LimitReader(r, s.maxSize), contentType)
	if err != nil {
		return "", fmt.Errorf("save cover: %w", err)
	}

	if err := s.albums.SetCover(ctx, albumID, url); err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "album cover uploaded",
		slog.String("album_id", albumID.String()),
		slog.String("url", url),
	)

	return url, nil
}
