package album

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// Like records that a user likes an album. A user may like an album once;
// a second like is a conflict. The cached count is invalidated, never
// updated in place.
func (s *Service) Like(ctx context.Context, actorID, albumID uuid.UUID) error {
	if actorID == uuid.Nil {
		return domain.ErrUnauthorized
	}

	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return fmt.Errorf("get album: %w", err)
	}

	if err := s.albums.Like(ctx, albumID, actorID); err != nil {
		return fmt.Errorf("like album: %w", err)
	}

	if err := s.cache.Invalidate(ctx, albumID); err != nil {
		s.log.WarnContext(ctx, "likes cache invalidation failed",
			slog.String("album_id", albumID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// Unlike removes a user's like from an album.
func (s *Service) Unlike(ctx context.Context, actorID, albumID uuid.UUID) error {
	if actorID == uuid.Nil {
		return domain.ErrUnauthorized
	}

	if err := s.albums.Unlike(ctx, albumID, actorID); err != nil {
		return fmt.Errorf("unlike album: %w", err)
	}

	if err := s.cache.Invalidate(ctx, albumID); err != nil {
		s.log.WarnContext(ctx, "likes cache invalidation failed",
			slog.String("album_id", albumID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// CountLikes returns an album's like total, served from cache when fresh.
// Cache failures fall through to the database; a count is never unavailable
// just because Redis is.
func (s *Service) CountLikes(ctx context.Context, albumID uuid.UUID) (*LikeCount, error) {
	if count, ok, err := s.cache.Get(ctx, albumID); err != nil {
		s.log.WarnContext(ctx, "likes cache read failed",
			slog.String("album_id", albumID.String()),
			slog.String("error", err.Error()),
		)
	} else if ok {
		return &LikeCount{Count: count, FromCache: true}, nil
	}

	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}

	count, err := s.albums.CountLikes(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	if err := s.cache.Set(ctx, albumID, count); err != nil {
		s.log.WarnContext(ctx, "likes cache write failed",
			slog.String("album_id", albumID.String()),
			slog.String("error", err.Error()),
		)
	}

	return &LikeCount{Count: count}, nil
}
