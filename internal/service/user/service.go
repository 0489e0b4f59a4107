// Package user provides read access to user profiles.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service provides user profile operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}

// GetByID returns a user's public profile.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
