package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/harmonia-music/harmonia-backend/internal/auth"
	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// Logout revokes the presented refresh token. The access token stays valid
// until it expires; only the refresh chain is cut.
func (s *Service) Logout(ctx context.Context, input RefreshInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Already revoked. Logout twice is not an error worth surfacing.
			return nil
		}
		return fmt.Errorf("auth.Logout revoke token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", token.UserID.String()))

	return nil
}
