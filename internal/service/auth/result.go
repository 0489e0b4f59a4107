package auth

import "github.com/harmonia-music/harmonia-backend/internal/domain"

// AuthResult is the outcome of a successful register, login, or refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
