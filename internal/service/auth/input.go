package auth

import (
	"net/mail"
	"strings"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// RegisterInput holds the parameters for registering a new user.
type RegisterInput struct {
	Email    string
	Username string
	Fullname string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	username := strings.TrimSpace(i.Username)
	if len(username) < 3 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "min 3 characters"})
	}
	if len(username) > 50 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}

	if strings.TrimSpace(i.Fullname) == "" {
		errs = append(errs, domain.FieldError{Field: "fullname", Message: "required"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(i.Password) > 72 {
		// bcrypt truncates beyond 72 bytes
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the parameters for a password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds the parameters for a token refresh.
type RefreshInput struct {
	RefreshToken string
}

// Validate checks all fields and collects all errors.
func (i RefreshInput) Validate() error {
	if i.RefreshToken == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}
