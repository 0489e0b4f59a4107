package playlist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// CreatePlaylistInput holds the parameters for creating a playlist.
type CreatePlaylistInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreatePlaylistInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CollaborationInput holds the parameters for adding or removing a
// collaborator.
type CollaborationInput struct {
	PlaylistID uuid.UUID
	UserID     uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CollaborationInput) Validate() error {
	var errs []domain.FieldError
	if i.PlaylistID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "playlist_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
