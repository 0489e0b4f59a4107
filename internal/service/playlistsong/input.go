package playlistsong

import (
	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// MembershipInput holds the parameters for adding or removing a song.
type MembershipInput struct {
	PlaylistID uuid.UUID
	SongID     uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MembershipInput) Validate() error {
	var errs []domain.FieldError
	if i.PlaylistID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "playlist_id", Message: "required"})
	}
	if i.SongID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "song_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
