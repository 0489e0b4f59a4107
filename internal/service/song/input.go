package song

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// SongInput holds the parameters for creating or fully updating a song.
type SongInput struct {
	Title     string
	Year      int
	Genre     string
	Performer string
	Duration  *int
	AlbumID   *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SongInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Year < 1900 || i.Year > time.Now().Year()+1 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "out of range"})
	}
	if strings.TrimSpace(i.Genre) == "" {
		errs = append(errs, domain.FieldError{Field: "genre", Message: "required"})
	}
	if strings.TrimSpace(i.Performer) == "" {
		errs = append(errs, domain.FieldError{Field: "performer", Message: "required"})
	}
	if i.Duration != nil && *i.Duration <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
