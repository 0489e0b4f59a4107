package album

import (
	"strings"
	"time"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// AlbumInput holds the parameters for creating or fully updating an album.
type AlbumInput struct {
	Name string
	Year int
}

// Validate checks all fields and collects all errors.
func (i AlbumInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Year < 1900 || i.Year > time.Now().Year()+1 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
