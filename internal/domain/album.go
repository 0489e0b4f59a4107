package domain

import (
	"time"

	"github.com/google/uuid"
)

// Album represents a catalog album. Songs referencing the album are attached
// on read as an enrichment step and are not part of the stored row.
type Album struct {
	ID        uuid.UUID
	Name      string
	Year      int
	CoverURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AlbumUpdateParams carries the mutable album attributes for an update.
type AlbumUpdateParams struct {
	Name string
	Year int
}
