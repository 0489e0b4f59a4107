package domain

import (
	"time"

	"github.com/google/uuid"
)

// Song represents a catalog song. Playlists reference songs by id and never
// mutate them.
type Song struct {
	ID        uuid.UUID
	Title     string
	Year      int
	Genre     string
	Performer string
	Duration  *int
	AlbumID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SongUpdateParams carries the mutable song attributes for an update.
type SongUpdateParams struct {
	Title     string
	Year      int
	Genre     string
	Performer string
	Duration  *int
	AlbumID   *uuid.UUID
}

// SongFilter narrows song listings. Empty fields match everything.
type SongFilter struct {
	Title     string
	Performer string
}
