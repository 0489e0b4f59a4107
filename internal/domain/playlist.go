package domain

import (
	"time"

	"github.com/google/uuid"
)

// Playlist represents a user-owned playlist. Membership rows and activity
// records are owned by the playlist and are removed with it.
type Playlist struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlaylistWithOwner is the listing projection: a playlist plus the owner's
// username, as returned by list queries.
type PlaylistWithOwner struct {
	Playlist
	OwnerUsername string
}

// Collaboration grants a user the same membership rights on a playlist as the
// owner. There is no read-only tier: a collaborator may mutate membership and
// read activity history.
type Collaboration struct {
	ID         uuid.UUID
	PlaylistID uuid.UUID
	UserID     uuid.UUID
	CreatedAt  time.Time
}
