package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityAction is the kind of membership mutation an activity records.
type ActivityAction string

const (
	ActivityActionAdded   ActivityAction = "added"
	ActivityActionDeleted ActivityAction = "deleted"
)

// Validate returns ErrValidation for unknown actions.
func (a ActivityAction) Validate() error {
	switch a {
	case ActivityActionAdded, ActivityActionDeleted:
		return nil
	}
	return fmt.Errorf("%w: unknown activity action %q", ErrValidation, string(a))
}

func (a ActivityAction) String() string { return string(a) }

// Activity is one immutable audit record of a playlist membership mutation.
// Records are append-only: they are never updated or deleted while the
// playlist exists, and they outlive the membership row they describe.
//
// Seq is a storage-assigned monotone sequence that breaks CreatedAt ties, so
// records form a total order per playlist in insertion order.
type Activity struct {
	ID         uuid.UUID
	Seq        int64
	PlaylistID uuid.UUID
	SongID     uuid.UUID
	UserID     uuid.UUID
	Action     ActivityAction
	CreatedAt  time.Time
}
