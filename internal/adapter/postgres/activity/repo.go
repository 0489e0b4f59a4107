// Package activity implements the playlist activity log using PostgreSQL.
// The log is append-only: rows are inserted on every successful membership
// mutation and are never updated or deleted while the playlist exists.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/adapter/postgres"
	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type activityRow struct {
	ID         uuid.UUID `db:"id"`
	Seq        int64     `db:"seq"`
	PlaylistID uuid.UUID `db:"playlist_id"`
	SongID     uuid.UUID `db:"song_id"`
	UserID     uuid.UUID `db:"user_id"`
	Action     string    `db:"action"`
	CreatedAt  time.Time `db:"created_at"`
}

// Append inserts one activity record. It succeeds regardless of current
// ledger state: the log reflects requested actions, not membership contents.
func (r *Repo) Append(ctx context.Context, rec domain.Activity) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := postgres.Builder().
		Insert("playlist_song_activities").
		Columns("id", "playlist_id", "song_id", "user_id", "action", "created_at").
		Values(id, rec.PlaylistID, rec.SongID, rec.UserID, string(rec.Action), createdAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert activity: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "activity", rec.PlaylistID)
	}

	return nil
}

// ListByPlaylist returns the full activity history of a playlist, oldest
// first. The seq column breaks created_at ties in insertion order, so the
// result is a stable total order across repeated reads.
func (r *Repo) ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("id", "seq", "playlist_id", "song_id", "user_id", "action", "created_at").
		From("playlist_song_activities").
		Where(squirrel.Eq{"playlist_id": playlistID}).
		OrderBy("created_at ASC", "seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", playlistID)
	}

	records := make([]domain.Activity, len(rows))
	for i, row := range rows {
		records[i] = domain.Activity{
			ID:         row.ID,
			Seq:        row.Seq,
			PlaylistID: row.PlaylistID,
			SongID:     row.SongID,
			UserID:     row.UserID,
			Action:     domain.ActivityAction(row.Action),
			CreatedAt:  row.CreatedAt,
		}
	}

	return records, nil
}
