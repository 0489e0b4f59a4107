// Package playlistsong implements the playlist membership ledger using
// PostgreSQL. Uniqueness of a (playlist, song) pair is enforced by a database
// constraint, so concurrent adds of the same pair cannot race: the insert
// itself is the conflict check.
package playlistsong

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

// Repo provides playlist membership persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new playlist-song repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type songRow struct {
	ID        uuid.UUID  `db:"id"`
	Title     string     `db:"title"`
	Year      int        `db:"year"`
	Genre     string     `db:"genre"`
	Performer string     `db:"performer"`
	Duration  *int       `db:"duration"`
	AlbumID   *uuid.UUID `db:"album_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// Add inserts a membership row and returns its id. A duplicate
// (playlist, song) pair surfaces the unique violation as ErrAlreadyExists;
// a missing playlist or song surfaces the foreign key violation as
// ErrNotFound. There is deliberately no pre-insert existence check here.
func (r *Repo) Add(ctx context.Context, playlistID, songID uuid.UUID) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("playlist_songs").
		Columns("id", "playlist_id", "song_id").
		Values(uuid.New(), playlistID, songID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert playlist_song: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "playlist_song", playlistID)
	}

	return id, nil
}

// Remove deletes exactly one membership row. Removing an absent pair is an
// error (ErrNotFound), not a no-op.
func (r *Repo) Remove(ctx context.Context, playlistID, songID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Delete("playlist_songs").
		Where(squirrel.Eq{"playlist_id": playlistID, "song_id": songID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete playlist_song: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "playlist_song", playlistID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("playlist_song %s/%s: %w", playlistID, songID, domain.ErrNotFound)
	}

	return nil
}

// ListSongs returns the songs currently in a playlist, in the order they
// were added.
func (r *Repo) ListSongs(ctx context.Context, playlistID uuid.UUID) ([]domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("s.id", "s.title", "s.year", "s.genre", "s.performer", "s.duration", "s.album_id", "s.created_at", "s.updated_at").
		From("songs s").
		Join("playlist_songs ps ON ps.song_id = s.id").
		Where(squirrel.Eq{"ps.playlist_id": playlistID}).
		OrderBy("ps.created_at ASC", "ps.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list playlist songs: %w", err)
	}

	var rows []songRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "playlist_song", playlistID)
	}

	songs := make([]domain.Song, len(rows))
	for i, row := range rows {
		songs[i] = domain.Song(row)
	}

	return songs, nil
}
