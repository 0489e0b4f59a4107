// Package song implements song catalog persistence using PostgreSQL.
package song

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

// Repo provides song persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new song repository.
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

const columns = "id, title, year, genre, performer, duration, album_id, created_at, updated_at"

// Create inserts a new song and returns it.
func (r *Repo) Create(ctx context.Context, song *domain.Song) (*domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("songs").
		Columns("id", "title", "year", "genre", "performer", "duration", "album_id").
		Values(uuid.New(), song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert song: %w", err)
	}

	var row songRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "song", song.ID)
	}

	s := domain.Song(row)
	return &s, nil
}

// GetByID returns a song by id, or ErrNotFound. This is also the existence
// check used before any membership mutation references a song.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select(columns).
		From("songs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select song: %w", err)
	}

	var row songRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "song", id)
	}

	s := domain.Song(row)
	return &s, nil
}

// List returns songs matching the filter, newest last. Title and performer
// filters are case-insensitive substring matches.
func (r *Repo) List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	builder := postgres.Builder().
		Select(columns).
		From("songs").
		OrderBy("created_at ASC")

	if filter.Title != "" {
		builder = builder.Where(squirrel.ILike{"title": "%" + filter.Title + "%"})
	}
	if filter.Performer != "" {
		builder = builder.Where(squirrel.ILike{"performer": "%" + filter.Performer + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list songs: %w", err)
	}

	var rows []songRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}

	songs := make([]domain.Song, len(rows))
	for i, row := range rows {
		songs[i] = domain.Song(row)
	}

	return songs, nil
}

// ListByAlbum returns the songs attached to an album.
func (r *Repo) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select(columns).
		From("songs").
		Where(squirrel.Eq{"album_id": albumID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list album songs: %w", err)
	}

	var rows []songRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "song", albumID)
	}

	songs := make([]domain.Song, len(rows))
	for i, row := range rows {
		songs[i] = domain.Song(row)
	}

	return songs, nil
}

// Update replaces a song's mutable attributes and returns the updated song.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.SongUpdateParams) (*domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Update("songs").
		Set("title", params.Title).
		Set("year", params.Year).
		Set("genre", params.Genre).
		Set("performer", params.Performer).
		Set("duration", params.Duration).
		Set("album_id", params.AlbumID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update song: %w", err)
	}

	var row songRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "song", id)
	}

	s := domain.Song(row)
	return &s, nil
}

// Delete removes a song. Returns ErrNotFound if no such song exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Delete("songs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete song: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "song", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("song %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
