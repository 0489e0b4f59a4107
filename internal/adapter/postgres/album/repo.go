// Package album implements album and album-like persistence using PostgreSQL.
package album

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

// Repo provides album persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new album repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type albumRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Year      int       `db:"year"`
	CoverURL  *string   `db:"cover_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const columns = "id, name, year, cover_url, created_at, updated_at"

// Create inserts a new album and returns it.
func (r *Repo) Create(ctx context.Context, name string, year int) (*domain.Album, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("albums").
		Columns("id", "name", "year").
		Values(uuid.New(), name, year).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert album: %w", err)
	}

	var row albumRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "album", uuid.Nil)
	}

	a := domain.Album(row)
	return &a, nil
}

// GetByID returns an album by id, or ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select(columns).
		From("albums").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select album: %w", err)
	}

	var row albumRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "album", id)
	}

	a := domain.Album(row)
	return &a, nil
}

// Update replaces an album's mutable attributes and returns the updated album.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.AlbumUpdateParams) (*domain.Album, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Update("albums").
		Set("name", params.Name).
		Set("year", params.Year).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update album: %w", err)
	}

	var row albumRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "album", id)
	}

	a := domain.Album(row)
	return &a, nil
}

// SetCoverURL records the public URL of an uploaded cover image.
func (r *Repo) SetCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Update("albums").
		Set("cover_url", coverURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update album cover: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "album", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an album. Returns ErrNotFound if no such album exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Delete("albums").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete album: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "album", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Like records that userID likes the album. Liking twice surfaces the unique
// violation as ErrAlreadyExists; liking a missing album as ErrNotFound.
func (r *Repo) Like(ctx context.Context, albumID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("album_likes").
		Columns("id", "album_id", "user_id").
		Values(uuid.New(), albumID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert album_like: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "album_like", albumID)
	}

	return nil
}

// Unlike removes a like. Returns ErrNotFound if the user had not liked the album.
func (r *Repo) Unlike(ctx context.Context, albumID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Delete("album_likes").
		Where(squirrel.Eq{"album_id": albumID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete album_like: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "album_like", albumID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("album_like %s/%s: %w", albumID, userID, domain.ErrNotFound)
	}

	return nil
}

// CountLikes returns the number of likes on an album.
func (r *Repo) CountLikes(ctx context.Context, albumID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("count(*)").
		From("album_likes").
		Where(squirrel.Eq{"album_id": albumID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count album_likes: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "album_like", albumID)
	}

	return count, nil
}
