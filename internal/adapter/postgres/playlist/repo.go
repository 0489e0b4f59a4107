// Package playlist implements playlist and collaboration persistence using
// PostgreSQL.
package playlist

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

// Repo provides playlist persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new playlist repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type playlistRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	OwnerID   uuid.UUID `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type playlistWithOwnerRow struct {
	playlistRow
	OwnerUsername string `db:"owner_username"`
}

// Create inserts a new playlist owned by ownerID and returns it.
func (r *Repo) Create(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Playlist, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("playlists").
		Columns("id", "name", "owner_id").
		Values(uuid.New(), name, ownerID).
		Suffix("RETURNING id, name, owner_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert playlist: %w", err)
	}

	var row playlistRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "playlist", ownerID)
	}

	p := domain.Playlist(row)
	return &p, nil
}

// GetByID returns a playlist by id, or ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("id", "name", "owner_id", "created_at", "updated_at").
		From("playlists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select playlist: %w", err)
	}

	var row playlistRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "playlist", id)
	}

	p := domain.Playlist(row)
	return &p, nil
}

// ListByUser returns playlists the user owns plus playlists shared with the
// user through a collaboration, each with the owner's username.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithOwner, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("p.id", "p.name", "p.owner_id", "p.created_at", "p.updated_at", "u.username AS owner_username").
		From("playlists p").
		Join("users u ON u.id = p.owner_id").
		LeftJoin("collaborations c ON c.playlist_id = p.id").
		Where(squirrel.Or{
			squirrel.Eq{"p.owner_id": userID},
			squirrel.Eq{"c.user_id": userID},
		}).
		GroupBy("p.id", "u.username").
		OrderBy("p.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list playlists: %w", err)
	}

	var rows []playlistWithOwnerRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "playlist", userID)
	}

	result := make([]domain.PlaylistWithOwner, len(rows))
	for i, row := range rows {
		result[i] = domain.PlaylistWithOwner{
			Playlist:      domain.Playlist(row.playlistRow),
			OwnerUsername: row.OwnerUsername,
		}
	}

	return result, nil
}

// Delete removes a playlist. Membership rows and activity records cascade
// with it. Returns ErrNotFound if no such playlist exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Delete("playlists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete playlist: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "playlist", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("playlist %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AddCollaborator grants userID membership rights on the playlist.
// A duplicate grant surfaces as ErrAlreadyExists.
func (r *Repo) AddCollaborator(ctx context.Context, playlistID, userID uuid.UUID) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("collaborations").
		Columns("id", "playlist_id", "user_id").
		Values(uuid.New(), playlistID, userID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert collaboration: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "collaboration", playlistID)
	}

	return id, nil
}

// RemoveCollaborator revokes a collaboration. Returns ErrNotFound if the
// grant does not exist.
func (r *Repo) RemoveCollaborator(ctx context.Context, playlistID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Delete("collaborations").
		Where(squirrel.Eq{"playlist_id": playlistID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete collaboration: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "collaboration", playlistID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collaboration %s/%s: %w", playlistID, userID, domain.ErrNotFound)
	}

	return nil
}

// IsCollaborator reports whether userID holds a collaboration on the playlist.
func (r *Repo) IsCollaborator(ctx context.Context, playlistID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("1").
		From("collaborations").
		Where(squirrel.Eq{"playlist_id": playlistID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select collaboration: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "collaboration", playlistID)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, postgres.MapError(err, "collaboration", playlistID)
	}

	return exists, nil
}
