// Package token implements refresh token persistence using PostgreSQL.
package token

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

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new refresh token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Create inserts a new refresh token row.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("refresh_tokens").
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(id, t.UserID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert refresh_token: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.UserID)
	}

	return nil
}

// GetByHash returns the token row matching a hash, or ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select refresh_token: %w", err)
	}

	var row tokenRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	t := domain.RefreshToken(row)
	return &t, nil
}

// RevokeByID marks a single token as revoked.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Update("refresh_tokens").
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke refresh_token: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh_token %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteExpired removes tokens past their expiry or already revoked.
// Returns the purge count.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Delete("refresh_tokens").
		Where(squirrel.Expr("expires_at < now() OR revoked_at IS NOT NULL")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired refresh_tokens: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh_tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
