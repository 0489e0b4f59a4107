package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager groups repository calls into one database transaction by
// planting a pgx.Tx in the context; repositories pick it up through
// QuerierFromCtx. Calls do not nest: RunInTx inside a RunInTx callback
// opens a second, independent transaction.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx runs fn inside a Read Committed transaction. The transaction
// commits only when fn returns nil; an error or a panic from fn rolls
// everything back (the panic is re-raised).
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// Rollback after a successful commit is a no-op, so the deferred
	// call covers both the error and the panic path.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
