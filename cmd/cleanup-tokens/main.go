// Command cleanup-tokens purges refresh tokens that are past expiry or
// already revoked. Run it from cron; the API never blocks on it.
//
// The database is taken from -dsn, falling back to DATABASE_DSN.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	tokenrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/token"
)

func main() {
	var (
		dsn     = flag.String("dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN (defaults to DATABASE_DSN)")
		timeout = flag.Duration("timeout", 30*time.Second, "overall run deadline")
	)
	flag.Parse()

	if err := run(*dsn, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "cleanup-tokens:", err)
		os.Exit(1)
	}
}

func run(dsn string, timeout time.Duration) error {
	if dsn == "" {
		return fmt.Errorf("no DSN: pass -dsn or set DATABASE_DSN")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	deleted, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("delete stale tokens: %w", err)
	}

	fmt.Printf("removed %d stale refresh tokens\n", deleted)
	return nil
}
