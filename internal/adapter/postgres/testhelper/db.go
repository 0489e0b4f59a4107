// Package testhelper boots one throwaway PostgreSQL container per test
// run, migrates it, and hands out pools plus catalog seed data.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/harmonia-music/harmonia-backend/migrations"
)

const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "harmonia"
	pgPassword = "harmonia"
	pgDatabase = "harmonia_test"

	bootTimeout = 2 * time.Minute
)

var boot struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool connected to the shared migrated test
// database. The container starts on first use and lives until the test
// process exits; each caller's pool is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	boot.once.Do(func() {
		boot.dsn, boot.err = bootPostgres()
	})
	if boot.err != nil {
		t.Fatalf("testhelper: boot postgres: %v", boot.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, boot.dsn)
	if err != nil {
		t.Fatalf("testhelper: connect pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// bootPostgres starts the container and brings the schema to head.
func bootPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), bootTimeout)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			// Postgres restarts once during init; wait for the second ready line.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", pgImage, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), pgDatabase)

	if err := migrateToHead(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

// migrateToHead applies all embedded goose migrations. goose wants a
// *sql.DB, so this bridges through the pgx stdlib driver.
func migrateToHead(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration conn: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
