// Package testutil starts throwaway PostgreSQL instances for tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"catalog-service/internal/config"
	"catalog-service/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// PoolConfig sizes the pools created for tests.
var PoolConfig = config.DatabaseConfig{
	MaxConnections:  10,
	MinConnections:  1,
	MaxConnLifetime: 300,
}

// SetupTestDB starts a PostgreSQL container with the catalogue schema applied
// and registers its teardown with t.Cleanup. It skips under -short.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("catalog_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, PoolConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return &TestDB{
		Container: container,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// Reset removes every row from the catalogue tables.
func (db *TestDB) Reset(t *testing.T) {
	t.Helper()

	_, err := db.Pool.Exec(context.Background(),
		"TRUNCATE product_reviews, products, categories")
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}

// Count returns the number of rows in table.
func (db *TestDB) Count(t *testing.T, table string) int {
	t.Helper()

	var n int
	err := db.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	if err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return n
}
