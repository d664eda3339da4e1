package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for the catalogue tables. Every statement is idempotent.
//
//go:embed schema.sql
var Schema string

// EnsureSchema creates the catalogue tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	logger.Info().Msg("database schema ensured")
	return nil
}
