package database

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	connIdleTimeout   = 30 * time.Minute
	healthCheckPeriod = time.Minute
	startupPingWait   = 10 * time.Second
)

// NewPool opens the catalogue's PostgreSQL pool described by cfg.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	return NewPoolFromURL(ctx, cfg.ConnectionString(), cfg, logger)
}

// NewPoolFromURL opens a pool for connString and sizes it from cfg. The pool
// is returned only after the server answered a ping.
func NewPoolFromURL(ctx context.Context, connString string, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger = logger.With().Str("component", "catalog-db").Logger()

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog database url: %w", err)
	}
	applyPoolSettings(poolConfig, cfg)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("open catalog database pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingWait)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("catalog database %s:%d unreachable: %w",
			poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port, err)
	}

	logger.Info().
		Str("host", poolConfig.ConnConfig.Host).
		Uint16("port", poolConfig.ConnConfig.Port).
		Str("database", poolConfig.ConnConfig.Database).
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Dur("max_conn_lifetime", poolConfig.MaxConnLifetime).
		Msg("catalog database ready")

	return pool, nil
}

func applyPoolSettings(poolConfig *pgxpool.Config, cfg config.DatabaseConfig) {
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = connIdleTimeout
	poolConfig.HealthCheckPeriod = healthCheckPeriod
}
