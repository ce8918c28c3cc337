package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"newsdesk/internal/resilience/retry"
	"newsdesk/internal/pkg/config"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Open creates a connection pool for the dialect, applies pool settings and
// verifies the connection. The ping is retried with the DB backoff policy.
func Open(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("db: empty DSN")
	}

	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", dialect, err)
	}

	cfg := getConnectionConfigFromEnv()
	if dialect == SQLite {
		// a single writer avoids SQLITE_BUSY under concurrent increments
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("dialect", string(dialect)),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	err = retry.WithBackoff(ctx, retry.DBConfig(), func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return conn.PingContext(pingCtx)
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("db: ping %s: %w", dialect, err)
	}

	slog.Info("database connection established successfully", slog.String("dialect", string(dialect)))
	return conn, nil
}

// getConnectionConfigFromEnv reads connection pool configuration from environment variables.
// Invalid values fall back to the defaults with a warning.
func getConnectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()

	maxOpen := config.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns, config.ValidatePositiveInt)
	maxIdle := config.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns, config.ValidatePositiveInt)
	lifetime := config.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime, config.ValidatePositiveDuration)
	idleTime := config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime, config.ValidatePositiveDuration)

	for _, w := range slices.Concat(maxOpen.Warnings, maxIdle.Warnings, lifetime.Warnings, idleTime.Warnings) {
		slog.Warn("database pool configuration fallback", slog.String("warning", w))
	}

	cfg.MaxOpenConns = maxOpen.Value
	cfg.MaxIdleConns = maxIdle.Value
	cfg.ConnMaxLifetime = lifetime.Value
	cfg.ConnMaxIdleTime = idleTime.Value
	return cfg
}
