// Package sqlstore implements the repository contracts on database/sql for
// both postgres (pgx) and sqlite (modernc.org/sqlite). Queries are written
// once with '?' placeholders and rebound per dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"newsdesk/internal/infra/db"
	"newsdesk/internal/resilience/circuitbreaker"
)

// DBTX is the subset of *sql.DB the repositories need. Both *sql.DB and
// *circuitbreaker.DBCircuitBreaker satisfy it.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type base struct {
	db      DBTX
	dialect db.Dialect
}

func (b base) query(ctx context.Context, q string, args ...interface{}) (*sql.Rows, error) {
	return b.db.QueryContext(ctx, b.dialect.Rebind(q), args...)
}

func (b base) queryRow(ctx context.Context, q string, args ...interface{}) *sql.Row {
	return b.db.QueryRowContext(ctx, b.dialect.Rebind(q), args...)
}

func (b base) exec(ctx context.Context, q string, args ...interface{}) (sql.Result, error) {
	return b.db.ExecContext(ctx, b.dialect.Rebind(q), args...)
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure on
// either backend.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// BreakerConfig extends circuitbreaker.DBConfig so constraint violations,
// which are caller errors, never trip the breaker.
func BreakerConfig() circuitbreaker.Config {
	cfg := circuitbreaker.DBConfig()
	isSuccessful := cfg.IsSuccessful
	cfg.IsSuccessful = func(err error) bool {
		return isSuccessful(err) || IsUniqueViolation(err)
	}
	return cfg
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
