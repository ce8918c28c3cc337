package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestGetConnectionConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_MAX_IDLE_CONNS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME", "")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "")

	assert.Equal(t, DefaultConnectionConfig(), getConnectionConfigFromEnv())
}

func TestGetConnectionConfigFromEnv_MaxOpenConns(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{name: "valid value", envValue: "50", expected: 50},
		{name: "invalid value - non-numeric", envValue: "invalid", expected: 25},
		{name: "invalid value - zero", envValue: "0", expected: 25},
		{name: "invalid value - negative", envValue: "-10", expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_MAX_OPEN_CONNS", tt.envValue)
			assert.Equal(t, tt.expected, getConnectionConfigFromEnv().MaxOpenConns)
		})
	}
}

func TestGetConnectionConfigFromEnv_Durations(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "2h")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "not-a-duration")

	cfg := getConnectionConfigFromEnv()
	assert.Equal(t, 2*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), Postgres, "")
	assert.Error(t, err)
}

func TestOpen_SQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, SQLite, ":memory:")
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)

	require.NoError(t, MigrateUp(ctx, conn, SQLite))
	// running twice is harmless
	require.NoError(t, MigrateUp(ctx, conn, SQLite))

	var n int
	require.NoError(t, conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&n))
	assert.Equal(t, 0, n)
}
