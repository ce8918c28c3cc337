package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{in: "postgres", want: Postgres},
		{in: " SQLite ", want: SQLite},
		{in: "memory", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialect_DriverName(t *testing.T) {
	assert.Equal(t, "pgx", Postgres.DriverName())
	assert.Equal(t, "sqlite", SQLite.DriverName())
}

func TestDialect_Rebind(t *testing.T) {
	q := "SELECT id FROM articles WHERE slug = ? AND category_id = ?"

	assert.Equal(t, "SELECT id FROM articles WHERE slug = $1 AND category_id = $2", Postgres.Rebind(q))
	assert.Equal(t, q, SQLite.Rebind(q))
}
