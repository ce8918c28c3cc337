package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema returns the DDL for the dialect, in execution order.
func schema(d Dialect) []string {
	ts, boolean, boolFalse := "TIMESTAMPTZ", "BOOLEAN", "FALSE"
	if d == SQLite {
		ts, boolean, boolFalse = "DATETIME", "INTEGER", "0"
	}

	return []string{
		`
CREATE TABLE IF NOT EXISTS categories (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    slug       TEXT NOT NULL UNIQUE,
    color      TEXT NOT NULL DEFAULT '#1a365d',
    created_at ` + ts + ` NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS articles (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    slug         TEXT NOT NULL UNIQUE,
    excerpt      TEXT NOT NULL,
    content      TEXT NOT NULL,
    image_url    TEXT,
    category_id  TEXT NOT NULL,
    author_name  TEXT NOT NULL,
    author_role  TEXT NOT NULL DEFAULT 'Editor',
    is_breaking  ` + boolean + ` NOT NULL DEFAULT ` + boolFalse + `,
    is_featured  ` + boolean + ` NOT NULL DEFAULT ` + boolFalse + `,
    views        BIGINT NOT NULL DEFAULT 0,
    likes        BIGINT NOT NULL DEFAULT 0,
    published_at ` + ts + ` NOT NULL,
    created_at   ` + ts + ` NOT NULL,
    updated_at   ` + ts + ` NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS comments (
    id          TEXT PRIMARY KEY,
    article_id  TEXT NOT NULL,
    author_name TEXT NOT NULL,
    content     TEXT NOT NULL,
    is_approved ` + boolean + ` NOT NULL DEFAULT ` + boolFalse + `,
    likes       BIGINT NOT NULL DEFAULT 0,
    created_at  ` + ts + ` NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS admins (
    id         TEXT PRIMARY KEY,
    username   TEXT NOT NULL UNIQUE,
    password   TEXT NOT NULL,
    role       TEXT NOT NULL DEFAULT 'admin',
    created_at ` + ts + ` NOT NULL
)`,
		// list/featured/breaking all order by published_at DESC
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
		// approved-per-article and the moderation queue
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id, is_approved)`,
	}
}

// MigrateUp creates every table and index if missing. It is idempotent.
func MigrateUp(ctx context.Context, conn *sql.DB, d Dialect) error {
	for _, stmt := range schema(d) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", d, err)
		}
	}
	return nil
}

// MigrateDown drops every table. Intended for tests and local resets.
func MigrateDown(ctx context.Context, conn *sql.DB) error {
	for _, table := range []string{"comments", "articles", "categories", "admins"} {
		if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("migrate down %s: %w", table, err)
		}
	}
	return nil
}
