package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/sqlstore"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

func TestCategoryRepo_GetBySlug(t *testing.T) {
	conn, mock, _ := sqlmock.New()
	defer func() { _ = conn.Close() }()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.Category{ID: "c1", Name: "Teknologi", Slug: "teknologi", Color: "#3182ce", CreatedAt: now}
	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE slug = $1")).
		WithArgs("teknologi").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "color", "created_at"}).
			AddRow(want.ID, want.Name, want.Slug, want.Color, want.CreatedAt))

	got, err := sqlstore.NewCategoryRepo(conn, db.Postgres).GetBySlug(context.Background(), "teknologi")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryRepo_Create_Duplicate(t *testing.T) {
	conn, mock, _ := sqlmock.New()
	defer func() { _ = conn.Close() }()

	mock.ExpectExec("INSERT INTO categories").WillReturnError(&pgconn.PgError{Code: "23505"})

	err := sqlstore.NewCategoryRepo(conn, db.Postgres).Create(context.Background(), &entity.Category{ID: "c1"})
	if !errors.Is(err, repository.ErrDuplicateSlug) {
		t.Fatalf("err=%v, want ErrDuplicateSlug", err)
	}
}

func TestCommentRepo_Approve(t *testing.T) {
	conn, mock, _ := sqlmock.New()
	defer func() { _ = conn.Close() }()

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_approved = $1 WHERE id = $2")).
		WithArgs(true, "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE id = $1")).
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "article_id", "author_name", "content", "is_approved", "likes", "created_at"}).
			AddRow("m1", "a1", "Budi", "Mantap", true, 0, now))

	got, err := sqlstore.NewCommentRepo(conn, db.Postgres).Approve(context.Background(), "m1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || !got.IsApproved {
		t.Fatalf("Approve = %+v, want approved comment", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_Approve_Missing(t *testing.T) {
	conn, mock, _ := sqlmock.New()
	defer func() { _ = conn.Close() }()

	mock.ExpectExec("UPDATE comments").WillReturnResult(sqlmock.NewResult(0, 0))

	got, err := sqlstore.NewCommentRepo(conn, db.Postgres).Approve(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("Approve = %v, %v; want nil, nil", got, err)
	}
}

func TestAdminRepo_GetByUsername_NotFound(t *testing.T) {
	conn, mock, _ := sqlmock.New()
	defer func() { _ = conn.Close() }()

	mock.ExpectQuery("FROM admins").WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	got, err := sqlstore.NewAdminRepo(conn, db.Postgres).GetByUsername(context.Background(), "ghost")
	if err != nil || got != nil {
		t.Fatalf("GetByUsername = %v, %v; want nil, nil", got, err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !sqlstore.IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 should be a unique violation")
	}
	if sqlstore.IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("23503 is a foreign key violation")
	}
	if sqlstore.IsUniqueViolation(errors.New("boom")) || sqlstore.IsUniqueViolation(nil) {
		t.Error("plain errors are not unique violations")
	}
}

func TestBreakerConfig(t *testing.T) {
	cfg := sqlstore.BreakerConfig()
	if !cfg.IsSuccessful(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violations must not count as breaker failures")
	}
	if cfg.IsSuccessful(sql.ErrConnDone) {
		t.Error("connection errors must count as breaker failures")
	}
}
