package sqlstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/sqlstore"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
	"newsdesk/internal/resilience/circuitbreaker"
)

var timeEqual = cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })

func openSQLite(t *testing.T) *circuitbreaker.DBCircuitBreaker {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.MigrateUp(ctx, conn, db.SQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return circuitbreaker.NewDBCircuitBreakerWithConfig(conn, sqlstore.BreakerConfig())
}

func TestSQLite_ArticleRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewArticleRepo(openSQLite(t), db.SQLite)

	want := sampleArticle()
	if err := repo.Create(ctx, want); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetBySlug(ctx, want.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if diff := cmp.Diff(want, got, timeEqual); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	dup := sampleArticle()
	dup.ID = "a2"
	if err := repo.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicateSlug) {
		t.Fatalf("duplicate Create err=%v, want ErrDuplicateSlug", err)
	}

	ok, err := repo.Delete(ctx, want.ID)
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	if got, _ := repo.Get(ctx, want.ID); got != nil {
		t.Fatalf("Get after delete = %+v, want nil", got)
	}
}

func TestSQLite_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewArticleRepo(openSQLite(t), db.SQLite)

	a := sampleArticle()
	a.Views, a.Likes = 0, 0
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				if _, err := repo.IncrementViews(ctx, a.ID); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Views != workers*perWorker {
		t.Fatalf("views = %d, want %d", got.Views, workers*perWorker)
	}
}

func TestSQLite_CommentsAndAdmins(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)
	comments := sqlstore.NewCommentRepo(conn, db.SQLite)
	admins := sqlstore.NewAdminRepo(conn, db.SQLite)

	now := time.Now().UTC()
	if err := comments.Create(ctx, &entity.Comment{ID: "m1", ArticleID: "a1", AuthorName: "Budi", Content: "Mantap", CreatedAt: now}); err != nil {
		t.Fatal(err)
	}
	approved, err := comments.Approve(ctx, "m1")
	if err != nil || approved == nil || !approved.IsApproved {
		t.Fatalf("Approve = %+v, %v", approved, err)
	}

	admin := &entity.Admin{ID: "u1", Username: "editor", Password: "pw", Role: "superadmin", CreatedAt: now}
	if err := admins.Create(ctx, admin); err != nil {
		t.Fatal(err)
	}
	if err := admins.Create(ctx, &entity.Admin{ID: "u2", Username: "editor", Password: "x", Role: "admin", CreatedAt: now}); !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("duplicate admin err=%v", err)
	}
}
