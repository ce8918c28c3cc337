// Package fixtures provides reusable entity builders for tests.
// Builders return fully populated values; callers override only the fields
// a test cares about through functional options.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/domain/entity"
)

// Epoch is the fixed clock used by fixtures. Offsets from it keep
// publishedAt ordering deterministic.
var Epoch = time.Date(2024, 3, 24, 9, 0, 0, 0, time.UTC)

// Clock returns a func usable as a service's Now hook.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ArticleOption mutates an article under construction.
type ArticleOption func(*entity.Article)

// Article builds an article in category categoryID titled title.
//
// Example:
//
//	a := fixtures.Article("cat-1", "Harga BBM Naik",
//	    fixtures.PublishedAgo(2*time.Hour),
//	    fixtures.Views(10))
func Article(categoryID, title string, opts ...ArticleOption) *entity.Article {
	a := &entity.Article{
		ID:          uuid.NewString(),
		Title:       title,
		Slug:        entity.Slugify(title),
		Excerpt:     "Ringkasan " + title,
		Content:     "Isi lengkap " + title,
		CategoryID:  categoryID,
		AuthorName:  "Redaksi",
		AuthorRole:  entity.DefaultAuthorRole,
		PublishedAt: Epoch,
		CreatedAt:   Epoch,
		UpdatedAt:   Epoch,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PublishedAgo sets publishedAt to Epoch minus d.
func PublishedAgo(d time.Duration) ArticleOption {
	return func(a *entity.Article) { a.PublishedAt = Epoch.Add(-d) }
}

func Views(n int64) ArticleOption {
	return func(a *entity.Article) { a.Views = n }
}

func Likes(n int64) ArticleOption {
	return func(a *entity.Article) { a.Likes = n }
}

func Featured() ArticleOption {
	return func(a *entity.Article) { a.IsFeatured = true }
}

func Breaking() ArticleOption {
	return func(a *entity.Article) { a.IsBreaking = true }
}

// WithContent replaces excerpt and content.
func WithContent(excerpt, content string) ArticleOption {
	return func(a *entity.Article) {
		a.Excerpt = excerpt
		a.Content = content
	}
}

func ImageURL(u string) ArticleOption {
	return func(a *entity.Article) { a.ImageURL = &u }
}

// Category builds a category named name with the default color.
func Category(name string) *entity.Category {
	return &entity.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      entity.Slugify(name),
		Color:     entity.DefaultCategoryColor,
		CreatedAt: Epoch,
	}
}

// Comment builds a pending comment on articleID created ago before Epoch.
func Comment(articleID, author string, ago time.Duration) *entity.Comment {
	return &entity.Comment{
		ID:         uuid.NewString(),
		ArticleID:  articleID,
		AuthorName: author,
		Content:    "Komentar dari " + author,
		CreatedAt:  Epoch.Add(-ago),
	}
}

// Approved marks c approved and returns it.
func Approved(c *entity.Comment) *entity.Comment {
	c.IsApproved = true
	return c
}

// Admin builds an admin account with a plaintext password.
func Admin(username, password string) *entity.Admin {
	return &entity.Admin{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		Role:      "superadmin",
		CreatedAt: Epoch,
	}
}
