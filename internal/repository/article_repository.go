package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleRepository stores articles. Absence is signalled by a nil result,
// never by an error. Every returned article is a private copy.
type ArticleRepository interface {
	// List returns every article in storage order. Callers sort explicitly.
	List(ctx context.Context) ([]*entity.Article, error)
	Get(ctx context.Context, id string) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// Create inserts a new article. Returns ErrDuplicateSlug when another
	// article already owns the slug.
	Create(ctx context.Context, article *entity.Article) error
	// Update writes the editable fields of the article with the same ID.
	// Views, likes, publishedAt and createdAt are never overwritten. Returns
	// false when no such article exists, ErrDuplicateSlug on a slug collision.
	Update(ctx context.Context, article *entity.Article) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// IncrementViews and IncrementLikes add one atomically. They report
	// false, without an error, for an unknown id.
	IncrementViews(ctx context.Context, id string) (bool, error)
	IncrementLikes(ctx context.Context, id string) (bool, error)
}
