package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	// Create returns ErrDuplicateSlug when the name or slug is taken.
	Create(ctx context.Context, category *entity.Category) error
}
