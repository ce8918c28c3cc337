package memory

import (
	"context"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CategoryRepo struct{ s *Store }

func NewCategoryRepo(s *Store) repository.CategoryRepository {
	return &CategoryRepo{s: s}
}

func (repo *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	rows := repo.s.categories.all()
	out := make([]*entity.Category, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (repo *CategoryRepo) Get(_ context.Context, id string) (*entity.Category, error) {
	c, ok := repo.s.categories.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (repo *CategoryRepo) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	c, ok := repo.s.categories.find(func(c entity.Category) bool { return c.Slug == slug })
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (repo *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	collides := func(existing entity.Category) bool {
		return existing.Slug == category.Slug || strings.EqualFold(existing.Name, category.Name)
	}
	if !repo.s.categories.insert(category.ID, *category, collides) {
		return repository.ErrDuplicateSlug
	}
	return nil
}
