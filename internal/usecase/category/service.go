// Package category implements category lookup and creation.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// ErrCategoryNotFound indicates that the requested category was not found.
var ErrCategoryNotFound = fmt.Errorf("category %w", entity.ErrNotFound)

// CreateInput represents the input parameters for creating a category.
// Color is optional and defaults to entity.DefaultCategoryColor.
type CreateInput struct {
	Name  string
	Color string
}

type Service struct {
	Repo repository.CategoryRepository
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create validates and stores a new category. The slug is derived from the
// name; a name or slug collision is reported as a validation error on name.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	var errs entity.ValidationErrors
	if e := entity.RequireText("name", in.Name); e != nil {
		errs = append(errs, e)
	}
	slug := entity.Slugify(in.Name)
	if strings.TrimSpace(in.Name) != "" && slug == "" {
		errs = append(errs, &entity.ValidationError{Field: "name", Message: "must contain at least one letter or digit"})
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = entity.DefaultCategoryColor
	} else if err := entity.ValidateColor(color); err != nil {
		errs = append(errs, entity.Fields(err)...)
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	now := s.now()
	category := &entity.Category{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Slug:      slug,
		Color:     color,
		CreatedAt: now,
	}
	if err := s.Repo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, &entity.ValidationError{Field: "name", Message: "a category with this name already exists"}
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}
