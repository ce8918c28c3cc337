package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

type CategoryRepo struct{ base }

func NewCategoryRepo(conn DBTX, dialect db.Dialect) repository.CategoryRepository {
	return &CategoryRepo{base{db: conn, dialect: dialect}}
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := repo.query(ctx, `SELECT id, name, slug, color, created_at FROM categories ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) get(ctx context.Context, op, column, value string) (*entity.Category, error) {
	var c entity.Category
	err := repo.queryRow(ctx,
		`SELECT id, name, slug, color, created_at FROM categories WHERE `+column+` = ? LIMIT 1`, value).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (repo *CategoryRepo) Get(ctx context.Context, id string) (*entity.Category, error) {
	return repo.get(ctx, "Get", "id", id)
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.get(ctx, "GetBySlug", "slug", slug)
}

func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := repo.exec(ctx,
		`INSERT INTO categories (id, name, slug, color, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Slug, c.Color, c.CreatedAt)
	if IsUniqueViolation(err) {
		return repository.ErrDuplicateSlug
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
