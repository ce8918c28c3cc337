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

const articleColumns = `id, title, slug, excerpt, content, image_url, category_id,
author_name, author_role, is_breaking, is_featured, views, likes,
published_at, created_at, updated_at`

type ArticleRepo struct{ base }

func NewArticleRepo(conn DBTX, dialect db.Dialect) repository.ArticleRepository {
	return &ArticleRepo{base{db: conn, dialect: dialect}}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(s rowScanner) (*entity.Article, error) {
	var (
		a        entity.Article
		imageURL sql.NullString
	)
	err := s.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &imageURL,
		&a.CategoryID, &a.AuthorName, &a.AuthorRole, &a.IsBreaking, &a.IsFeatured,
		&a.Views, &a.Likes, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		a.ImageURL = &imageURL.String
	}
	return &a, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	rows, err := repo.query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 64)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	a, err := scanArticle(repo.queryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	a, err := scanArticle(repo.queryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = ? LIMIT 1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles (` + articleColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := repo.exec(ctx, query,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, nullableString(a.ImageURL),
		a.CategoryID, a.AuthorName, a.AuthorRole, a.IsBreaking, a.IsFeatured,
		a.Views, a.Likes, a.PublishedAt, a.CreatedAt, a.UpdatedAt)
	if IsUniqueViolation(err) {
		return repository.ErrDuplicateSlug
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update writes the mutable columns only; views and likes move through the
// increment statements so a concurrent increment is never overwritten.
func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) (bool, error) {
	const query = `
UPDATE articles
SET title = ?, slug = ?, excerpt = ?, content = ?, image_url = ?, category_id = ?,
    author_name = ?, author_role = ?, is_breaking = ?, is_featured = ?, updated_at = ?
WHERE id = ?`
	res, err := repo.exec(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, nullableString(a.ImageURL), a.CategoryID,
		a.AuthorName, a.AuthorRole, a.IsBreaking, a.IsFeatured, a.UpdatedAt, a.ID)
	if IsUniqueViolation(err) {
		return true, repository.ErrDuplicateSlug
	}
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	return rowsAffected(res)
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := repo.exec(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return rowsAffected(res)
}

func (repo *ArticleRepo) IncrementViews(ctx context.Context, id string) (bool, error) {
	res, err := repo.exec(ctx, `UPDATE articles SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("IncrementViews: %w", err)
	}
	return rowsAffected(res)
}

func (repo *ArticleRepo) IncrementLikes(ctx context.Context, id string) (bool, error) {
	res, err := repo.exec(ctx, `UPDATE articles SET likes = likes + 1 WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("IncrementLikes: %w", err)
	}
	return rowsAffected(res)
}
