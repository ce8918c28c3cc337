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

const commentColumns = `id, article_id, author_name, content, is_approved, likes, created_at`

type CommentRepo struct{ base }

func NewCommentRepo(conn DBTX, dialect db.Dialect) repository.CommentRepository {
	return &CommentRepo{base{db: conn, dialect: dialect}}
}

func scanComment(s rowScanner) (*entity.Comment, error) {
	var c entity.Comment
	if err := s.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Content, &c.IsApproved, &c.Likes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepo) List(ctx context.Context) ([]*entity.Comment, error) {
	rows, err := repo.query(ctx, `SELECT `+commentColumns+` FROM comments ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var comments []*entity.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Get(ctx context.Context, id string) (*entity.Comment, error) {
	c, err := scanComment(repo.queryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = ? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	_, err := repo.exec(ctx,
		`INSERT INTO comments (`+commentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ArticleID, c.AuthorName, c.Content, c.IsApproved, c.Likes, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Approve(ctx context.Context, id string) (*entity.Comment, error) {
	res, err := repo.exec(ctx, `UPDATE comments SET is_approved = ? WHERE id = ?`, true, id)
	if err != nil {
		return nil, fmt.Errorf("Approve: %w", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return nil, fmt.Errorf("Approve: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return repo.Get(ctx, id)
}

func (repo *CommentRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := repo.exec(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return rowsAffected(res)
}
