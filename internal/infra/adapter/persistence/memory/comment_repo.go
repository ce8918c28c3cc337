package memory

import (
	"context"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CommentRepo struct{ s *Store }

func NewCommentRepo(s *Store) repository.CommentRepository {
	return &CommentRepo{s: s}
}

func (repo *CommentRepo) List(_ context.Context) ([]*entity.Comment, error) {
	rows := repo.s.comments.all()
	out := make([]*entity.Comment, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (repo *CommentRepo) Get(_ context.Context, id string) (*entity.Comment, error) {
	c, ok := repo.s.comments.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (repo *CommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	repo.s.comments.insert(comment.ID, *comment, nil)
	return nil
}

func (repo *CommentRepo) Approve(_ context.Context, id string) (*entity.Comment, error) {
	c, ok := repo.s.comments.mutate(id, func(c *entity.Comment) { c.IsApproved = true })
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (repo *CommentRepo) Delete(_ context.Context, id string) (bool, error) {
	return repo.s.comments.remove(id), nil
}
