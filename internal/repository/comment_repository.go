package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type CommentRepository interface {
	List(ctx context.Context) ([]*entity.Comment, error)
	Get(ctx context.Context, id string) (*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	// Approve flips the comment to approved and returns the new value,
	// or nil when the comment does not exist.
	Approve(ctx context.Context, id string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
