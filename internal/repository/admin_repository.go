package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	// Create returns ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, admin *entity.Admin) error
}
