package memory

import (
	"context"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type AdminRepo struct{ s *Store }

func NewAdminRepo(s *Store) repository.AdminRepository {
	return &AdminRepo{s: s}
}

func (repo *AdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	a, ok := repo.s.admins.find(func(a entity.Admin) bool { return a.Username == username })
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (repo *AdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	collides := func(existing entity.Admin) bool { return existing.Username == admin.Username }
	if !repo.s.admins.insert(admin.ID, *admin, collides) {
		return repository.ErrDuplicateUsername
	}
	return nil
}
