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

type AdminRepo struct{ base }

func NewAdminRepo(conn DBTX, dialect db.Dialect) repository.AdminRepository {
	return &AdminRepo{base{db: conn, dialect: dialect}}
}

func (repo *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var a entity.Admin
	err := repo.queryRow(ctx,
		`SELECT id, username, password, role, created_at FROM admins WHERE username = ? LIMIT 1`, username).
		Scan(&a.ID, &a.Username, &a.Password, &a.Role, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &a, nil
}

func (repo *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	_, err := repo.exec(ctx,
		`INSERT INTO admins (id, username, password, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Password, a.Role, a.CreatedAt)
	if IsUniqueViolation(err) {
		return repository.ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
