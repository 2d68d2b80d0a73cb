package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"communityserver/internal/domain"
	"communityserver/internal/infra"
	"communityserver/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new user repo.
func NewUserRepository(sqlExec infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sqlExec}
}

// GetByID returns one user or domain.ErrNotFound.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanOne(r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// GetByEmail returns one user by email or domain.ErrNotFound.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.sql.QueryRow(ctx, sqlinline.QSelectUserByEmail, email))
}

func (r *UserRepositoryPG) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Locale, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
