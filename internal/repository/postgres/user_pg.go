// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"

	"github.com/google/uuid"
)

const (
	spCreateUser        = "sp_CreateUser"
	spGetUserByID       = "sp_GetUserById"
	spGetUserByUsername = "sp_GetUserByUsername"
	spListUsers         = "sp_ListUsers"
	spUpdateUser        = "sp_UpdateUser"
	spDeleteUser        = "sp_DeleteUser"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	exec *repository.CommandExecutor
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(exec *repository.CommandExecutor) repository.UserRepository {
	return &UserRepository{exec: exec}
}

// Add inserts a new user and writes the generated identifier back into it.
func (r *UserRepository) Add(ctx context.Context, user *domain.AppUser) (uuid.UUID, error) {
	p := userFields(repository.NewParams(), user).AddOutput("IdUser", &user.IdUser)
	if _, err := r.exec.Execute(ctx, spCreateUser, p); err != nil {
		return uuid.Nil, err
	}
	return user.IdUser, nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppUser, error) {
	p := repository.NewParams().Add("IdUser", id)
	return repository.QueryOne[domain.AppUser](ctx, r.exec, spGetUserByID, p)
}

// GetByUsername retrieves a user by their username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.AppUser, error) {
	p := repository.NewParams().Add("Username", username)
	return repository.QueryOne[domain.AppUser](ctx, r.exec, spGetUserByUsername, p)
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.AppUser, error) {
	p := repository.NewParams()
	repository.AddOptional(p, "Role", filter.Role)
	repository.AddOptional(p, "IsActive", filter.IsActive)
	return repository.Query[domain.AppUser](ctx, r.exec, spListUsers, p)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.AppUser) error {
	p := userFields(repository.NewParams().Add("IdUser", user.IdUser), user).
		Add("IsActive", user.IsActive)
	_, err := r.exec.Execute(ctx, spUpdateUser, p)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.exec.Execute(ctx, spDeleteUser, repository.NewParams().Add("IdUser", id))
	return err
}

func userFields(p *repository.Params, u *domain.AppUser) *repository.Params {
	return p.
		Add("Username", u.Username).
		Add("PasswordHash", u.PasswordHash).
		Add("FullName", u.FullName).
		Add("Role", u.Role)
}
