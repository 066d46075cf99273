// internal/repository/user_repo.go
package repository

import (
	"context"

	"realestate-api/internal/domain"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Add creates the user and returns the identifier assigned by the store.
	Add(ctx context.Context, user *domain.AppUser) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AppUser, error)
	// GetByUsername returns (nil, nil) when no user has that username.
	GetByUsername(ctx context.Context, username string) (*domain.AppUser, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.AppUser, error)
	Update(ctx context.Context, user *domain.AppUser) error
	Delete(ctx context.Context, id uuid.UUID) error
}
