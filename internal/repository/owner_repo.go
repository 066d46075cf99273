// internal/repository/owner_repo.go
package repository

import (
	"context"

	"realestate-api/internal/domain"

	"github.com/google/uuid"
)

// OwnerRepository defines the interface for owner data operations.
// Fetches return (nil, nil) when nothing matches.
type OwnerRepository interface {
	// Add creates the owner and returns the identifier assigned by the store.
	Add(ctx context.Context, owner *domain.Owner) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Owner, error)
	List(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, error)
	// Update replaces every mutable field of the owner.
	Update(ctx context.Context, owner *domain.Owner) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SetPhoto changes only the photo file of the owner and returns the number
	// of rows changed, 0 when the owner does not exist.
	SetPhoto(ctx context.Context, id uuid.UUID, fileName, contentType string) (int64, error)
}
