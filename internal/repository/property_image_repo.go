// internal/repository/property_image_repo.go
package repository

import (
	"context"

	"realestate-api/internal/domain"

	"github.com/google/uuid"
)

// PropertyImageRepository defines the interface for property image metadata.
// Stored files are handled by file storage, never here.
type PropertyImageRepository interface {
	Add(ctx context.Context, image *domain.PropertyImage) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error)
	List(ctx context.Context, filter domain.PropertyImageFilter) ([]domain.PropertyImage, error)
	GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error)
	Update(ctx context.Context, image *domain.PropertyImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ToggleEnable flips the enabled flag and nothing else.
	ToggleEnable(ctx context.Context, id uuid.UUID) error
}
