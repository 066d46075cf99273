// internal/repository/property_trace_repo.go
package repository

import (
	"context"

	"realestate-api/internal/domain"

	"github.com/google/uuid"
)

// PropertyTraceRepository defines the interface for property history records.
type PropertyTraceRepository interface {
	Add(ctx context.Context, trace *domain.PropertyTrace) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyTrace, error)
	List(ctx context.Context, filter domain.PropertyTraceFilter) ([]domain.PropertyTrace, error)
	GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyTrace, error)
	Update(ctx context.Context, trace *domain.PropertyTrace) error
	Delete(ctx context.Context, id uuid.UUID) error
}
