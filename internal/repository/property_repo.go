// internal/repository/property_repo.go
package repository

import (
	"context"

	"realestate-api/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyRepository defines the interface for property data operations.
// Fetches return (nil, nil) when nothing matches.
type PropertyRepository interface {
	// Add creates the property and returns the identifier assigned by the store.
	Add(ctx context.Context, property *domain.Property) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	// GetByIDDetailed returns the property joined with its owner name and history summary.
	GetByIDDetailed(ctx context.Context, id uuid.UUID) (*domain.PropertyDetail, error)
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error)
	// Update replaces the mutable fields of the property except its price.
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ChangePrice records a price change with its reason. It is the only way
	// to alter the price of an existing property.
	ChangePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal, reason string) error
	// BulkUpsert upserts each item by its internal code, one routine call per
	// item, in slice order. Inside a transaction a failure undoes every item of
	// the call; outside one, items applied before the failure stay applied.
	BulkUpsert(ctx context.Context, properties []domain.Property) error
}
