// internal/repository/postgres/property_pg.go
package postgres

import (
	"context"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	spCreateProperty            = "sp_CreateProperty"
	spGetPropertyByID           = "sp_GetPropertyById"
	spGetPropertyDetailedByID   = "sp_GetPropertyDetailedById"
	spListProperties            = "sp_ListProperties"
	spGetPropertiesByOwnerID    = "sp_GetPropertiesByOwnerId"
	spUpdateProperty            = "sp_UpdateProperty"
	spDeleteProperty            = "sp_DeleteProperty"
	spChangePropertyPrice       = "sp_ChangePropertyPrice"
	spBulkUpsertProperty        = "sp_BulkUpsertProperty"
	bulkUpsertPropertySavepoint = "bulk_upsert_property"
)

// PropertyRepository implements repository.PropertyRepository for PostgreSQL.
type PropertyRepository struct {
	exec *repository.CommandExecutor
}

// NewPropertyRepository creates a new PropertyRepository.
func NewPropertyRepository(exec *repository.CommandExecutor) repository.PropertyRepository {
	return &PropertyRepository{exec: exec}
}

// Add creates the property and writes the generated identifier back into it.
func (r *PropertyRepository) Add(ctx context.Context, property *domain.Property) (uuid.UUID, error) {
	p := propertyFields(repository.NewParams(), property).
		Add("Price", property.Price).
		Add("IsActive", property.IsActive).
		AddOutput("IdProperty", &property.IdProperty)
	if _, err := r.exec.Execute(ctx, spCreateProperty, p); err != nil {
		return uuid.Nil, err
	}
	return property.IdProperty, nil
}

// GetByID retrieves a property by its ID.
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p := repository.NewParams().Add("IdProperty", id)
	return repository.QueryOne[domain.Property](ctx, r.exec, spGetPropertyByID, p)
}

// GetByIDDetailed retrieves the joined view of a property.
func (r *PropertyRepository) GetByIDDetailed(ctx context.Context, id uuid.UUID) (*domain.PropertyDetail, error) {
	p := repository.NewParams().Add("IdProperty", id)
	return repository.QueryOne[domain.PropertyDetail](ctx, r.exec, spGetPropertyDetailedByID, p)
}

// List retrieves the properties matching filter.
func (r *PropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	return repository.Query[domain.Property](ctx, r.exec, spListProperties, PropertyFilterParams(filter))
}

// GetByOwnerID retrieves every property of an owner.
func (r *PropertyRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	p := repository.NewParams().Add("IdOwner", ownerID)
	return repository.Query[domain.Property](ctx, r.exec, spGetPropertiesByOwnerID, p)
}

// Update replaces the mutable fields of the property. Price is not bound:
// it only changes through ChangePrice.
func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	p := propertyFields(repository.NewParams().Add("IdProperty", property.IdProperty), property).
		Add("IsActive", property.IsActive)
	_, err := r.exec.Execute(ctx, spUpdateProperty, p)
	return err
}

// Delete removes the property. Deleting a missing property is not an error.
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.exec.Execute(ctx, spDeleteProperty, repository.NewParams().Add("IdProperty", id))
	return err
}

// ChangePrice records a price change event for the property.
func (r *PropertyRepository) ChangePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal, reason string) error {
	p := repository.NewParams().
		Add("IdProperty", id).
		Add("NewPrice", newPrice).
		Add("Reason", reason)
	_, err := r.exec.Execute(ctx, spChangePropertyPrice, p)
	return err
}

// BulkUpsert issues one upsert per item, in order, stopping at the first failure.
func (r *PropertyRepository) BulkUpsert(ctx context.Context, properties []domain.Property) error {
	if len(properties) == 0 {
		return nil
	}
	return r.exec.Atomically(ctx, bulkUpsertPropertySavepoint, func() error {
		for i := range properties {
			p := propertyFields(repository.NewParams(), &properties[i]).
				Add("Price", properties[i].Price)
			if _, err := r.exec.Execute(ctx, spBulkUpsertProperty, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// PropertyFilterParams projects filter onto routine parameters. Only set
// criteria are bound.
func PropertyFilterParams(filter domain.PropertyFilter) *repository.Params {
	p := repository.NewParams()
	repository.AddOptional(p, "Name", filter.Name)
	repository.AddOptional(p, "MinPrice", filter.MinPrice)
	repository.AddOptional(p, "MaxPrice", filter.MaxPrice)
	repository.AddOptional(p, "IdOwner", filter.IdOwner)
	return p
}

func propertyFields(p *repository.Params, pr *domain.Property) *repository.Params {
	return p.
		Add("Name", pr.Name).
		Add("CodeInternal", pr.CodeInternal).
		Add("Address", pr.Address).
		Add("Year", pr.Year).
		Add("IdOwner", pr.IdOwner).
		Add("Description", pr.Description).
		Add("Bedrooms", pr.Bedrooms).
		Add("Bathrooms", pr.Bathrooms).
		Add("SquareMeters", pr.SquareMeters)
}
