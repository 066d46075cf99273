// internal/repository/postgres/owner_pg.go
package postgres

import (
	"context"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"

	"github.com/google/uuid"
)

const (
	spCreateOwner   = "sp_CreateOwner"
	spGetOwnerByID  = "sp_GetOwnerById"
	spListOwners    = "sp_ListOwners"
	spUpdateOwner   = "sp_UpdateOwner"
	spDeleteOwner   = "sp_DeleteOwner"
	spSetOwnerPhoto = "sp_SetOwnerPhoto"
)

// OwnerRepository implements repository.OwnerRepository for PostgreSQL.
type OwnerRepository struct {
	exec *repository.CommandExecutor
}

// NewOwnerRepository creates a new OwnerRepository.
func NewOwnerRepository(exec *repository.CommandExecutor) repository.OwnerRepository {
	return &OwnerRepository{exec: exec}
}

// Add creates the owner and writes the generated identifier back into it.
func (r *OwnerRepository) Add(ctx context.Context, owner *domain.Owner) (uuid.UUID, error) {
	p := ownerFields(repository.NewParams(), owner).
		AddOutput("IdOwner", &owner.IdOwner)
	if _, err := r.exec.Execute(ctx, spCreateOwner, p); err != nil {
		return uuid.Nil, err
	}
	return owner.IdOwner, nil
}

// GetByID retrieves an owner by its ID.
func (r *OwnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	p := repository.NewParams().Add("IdOwner", id)
	return repository.QueryOne[domain.Owner](ctx, r.exec, spGetOwnerByID, p)
}

// List retrieves the owners matching filter.
func (r *OwnerRepository) List(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, error) {
	return repository.Query[domain.Owner](ctx, r.exec, spListOwners, OwnerFilterParams(filter))
}

// Update replaces all mutable fields of the owner.
func (r *OwnerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	p := ownerFields(repository.NewParams().Add("IdOwner", owner.IdOwner), owner)
	_, err := r.exec.Execute(ctx, spUpdateOwner, p)
	return err
}

// Delete removes the owner. Deleting a missing owner is not an error.
func (r *OwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.exec.Execute(ctx, spDeleteOwner, repository.NewParams().Add("IdOwner", id))
	return err
}

// SetPhoto changes only the photo of the owner and reports the affected rows.
func (r *OwnerRepository) SetPhoto(ctx context.Context, id uuid.UUID, fileName, contentType string) (int64, error) {
	p := repository.NewParams().
		Add("IdOwner", id).
		Add("PhotoFileName", fileName).
		Add("ContentType", contentType)
	return r.exec.Execute(ctx, spSetOwnerPhoto, p)
}

// OwnerFilterParams projects filter onto routine parameters.
func OwnerFilterParams(filter domain.OwnerFilter) *repository.Params {
	return repository.AddOptional(repository.NewParams(), "Name", filter.Name)
}

func ownerFields(p *repository.Params, o *domain.Owner) *repository.Params {
	return p.
		Add("Name", o.Name).
		Add("Address", o.Address).
		Add("ContactEmail", o.ContactEmail).
		Add("Phone", o.Phone).
		Add("Birthday", o.Birthday).
		Add("PhotoFileName", o.PhotoFileName)
}
