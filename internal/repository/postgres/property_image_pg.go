// internal/repository/postgres/property_image_pg.go
package postgres

import (
	"context"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"

	"github.com/google/uuid"
)

const (
	spAddPropertyImage              = "sp_AddPropertyImage"
	spGetPropertyImageByID          = "sp_GetPropertyImageById"
	spListPropertyImages            = "sp_ListPropertyImages"
	spGetPropertyImagesByPropertyID = "sp_GetPropertyImagesByPropertyId"
	spUpdatePropertyImage           = "sp_UpdatePropertyImage"
	spDeletePropertyImage           = "sp_DeletePropertyImage"
	spTogglePropertyImageEnabled    = "sp_TogglePropertyImageEnabled"
)

// PropertyImageRepository implements repository.PropertyImageRepository for PostgreSQL.
type PropertyImageRepository struct {
	exec *repository.CommandExecutor
}

// NewPropertyImageRepository creates a new PropertyImageRepository.
func NewPropertyImageRepository(exec *repository.CommandExecutor) repository.PropertyImageRepository {
	return &PropertyImageRepository{exec: exec}
}

func (r *PropertyImageRepository) Add(ctx context.Context, image *domain.PropertyImage) (uuid.UUID, error) {
	p := repository.NewParams().Add("IdProperty", image.IdProperty)
	imageFields(p, image).AddOutput("IdPropertyImage", &image.IdPropertyImage)
	if _, err := r.exec.Execute(ctx, spAddPropertyImage, p); err != nil {
		return uuid.Nil, err
	}
	return image.IdPropertyImage, nil
}

func (r *PropertyImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	p := repository.NewParams().Add("IdPropertyImage", id)
	return repository.QueryOne[domain.PropertyImage](ctx, r.exec, spGetPropertyImageByID, p)
}

func (r *PropertyImageRepository) List(ctx context.Context, filter domain.PropertyImageFilter) ([]domain.PropertyImage, error) {
	p := repository.NewParams()
	repository.AddOptional(p, "IdProperty", filter.IdProperty)
	repository.AddOptional(p, "Enabled", filter.Enabled)
	return repository.Query[domain.PropertyImage](ctx, r.exec, spListPropertyImages, p)
}

func (r *PropertyImageRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error) {
	p := repository.NewParams().Add("IdProperty", propertyID)
	return repository.Query[domain.PropertyImage](ctx, r.exec, spGetPropertyImagesByPropertyID, p)
}

// Update replaces the metadata of the image. The owning property never changes.
func (r *PropertyImageRepository) Update(ctx context.Context, image *domain.PropertyImage) error {
	p := repository.NewParams().Add("IdPropertyImage", image.IdPropertyImage)
	imageFields(p, image).Add("Enabled", image.Enabled)
	_, err := r.exec.Execute(ctx, spUpdatePropertyImage, p)
	return err
}

func (r *PropertyImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.exec.Execute(ctx, spDeletePropertyImage, repository.NewParams().Add("IdPropertyImage", id))
	return err
}

func (r *PropertyImageRepository) ToggleEnable(ctx context.Context, id uuid.UUID) error {
	_, err := r.exec.Execute(ctx, spTogglePropertyImageEnabled, repository.NewParams().Add("IdPropertyImage", id))
	return err
}

func imageFields(p *repository.Params, img *domain.PropertyImage) *repository.Params {
	return p.
		Add("FileName", img.FileName).
		Add("ContentType", img.ContentType).
		Add("Size", img.Size)
}
