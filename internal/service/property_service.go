// internal/service/property_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"
	"realestate-api/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyInput carries the fields of a property. Price is read on creation and
// bulk upsert only; IsActive is read on update only.
type PropertyInput struct {
	Name         string
	CodeInternal string
	Address      string
	Price        decimal.Decimal
	Year         int
	IdOwner      uuid.UUID
	Description  string
	Bedrooms     int
	Bathrooms    int
	SquareMeters decimal.Decimal
	IsActive     *bool
}

// PropertyService defines the interface for property-related business logic.
type PropertyService interface {
	CreateProperty(ctx context.Context, in PropertyInput) (*domain.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	GetPropertyDetail(ctx context.Context, id uuid.UUID) (*domain.PropertyDetail, error)
	ListProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, in PropertyInput) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
	ChangePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal, reason string) error
	BulkUpsert(ctx context.Context, items []PropertyInput) (int, error)
}

// propertyService implements the PropertyService interface.
type propertyService struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(uowFactory repository.UnitOfWorkFactory) PropertyService {
	return &propertyService{uowFactory: uowFactory}
}

// CreateProperty validates the input, checks the owner and creates the property
// inside one transaction.
func (s *propertyService) CreateProperty(ctx context.Context, in PropertyInput) (*domain.Property, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	property := in.toProperty()
	err := repository.WithTransaction(ctx, uow, func() error {
		if _, err := getOwner(ctx, uow, in.IdOwner); err != nil {
			return err
		}
		_, err := uow.Properties().Add(ctx, property)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create property: %w", storeError(err, util.ErrInvalidInput))
	}
	return property, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	return getProperty(ctx, uow, id)
}

// GetPropertyDetail returns the joined view of a property together with its
// owner, images and history.
func (s *propertyService) GetPropertyDetail(ctx context.Context, id uuid.UUID) (*domain.PropertyDetail, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	detail, err := uow.Properties().GetByIDDetailed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property detail %s: %w", id, err)
	}
	if detail == nil {
		return nil, fmt.Errorf("property %s: %w", id, util.ErrNotFound)
	}

	detail.Owner, err = uow.Owners().GetByID(ctx, detail.IdOwner)
	if err != nil {
		return nil, fmt.Errorf("get property detail %s: owner: %w", id, err)
	}
	detail.Images, err = uow.PropertyImages().GetByPropertyID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property detail %s: images: %w", id, err)
	}
	detail.Traces, err = uow.PropertyTraces().GetByPropertyID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property detail %s: traces: %w", id, err)
	}
	return detail, nil
}

func (s *propertyService) ListProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, fmt.Errorf("min price is greater than max price: %w", util.ErrInvalidInput)
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	properties, err := uow.Properties().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

// ListOwnerProperties returns every property of an existing owner.
func (s *propertyService) ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	if _, err := getOwner(ctx, uow, ownerID); err != nil {
		return nil, err
	}
	properties, err := uow.Properties().GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list properties of owner %s: %w", ownerID, err)
	}
	return properties, nil
}

// UpdateProperty fetches the property, merges the input and replaces the
// record. The input price is ignored; use ChangePrice.
func (s *propertyService) UpdateProperty(ctx context.Context, id uuid.UUID, in PropertyInput) (*domain.Property, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	property, err := getProperty(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	property.Name = in.Name
	property.CodeInternal = in.CodeInternal
	property.Address = in.Address
	property.Year = in.Year
	property.IdOwner = in.IdOwner
	property.Description = in.Description
	property.Bedrooms = in.Bedrooms
	property.Bathrooms = in.Bathrooms
	property.SquareMeters = in.SquareMeters
	if in.IsActive != nil {
		property.IsActive = *in.IsActive
	}
	if err := uow.Properties().Update(ctx, property); err != nil {
		return nil, fmt.Errorf("update property %s: %w", id, storeError(err, util.ErrInvalidInput))
	}
	return property, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.New()
	defer uow.Close()

	if err := uow.Properties().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property %s: %w", id, storeError(err, util.ErrConflict))
	}
	return nil
}

// ChangePrice records a price change with its reason.
func (s *propertyService) ChangePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal, reason string) error {
	if newPrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("price must be greater than zero: %w", util.ErrInvalidInput)
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	if err := uow.Properties().ChangePrice(ctx, id, newPrice, reason); err != nil {
		return fmt.Errorf("change price of property %s: %w", id, storeError(err, util.ErrInvalidInput))
	}
	return nil
}

// BulkUpsert validates every item and upserts them in order inside one
// transaction: either all items apply or none do.
func (s *propertyService) BulkUpsert(ctx context.Context, items []PropertyInput) (int, error) {
	properties := make([]domain.Property, 0, len(items))
	for i, in := range items {
		if err := in.validate(true); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
		if strings.TrimSpace(in.CodeInternal) == "" {
			return 0, fmt.Errorf("item %d: internal code is required: %w", i, util.ErrInvalidInput)
		}
		properties = append(properties, *in.toProperty())
	}
	if len(properties) == 0 {
		return 0, nil
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	err := repository.WithTransaction(ctx, uow, func() error {
		return uow.Properties().BulkUpsert(ctx, properties)
	})
	if err != nil {
		return 0, fmt.Errorf("bulk upsert properties: %w", storeError(err, util.ErrInvalidInput))
	}
	return len(properties), nil
}

func getProperty(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) (*domain.Property, error) {
	property, err := uow.Properties().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property %s: %w", id, err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s: %w", id, util.ErrNotFound)
	}
	return property, nil
}

func (in PropertyInput) validate(withPrice bool) error {
	switch {
	case strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "":
		return fmt.Errorf("property name and address are required: %w", util.ErrInvalidInput)
	case in.IdOwner == uuid.Nil:
		return fmt.Errorf("property owner is required: %w", util.ErrInvalidInput)
	case withPrice && in.Price.LessThanOrEqual(decimal.Zero):
		return fmt.Errorf("price must be greater than zero: %w", util.ErrInvalidInput)
	case in.Bedrooms < 0 || in.Bathrooms < 0 || in.SquareMeters.IsNegative():
		return fmt.Errorf("room counts and area cannot be negative: %w", util.ErrInvalidInput)
	}
	return nil
}

func (in PropertyInput) toProperty() *domain.Property {
	p := domain.NewProperty(in.Name, in.CodeInternal, in.Address, in.Price, in.Year, in.IdOwner)
	p.Description = in.Description
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.SquareMeters = in.SquareMeters
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return p
}
