// internal/domain/property.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Property represents a real-estate listing.
type Property struct {
	IdProperty   uuid.UUID       `db:"id_property" json:"id_property"`     // Assigned by the store on creation
	Name         string          `db:"name" json:"name"`                   // Listing title
	CodeInternal string          `db:"code_internal" json:"code_internal"` // Business key, used by bulk upsert
	Address      string          `db:"address" json:"address"`             // Street address
	Price        decimal.Decimal `db:"price" json:"price"`                 // Changed only through ChangePrice after creation
	Year         int             `db:"year" json:"year"`                   // Construction year
	IdOwner      uuid.UUID       `db:"id_owner" json:"id_owner"`           // Foreign key to Owner
	Description  string          `db:"description" json:"description"`     // Free text
	Bedrooms     int             `db:"bedrooms" json:"bedrooms"`           // >= 0
	Bathrooms    int             `db:"bathrooms" json:"bathrooms"`         // >= 0
	SquareMeters decimal.Decimal `db:"square_meters" json:"square_meters"` // >= 0
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`       // Set by the store
	UpdatedAt    *time.Time      `db:"updated_at" json:"updated_at"`       // Set by the store on update
	IsActive     bool            `db:"is_active" json:"is_active"`         // Listing visibility
}

// PropertyDetail is the joined view of a property returned by the detailed fetch.
// Owner, Images and Traces are filled by the service layer, not by the routine.
type PropertyDetail struct {
	Property
	OwnerName     string              `db:"owner_name" json:"owner_name"`
	ImageCount    int                 `db:"image_count" json:"image_count"`
	TraceCount    int                 `db:"trace_count" json:"trace_count"`
	LastSaleDate  *time.Time          `db:"last_sale_date" json:"last_sale_date"`
	LastSaleValue decimal.NullDecimal `db:"last_sale_value" json:"last_sale_value"`

	Owner  *Owner          `db:"-" json:"owner,omitempty"`
	Images []PropertyImage `db:"-" json:"images,omitempty"`
	Traces []PropertyTrace `db:"-" json:"traces,omitempty"`
}

// NewProperty creates a new active Property instance owned by ownerID.
func NewProperty(name, codeInternal, address string, price decimal.Decimal, year int, ownerID uuid.UUID) *Property {
	return &Property{
		Name:         name,
		CodeInternal: codeInternal,
		Address:      address,
		Price:        price,
		Year:         year,
		IdOwner:      ownerID,
		SquareMeters: decimal.Zero,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
}
