// internal/domain/filter.go
package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filters carry optional criteria. A nil field means "no constraint": the
// repository does not bind it and the routine applies its own default.

// PropertyFilter narrows a property listing.
type PropertyFilter struct {
	Name     *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	IdOwner  *uuid.UUID
}

// OwnerFilter narrows an owner listing.
type OwnerFilter struct {
	Name *string
}

// PropertyImageFilter narrows an image listing.
type PropertyImageFilter struct {
	IdProperty *uuid.UUID
	Enabled    *bool
}

// PropertyTraceFilter narrows a trace listing.
type PropertyTraceFilter struct {
	IdProperty *uuid.UUID
	TraceType  *TraceType
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Role     *string
	IsActive *bool
}
