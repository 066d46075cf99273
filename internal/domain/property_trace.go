// internal/domain/property_trace.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TraceType classifies a PropertyTrace event.
type TraceType string

const (
	TraceTypeSale        TraceType = "SALE"
	TraceTypePriceChange TraceType = "PRICE_CHANGE"
	TraceTypeValuation   TraceType = "VALUATION"
)

// Valid reports whether t is a known trace type.
func (t TraceType) Valid() bool {
	switch t {
	case TraceTypeSale, TraceTypePriceChange, TraceTypeValuation:
		return true
	}
	return false
}

// PropertyTrace records a sale or price event in the history of a property.
type PropertyTrace struct {
	IdPropertyTrace uuid.UUID       `db:"id_property_trace" json:"id_property_trace"` // Assigned by the store on creation
	IdProperty      uuid.UUID       `db:"id_property" json:"id_property"`             // Foreign key to Property
	DateSale        time.Time       `db:"date_sale" json:"date_sale"`                 // When the event happened
	Name            string          `db:"name" json:"name"`                           // Label
	Value           decimal.Decimal `db:"value" json:"value"`                         // Sale or new price
	Tax             decimal.Decimal `db:"tax" json:"tax"`
	TraceType       TraceType       `db:"trace_type" json:"trace_type"`
	Notes           *string         `db:"notes" json:"notes"`
}
