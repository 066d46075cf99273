// internal/domain/owner.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Owner represents a person or company owning one or more properties.
type Owner struct {
	IdOwner       uuid.UUID  `db:"id_owner" json:"id_owner"`               // Assigned by the store on creation
	Name          string     `db:"name" json:"name"`                       // Display name
	Address       string     `db:"address" json:"address"`                 // Postal address
	ContactEmail  *string    `db:"contact_email" json:"contact_email"`     // Optional contact email
	Phone         *string    `db:"phone" json:"phone"`                     // Optional phone number
	Birthday      *time.Time `db:"birthday" json:"birthday"`               // Optional birthday
	PhotoFileName *string    `db:"photo_file_name" json:"photo_file_name"` // Stored photo file, managed by file storage
}

// NewOwner creates a new Owner instance. The identifier is left empty; the store assigns it.
func NewOwner(name, address string) *Owner {
	return &Owner{
		Name:    name,
		Address: address,
	}
}
