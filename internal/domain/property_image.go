// internal/domain/property_image.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyImage is the metadata of an image file attached to a property.
type PropertyImage struct {
	IdPropertyImage uuid.UUID `db:"id_property_image" json:"id_property_image"` // Assigned by the store on creation
	IdProperty      uuid.UUID `db:"id_property" json:"id_property"`             // Foreign key to Property
	FileName        string    `db:"file_name" json:"file_name"`                 // Key in file storage
	ContentType     string    `db:"content_type" json:"content_type"`           // MIME type
	Size            int64     `db:"size" json:"size"`                           // Bytes
	Enabled         bool      `db:"enabled" json:"enabled"`                     // Soft toggle, the file is kept
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// NewPropertyImage creates an enabled PropertyImage for a stored file.
func NewPropertyImage(propertyID uuid.UUID, fileName, contentType string, size int64) *PropertyImage {
	return &PropertyImage{
		IdProperty:  propertyID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		Enabled:     true,
		CreatedAt:   time.Now().UTC(),
	}
}
