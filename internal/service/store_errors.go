// internal/service/store_errors.go
package service

import (
	"errors"
	"fmt"

	"realestate-api/internal/util"

	"github.com/lib/pq"
)

// storeError translates PostgreSQL constraint violations into application
// errors. A unique violation is util.ErrDuplicateEntry; a foreign key violation
// is wrapped in onForeignKey. Anything else is returned unchanged.
func storeError(err error, onForeignKey error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "unique_violation":
		return fmt.Errorf("%w: %s", util.ErrDuplicateEntry, constraintOf(pqErr, "unique constraint"))
	case "foreign_key_violation":
		return fmt.Errorf("%w: %s", onForeignKey, constraintOf(pqErr, "foreign key constraint"))
	}
	return err
}

func constraintOf(pqErr *pq.Error, fallback string) string {
	if pqErr.Constraint != "" {
		return "violates " + pqErr.Constraint
	}
	return "violates " + fallback
}
