// internal/api/handler/query.go
package handler

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"realestate-api/internal/domain"
	"realestate-api/internal/util"
)

// Query strings are projected onto the per-entity filters. Missing or empty
// keys leave the criterion unset; unknown keys are ignored.

func optString(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func optDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", util.ErrInvalidInput, key)
	}
	return &d, nil
}

func optUUID(q url.Values, key string) (*uuid.UUID, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a UUID", util.ErrInvalidInput, key)
	}
	return &id, nil
}

func optBool(q url.Values, key string) (*bool, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", util.ErrInvalidInput, key)
	}
	return &b, nil
}

func propertyFilterFromQuery(q url.Values) (domain.PropertyFilter, error) {
	var f domain.PropertyFilter
	var err error
	f.Name = optString(q, "name")
	if f.MinPrice, err = optDecimal(q, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optDecimal(q, "max_price"); err != nil {
		return f, err
	}
	if f.IdOwner, err = optUUID(q, "id_owner"); err != nil {
		return f, err
	}
	return f, nil
}

func traceFilterFromQuery(q url.Values) domain.PropertyTraceFilter {
	var f domain.PropertyTraceFilter
	if v := optString(q, "trace_type"); v != nil {
		t := domain.TraceType(*v)
		f.TraceType = &t
	}
	return f
}

func userFilterFromQuery(q url.Values) (domain.UserFilter, error) {
	var f domain.UserFilter
	var err error
	f.Role = optString(q, "role")
	if f.IsActive, err = optBool(q, "is_active"); err != nil {
		return f, err
	}
	return f, nil
}
