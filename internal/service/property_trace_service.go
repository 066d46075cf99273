// internal/service/property_trace_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"
	"realestate-api/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TraceInput carries the fields of a property trace.
type TraceInput struct {
	DateSale  time.Time
	Name      string
	Value     decimal.Decimal
	Tax       decimal.Decimal
	TraceType domain.TraceType
	Notes     *string
}

// PropertyTraceService defines the interface for property history business logic.
type PropertyTraceService interface {
	AddTrace(ctx context.Context, propertyID uuid.UUID, in TraceInput) (*domain.PropertyTrace, error)
	GetTrace(ctx context.Context, id uuid.UUID) (*domain.PropertyTrace, error)
	ListTraces(ctx context.Context, filter domain.PropertyTraceFilter) ([]domain.PropertyTrace, error)
	UpdateTrace(ctx context.Context, id uuid.UUID, in TraceInput) (*domain.PropertyTrace, error)
	DeleteTrace(ctx context.Context, id uuid.UUID) error
}

// propertyTraceService implements the PropertyTraceService interface.
type propertyTraceService struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewPropertyTraceService creates a new instance of PropertyTraceService.
func NewPropertyTraceService(uowFactory repository.UnitOfWorkFactory) PropertyTraceService {
	return &propertyTraceService{uowFactory: uowFactory}
}

// AddTrace appends a history record to an existing property in a transaction.
func (s *propertyTraceService) AddTrace(ctx context.Context, propertyID uuid.UUID, in TraceInput) (*domain.PropertyTrace, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	trace := &domain.PropertyTrace{IdProperty: propertyID}
	in.applyTo(trace)
	err := repository.WithTransaction(ctx, uow, func() error {
		if _, err := getProperty(ctx, uow, propertyID); err != nil {
			return err
		}
		_, err := uow.PropertyTraces().Add(ctx, trace)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("add trace: %w", storeError(err, util.ErrInvalidInput))
	}
	return trace, nil
}

func (s *propertyTraceService) GetTrace(ctx context.Context, id uuid.UUID) (*domain.PropertyTrace, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	return getTrace(ctx, uow, id)
}

func (s *propertyTraceService) ListTraces(ctx context.Context, filter domain.PropertyTraceFilter) ([]domain.PropertyTrace, error) {
	if filter.TraceType != nil && !filter.TraceType.Valid() {
		return nil, fmt.Errorf("unknown trace type %q: %w", *filter.TraceType, util.ErrInvalidInput)
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	traces, err := uow.PropertyTraces().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list traces: %w", err)
	}
	return traces, nil
}

// UpdateTrace fetches the trace, merges the input and replaces the record.
// The property a trace belongs to never changes.
func (s *propertyTraceService) UpdateTrace(ctx context.Context, id uuid.UUID, in TraceInput) (*domain.PropertyTrace, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	trace, err := getTrace(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	in.applyTo(trace)
	if err := uow.PropertyTraces().Update(ctx, trace); err != nil {
		return nil, fmt.Errorf("update trace %s: %w", id, storeError(err, util.ErrInvalidInput))
	}
	return trace, nil
}

func (s *propertyTraceService) DeleteTrace(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.New()
	defer uow.Close()

	if err := uow.PropertyTraces().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trace %s: %w", id, storeError(err, util.ErrConflict))
	}
	return nil
}

func getTrace(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) (*domain.PropertyTrace, error) {
	trace, err := uow.PropertyTraces().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trace %s: %w", id, err)
	}
	if trace == nil {
		return nil, fmt.Errorf("trace %s: %w", id, util.ErrNotFound)
	}
	return trace, nil
}

func (in TraceInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("trace name is required: %w", util.ErrInvalidInput)
	case in.DateSale.IsZero():
		return fmt.Errorf("trace date is required: %w", util.ErrInvalidInput)
	case !in.TraceType.Valid():
		return fmt.Errorf("unknown trace type %q: %w", in.TraceType, util.ErrInvalidInput)
	case in.Value.IsNegative() || in.Tax.IsNegative():
		return fmt.Errorf("trace value and tax cannot be negative: %w", util.ErrInvalidInput)
	}
	return nil
}

func (in TraceInput) applyTo(t *domain.PropertyTrace) {
	t.DateSale = in.DateSale
	t.Name = in.Name
	t.Value = in.Value
	t.Tax = in.Tax
	t.TraceType = in.TraceType
	t.Notes = in.Notes
}
