// internal/repository/postgres/property_trace_pg.go
package postgres

import (
	"context"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"

	"github.com/google/uuid"
)

const (
	spAddPropertyTrace              = "sp_AddPropertyTrace"
	spGetPropertyTraceByID          = "sp_GetPropertyTraceById"
	spListPropertyTraces            = "sp_ListPropertyTraces"
	spGetPropertyTracesByPropertyID = "sp_GetPropertyTracesByPropertyId"
	spUpdatePropertyTrace           = "sp_UpdatePropertyTrace"
	spDeletePropertyTrace           = "sp_DeletePropertyTrace"
)

// PropertyTraceRepository implements repository.PropertyTraceRepository for PostgreSQL.
type PropertyTraceRepository struct {
	exec *repository.CommandExecutor
}

// NewPropertyTraceRepository creates a new PropertyTraceRepository.
func NewPropertyTraceRepository(exec *repository.CommandExecutor) repository.PropertyTraceRepository {
	return &PropertyTraceRepository{exec: exec}
}

func (r *PropertyTraceRepository) Add(ctx context.Context, trace *domain.PropertyTrace) (uuid.UUID, error) {
	p := repository.NewParams().Add("IdProperty", trace.IdProperty)
	traceFields(p, trace).AddOutput("IdPropertyTrace", &trace.IdPropertyTrace)
	if _, err := r.exec.Execute(ctx, spAddPropertyTrace, p); err != nil {
		return uuid.Nil, err
	}
	return trace.IdPropertyTrace, nil
}

func (r *PropertyTraceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyTrace, error) {
	p := repository.NewParams().Add("IdPropertyTrace", id)
	return repository.QueryOne[domain.PropertyTrace](ctx, r.exec, spGetPropertyTraceByID, p)
}

func (r *PropertyTraceRepository) List(ctx context.Context, filter domain.PropertyTraceFilter) ([]domain.PropertyTrace, error) {
	p := repository.NewParams()
	repository.AddOptional(p, "IdProperty", filter.IdProperty)
	repository.AddOptional(p, "TraceType", filter.TraceType)
	return repository.Query[domain.PropertyTrace](ctx, r.exec, spListPropertyTraces, p)
}

func (r *PropertyTraceRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyTrace, error) {
	p := repository.NewParams().Add("IdProperty", propertyID)
	return repository.Query[domain.PropertyTrace](ctx, r.exec, spGetPropertyTracesByPropertyID, p)
}

func (r *PropertyTraceRepository) Update(ctx context.Context, trace *domain.PropertyTrace) error {
	p := traceFields(repository.NewParams().Add("IdPropertyTrace", trace.IdPropertyTrace), trace)
	_, err := r.exec.Execute(ctx, spUpdatePropertyTrace, p)
	return err
}

func (r *PropertyTraceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.exec.Execute(ctx, spDeletePropertyTrace, repository.NewParams().Add("IdPropertyTrace", id))
	return err
}

func traceFields(p *repository.Params, t *domain.PropertyTrace) *repository.Params {
	return p.
		Add("DateSale", t.DateSale).
		Add("Name", t.Name).
		Add("Value", t.Value).
		Add("Tax", t.Tax).
		Add("TraceType", t.TraceType).
		Add("Notes", t.Notes)
}
