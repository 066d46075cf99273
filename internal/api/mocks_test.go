// internal/api/mocks_test.go
package api_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"realestate-api/internal/domain"
	"realestate-api/internal/service"
)

// MockOwnerService is a mock implementation of service.OwnerService.
type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) CreateOwner(ctx context.Context, in service.OwnerInput) (*domain.Owner, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockOwnerService) GetOwner(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockOwnerService) ListOwners(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Owner), args.Error(1)
}

func (m *MockOwnerService) UpdateOwner(ctx context.Context, id uuid.UUID, in service.OwnerInput) (*domain.Owner, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockOwnerService) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOwnerService) SetOwnerPhoto(ctx context.Context, id uuid.UUID, contentType string, r io.Reader) (*domain.Owner, error) {
	args := m.Called(ctx, id, contentType, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockOwnerService) OpenOwnerPhoto(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

// MockPropertyService is a mock implementation of service.PropertyService.
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) CreateProperty(ctx context.Context, in service.PropertyInput) (*domain.Property, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) GetPropertyDetail(ctx context.Context, id uuid.UUID) (*domain.PropertyDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyDetail), args.Error(1)
}

func (m *MockPropertyService) ListProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyService) ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyService) UpdateProperty(ctx context.Context, id uuid.UUID, in service.PropertyInput) (*domain.Property, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyService) ChangePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal, reason string) error {
	args := m.Called(ctx, id, newPrice, reason)
	return args.Error(0)
}

func (m *MockPropertyService) BulkUpsert(ctx context.Context, items []service.PropertyInput) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

// MockImageService is a mock implementation of service.PropertyImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadImage(ctx context.Context, propertyID uuid.UUID, contentType string, r io.Reader) (*domain.PropertyImage, error) {
	args := m.Called(ctx, propertyID, contentType, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyImage), args.Error(1)
}

func (m *MockImageService) GetImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyImage), args.Error(1)
}

func (m *MockImageService) ListImages(ctx context.Context, filter domain.PropertyImageFilter) ([]domain.PropertyImage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyImage), args.Error(1)
}

func (m *MockImageService) ListPropertyImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyImage), args.Error(1)
}

func (m *MockImageService) ToggleImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyImage), args.Error(1)
}

func (m *MockImageService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockImageService) OpenImageFile(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.PropertyImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*domain.PropertyImage), args.Error(2)
}

// MockTraceService is a mock implementation of service.PropertyTraceService.
type MockTraceService struct {
	mock.Mock
}

func (m *MockTraceService) AddTrace(ctx context.Context, propertyID uuid.UUID, in service.TraceInput) (*domain.PropertyTrace, error) {
	args := m.Called(ctx, propertyID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyTrace), args.Error(1)
}

func (m *MockTraceService) GetTrace(ctx context.Context, id uuid.UUID) (*domain.PropertyTrace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyTrace), args.Error(1)
}

func (m *MockTraceService) ListTraces(ctx context.Context, filter domain.PropertyTraceFilter) ([]domain.PropertyTrace, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyTrace), args.Error(1)
}

func (m *MockTraceService) UpdateTrace(ctx context.Context, id uuid.UUID, in service.TraceInput) (*domain.PropertyTrace, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyTrace), args.Error(1)
}

func (m *MockTraceService) DeleteTrace(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, in service.RegisterInput) (*domain.AppUser, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.AppUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.AppUser, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppUser), args.Error(1)
}
