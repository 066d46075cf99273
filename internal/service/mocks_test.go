// internal/service/mocks_test.go
package service

import (
	"context"
	"io"
	"time"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of repository.UnitOfWork.
// Repository accessors return the embedded repository mocks.
type MockUnitOfWork struct {
	mock.Mock
	OwnerRepo    *MockOwnerRepository
	PropertyRepo *MockPropertyRepository
	ImageRepo    *MockPropertyImageRepository
	TraceRepo    *MockPropertyTraceRepository
	UserRepo     *MockUserRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		OwnerRepo:    new(MockOwnerRepository),
		PropertyRepo: new(MockPropertyRepository),
		ImageRepo:    new(MockPropertyImageRepository),
		TraceRepo:    new(MockPropertyTraceRepository),
		UserRepo:     new(MockUserRepository),
	}
}

func (m *MockUnitOfWork) Owners() repository.OwnerRepository                 { return m.OwnerRepo }
func (m *MockUnitOfWork) Properties() repository.PropertyRepository          { return m.PropertyRepo }
func (m *MockUnitOfWork) PropertyImages() repository.PropertyImageRepository { return m.ImageRepo }
func (m *MockUnitOfWork) PropertyTraces() repository.PropertyTraceRepository { return m.TraceRepo }
func (m *MockUnitOfWork) Users() repository.UserRepository                   { return m.UserRepo }

func (m *MockUnitOfWork) BeginTransaction(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) InTransaction() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockUnitOfWork) Close() error {
	args := m.Called()
	return args.Error(0)
}

// AssertAll checks the unit of work and every repository mock.
func (m *MockUnitOfWork) AssertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.OwnerRepo.AssertExpectations(t)
	m.PropertyRepo.AssertExpectations(t)
	m.ImageRepo.AssertExpectations(t)
	m.TraceRepo.AssertExpectations(t)
	m.UserRepo.AssertExpectations(t)
}

// expectTransaction sets up a begin followed by commit, or by rollback when
// committed is false. Close is always expected.
func (m *MockUnitOfWork) expectTransaction(committed bool) {
	m.On("BeginTransaction", mock.Anything).Return(nil).Once()
	if committed {
		m.On("Commit").Return(nil).Once()
	} else {
		m.On("Rollback").Return(nil).Once()
	}
	m.On("Close").Return(nil).Once()
}

// MockUnitOfWorkFactory hands out one prepared unit of work.
type MockUnitOfWorkFactory struct {
	UoW *MockUnitOfWork
}

func (f *MockUnitOfWorkFactory) New() repository.UnitOfWork { return f.UoW }

// MockOwnerRepository is a mock implementation of repository.OwnerRepository.
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) Add(ctx context.Context, owner *domain.Owner) (uuid.UUID, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockOwnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockOwnerRepository) List(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Owner), args.Error(1)
}

func (m *MockOwnerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOwnerRepository) SetPhoto(ctx context.Context, id uuid.UUID, fileName, contentType string) (int64, error) {
	args := m.Called(ctx, id, fileName, contentType)
	return args.Get(0).(int64), args.Error(1)
}

// MockPropertyRepository is a mock implementation of repository.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Add(ctx context.Context, property *domain.Property) (uuid.UUID, error) {
	args := m.Called(ctx, property)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByIDDetailed(ctx context.Context, id uuid.UUID) (*domain.PropertyDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyDetail), args.Error(1)
}

func (m *MockPropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) ChangePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal, reason string) error {
	args := m.Called(ctx, id, newPrice, reason)
	return args.Error(0)
}

func (m *MockPropertyRepository) BulkUpsert(ctx context.Context, properties []domain.Property) error {
	args := m.Called(ctx, properties)
	return args.Error(0)
}

// MockPropertyImageRepository is a mock implementation of repository.PropertyImageRepository.
type MockPropertyImageRepository struct {
	mock.Mock
}

func (m *MockPropertyImageRepository) Add(ctx context.Context, image *domain.PropertyImage) (uuid.UUID, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPropertyImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyImage), args.Error(1)
}

func (m *MockPropertyImageRepository) List(ctx context.Context, filter domain.PropertyImageFilter) ([]domain.PropertyImage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.PropertyImage), args.Error(1)
}

func (m *MockPropertyImageRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.PropertyImage), args.Error(1)
}

func (m *MockPropertyImageRepository) Update(ctx context.Context, image *domain.PropertyImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockPropertyImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyImageRepository) ToggleEnable(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPropertyTraceRepository is a mock implementation of repository.PropertyTraceRepository.
type MockPropertyTraceRepository struct {
	mock.Mock
}

func (m *MockPropertyTraceRepository) Add(ctx context.Context, trace *domain.PropertyTrace) (uuid.UUID, error) {
	args := m.Called(ctx, trace)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPropertyTraceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PropertyTrace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyTrace), args.Error(1)
}

func (m *MockPropertyTraceRepository) List(ctx context.Context, filter domain.PropertyTraceFilter) ([]domain.PropertyTrace, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.PropertyTrace), args.Error(1)
}

func (m *MockPropertyTraceRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyTrace, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.PropertyTrace), args.Error(1)
}

func (m *MockPropertyTraceRepository) Update(ctx context.Context, trace *domain.PropertyTrace) error {
	args := m.Called(ctx, trace)
	return args.Error(0)
}

func (m *MockPropertyTraceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, user *domain.AppUser) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AppUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.AppUser, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.AppUser), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.AppUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFileStore is a mock implementation of storage.FileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, prefix, contentType string, r io.Reader) (string, int64, error) {
	args := m.Called(ctx, prefix, contentType, r)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(userID uuid.UUID, role string) (string, time.Time, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
