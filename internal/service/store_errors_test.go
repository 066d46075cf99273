// internal/service/store_errors_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"realestate-api/internal/domain"
	"realestate-api/internal/util"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func uniqueViolation(constraint string) *pq.Error {
	return &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint", Constraint: constraint}
}

func foreignKeyViolation(constraint string) *pq.Error {
	return &pq.Error{Code: "23503", Message: "violates foreign key constraint", Constraint: constraint}
}

func TestStoreError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"UniqueViolation", uniqueViolation("app_users_username_key"), util.ErrDuplicateEntry},
		{"ForeignKeyOnWrite", foreignKeyViolation("properties_id_owner_fkey"), util.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeError(tt.err, util.ErrInvalidInput)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("ForeignKeyOnDelete", func(t *testing.T) {
		err := storeError(foreignKeyViolation("properties_id_owner_fkey"), util.ErrConflict)
		assert.ErrorIs(t, err, util.ErrConflict)
		assert.Contains(t, err.Error(), "properties_id_owner_fkey")
	})

	t.Run("OtherErrorsUnchanged", func(t *testing.T) {
		connErr := errors.New("connection reset")
		assert.Same(t, connErr, storeError(connErr, util.ErrInvalidInput))

		checkErr := &pq.Error{Code: "23514", Message: "violates check constraint"}
		assert.Same(t, error(checkErr), storeError(checkErr, util.ErrInvalidInput))
	})
}

func TestRegister_ConcurrentDuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	uow := NewMockUnitOfWork()
	svc := NewUserService(&MockUnitOfWorkFactory{UoW: uow}, new(MockTokenIssuer))

	uow.expectTransaction(false)
	uow.UserRepo.On("GetByUsername", ctx, "jdoe").Return(nil, nil).Once()
	uow.UserRepo.On("Add", ctx, mock.AnythingOfType("*domain.AppUser")).
		Return(uuid.Nil, uniqueViolation("app_users_username_key")).Once()

	_, err := svc.Register(ctx, RegisterInput{Username: "jdoe", Password: "s3cret!"})

	assert.ErrorIs(t, err, util.ErrDuplicateEntry)
	uow.AssertAll(t)
}

func TestCreateProperty_DuplicateCodeIsConflict(t *testing.T) {
	ctx := context.Background()
	uow := NewMockUnitOfWork()
	svc := NewPropertyService(&MockUnitOfWorkFactory{UoW: uow})
	ownerID := uuid.New()

	uow.expectTransaction(false)
	uow.OwnerRepo.On("GetByID", ctx, ownerID).Return(&domain.Owner{IdOwner: ownerID}, nil).Once()
	uow.PropertyRepo.On("Add", ctx, mock.AnythingOfType("*domain.Property")).
		Return(uuid.Nil, uniqueViolation("properties_code_internal_key")).Once()

	_, err := svc.CreateProperty(ctx, validPropertyInput(ownerID))

	assert.ErrorIs(t, err, util.ErrDuplicateEntry)
	uow.AssertAll(t)
}

func TestUpdateProperty_UnknownOwnerIsInvalidInput(t *testing.T) {
	ctx := context.Background()
	uow := NewMockUnitOfWork()
	svc := NewPropertyService(&MockUnitOfWorkFactory{UoW: uow})
	existing := validPropertyInput(uuid.New()).toProperty()
	existing.IdProperty = uuid.New()

	uow.On("Close").Return(nil).Once()
	uow.PropertyRepo.On("GetByID", ctx, existing.IdProperty).Return(existing, nil).Once()
	uow.PropertyRepo.On("Update", ctx, mock.AnythingOfType("*domain.Property")).
		Return(foreignKeyViolation("properties_id_owner_fkey")).Once()

	_, err := svc.UpdateProperty(ctx, existing.IdProperty, validPropertyInput(uuid.New()))

	assert.ErrorIs(t, err, util.ErrInvalidInput)
	uow.AssertAll(t)
}

func TestDeleteOwner_WithPropertiesIsConflict(t *testing.T) {
	ctx := context.Background()
	uow := NewMockUnitOfWork()
	svc := NewOwnerService(&MockUnitOfWorkFactory{UoW: uow}, new(MockFileStore), discardLogger())
	id := uuid.New()

	uow.On("Close").Return(nil).Once()
	uow.OwnerRepo.On("Delete", ctx, id).Return(foreignKeyViolation("properties_id_owner_fkey")).Once()

	err := svc.DeleteOwner(ctx, id)

	assert.ErrorIs(t, err, util.ErrConflict)
	assert.NotErrorIs(t, err, util.ErrInvalidInput)
	uow.AssertAll(t)
}

func TestUpdateProperty_DuplicateCodeIsConflict(t *testing.T) {
	ctx := context.Background()
	uow := NewMockUnitOfWork()
	svc := NewPropertyService(&MockUnitOfWorkFactory{UoW: uow})
	ownerID := uuid.New()
	existing := validPropertyInput(ownerID).toProperty()
	existing.IdProperty = uuid.New()
	in := validPropertyInput(ownerID)
	in.CodeInternal = "CA-002"

	uow.On("Close").Return(nil).Once()
	uow.PropertyRepo.On("GetByID", ctx, existing.IdProperty).Return(existing, nil).Once()
	uow.PropertyRepo.On("Update", ctx, mock.AnythingOfType("*domain.Property")).
		Return(uniqueViolation("properties_code_internal_key")).Once()

	_, err := svc.UpdateProperty(ctx, existing.IdProperty, in)

	assert.ErrorIs(t, err, util.ErrDuplicateEntry)
	uow.AssertAll(t)
}
