// internal/service/owner_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"
	"realestate-api/internal/storage"
	"realestate-api/internal/util"

	"github.com/google/uuid"
)

// OwnerInput carries the mutable fields of an owner.
type OwnerInput struct {
	Name         string
	Address      string
	ContactEmail *string
	Phone        *string
	Birthday     *time.Time
}

// OwnerService defines the interface for owner-related business logic.
type OwnerService interface {
	CreateOwner(ctx context.Context, in OwnerInput) (*domain.Owner, error)
	GetOwner(ctx context.Context, id uuid.UUID) (*domain.Owner, error)
	ListOwners(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, error)
	UpdateOwner(ctx context.Context, id uuid.UUID, in OwnerInput) (*domain.Owner, error)
	DeleteOwner(ctx context.Context, id uuid.UUID) error
	SetOwnerPhoto(ctx context.Context, id uuid.UUID, contentType string, r io.Reader) (*domain.Owner, error)
	OpenOwnerPhoto(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
}

// ownerService implements the OwnerService interface.
type ownerService struct {
	uowFactory repository.UnitOfWorkFactory
	files      storage.FileStore
	logger     *slog.Logger
}

// NewOwnerService creates a new instance of OwnerService.
func NewOwnerService(uowFactory repository.UnitOfWorkFactory, files storage.FileStore, logger *slog.Logger) OwnerService {
	return &ownerService{uowFactory: uowFactory, files: files, logger: logger}
}

// CreateOwner validates the input and creates the owner inside a transaction.
func (s *ownerService) CreateOwner(ctx context.Context, in OwnerInput) (*domain.Owner, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	owner := domain.NewOwner(in.Name, in.Address)
	in.applyTo(owner)
	err := repository.WithTransaction(ctx, uow, func() error {
		_, err := uow.Owners().Add(ctx, owner)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create owner: %w", storeError(err, util.ErrInvalidInput))
	}
	return owner, nil
}

func (s *ownerService) GetOwner(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	return getOwner(ctx, uow, id)
}

func (s *ownerService) ListOwners(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	owners, err := uow.Owners().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	return owners, nil
}

// UpdateOwner fetches the owner, merges the input and replaces the record.
// The photo is kept; it changes only through SetOwnerPhoto.
func (s *ownerService) UpdateOwner(ctx context.Context, id uuid.UUID, in OwnerInput) (*domain.Owner, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	defer uow.Close()

	owner, err := getOwner(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	owner.Name = in.Name
	owner.Address = in.Address
	in.applyTo(owner)
	if err := uow.Owners().Update(ctx, owner); err != nil {
		return nil, fmt.Errorf("update owner %s: %w", id, storeError(err, util.ErrInvalidInput))
	}
	return owner, nil
}

func (s *ownerService) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.New()
	defer uow.Close()

	if err := uow.Owners().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete owner %s: %w", id, storeError(err, util.ErrConflict))
	}
	return nil
}

// SetOwnerPhoto stores the photo file and points the owner at it. A replaced
// photo file is removed once the record no longer references it.
func (s *ownerService) SetOwnerPhoto(ctx context.Context, id uuid.UUID, contentType string, r io.Reader) (*domain.Owner, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	owner, err := getOwner(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	key, _, err := s.files.Save(ctx, "owner", contentType, r)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return nil, fmt.Errorf("set owner photo: %w: %v", util.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("set owner photo: failed to store file: %w", err)
	}
	n, err := uow.Owners().SetPhoto(ctx, id, key, contentType)
	if err != nil {
		s.deleteFile(ctx, key)
		return nil, fmt.Errorf("set owner photo %s: %w", id, storeError(err, util.ErrInvalidInput))
	}
	if n == 0 {
		// Deleted after the lookup above.
		s.deleteFile(ctx, key)
		return nil, fmt.Errorf("owner %s: %w", id, util.ErrNotFound)
	}

	if owner.PhotoFileName != nil && *owner.PhotoFileName != "" {
		s.deleteFile(ctx, *owner.PhotoFileName)
	}
	owner.PhotoFileName = &key
	return owner, nil
}

// OpenOwnerPhoto returns the owner's photo and its content type.
func (s *ownerService) OpenOwnerPhoto(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	owner, err := getOwner(ctx, uow, id)
	if err != nil {
		return nil, "", err
	}
	if owner.PhotoFileName == nil || *owner.PhotoFileName == "" {
		return nil, "", fmt.Errorf("owner %s has no photo: %w", id, util.ErrNotFound)
	}
	return openFile(ctx, s.files, *owner.PhotoFileName)
}

func (s *ownerService) deleteFile(ctx context.Context, key string) {
	if err := s.files.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
		s.logger.Error("Failed to delete owner photo", "file", key, "error", err)
	}
}

func getOwner(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) (*domain.Owner, error) {
	owner, err := uow.Owners().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get owner %s: %w", id, err)
	}
	if owner == nil {
		return nil, fmt.Errorf("owner %s: %w", id, util.ErrNotFound)
	}
	return owner, nil
}

func openFile(ctx context.Context, files storage.FileStore, key string) (io.ReadCloser, string, error) {
	rc, contentType, err := files.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", fmt.Errorf("file %s: %w", key, util.ErrNotFound)
		}
		return nil, "", fmt.Errorf("open file %s: %w", key, err)
	}
	return rc, contentType, nil
}

func (in OwnerInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return fmt.Errorf("owner name and address are required: %w", util.ErrInvalidInput)
	}
	return nil
}

func (in OwnerInput) applyTo(o *domain.Owner) {
	o.ContactEmail = in.ContactEmail
	o.Phone = in.Phone
	o.Birthday = in.Birthday
}
