// internal/service/property_image_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"realestate-api/internal/domain"
	"realestate-api/internal/repository"
	"realestate-api/internal/storage"
	"realestate-api/internal/util"

	"github.com/google/uuid"
)

// PropertyImageService defines the interface for property image business logic.
type PropertyImageService interface {
	UploadImage(ctx context.Context, propertyID uuid.UUID, contentType string, r io.Reader) (*domain.PropertyImage, error)
	GetImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error)
	ListImages(ctx context.Context, filter domain.PropertyImageFilter) ([]domain.PropertyImage, error)
	ListPropertyImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error)
	ToggleImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
	OpenImageFile(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.PropertyImage, error)
}

// propertyImageService implements the PropertyImageService interface.
type propertyImageService struct {
	uowFactory repository.UnitOfWorkFactory
	files      storage.FileStore
	logger     *slog.Logger
}

// NewPropertyImageService creates a new instance of PropertyImageService.
func NewPropertyImageService(uowFactory repository.UnitOfWorkFactory, files storage.FileStore, logger *slog.Logger) PropertyImageService {
	return &propertyImageService{uowFactory: uowFactory, files: files, logger: logger}
}

// UploadImage stores the file and records it against the property in a
// transaction. The stored file is removed again if the record is not created.
func (s *propertyImageService) UploadImage(ctx context.Context, propertyID uuid.UUID, contentType string, r io.Reader) (*domain.PropertyImage, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	if _, err := getProperty(ctx, uow, propertyID); err != nil {
		return nil, err
	}

	key, size, err := s.files.Save(ctx, "property", contentType, r)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return nil, fmt.Errorf("upload image: %w: %v", util.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("upload image: failed to store file: %w", err)
	}

	image := domain.NewPropertyImage(propertyID, key, contentType, size)
	err = repository.WithTransaction(ctx, uow, func() error {
		_, err := uow.PropertyImages().Add(ctx, image)
		return err
	})
	if err != nil {
		s.deleteFile(ctx, key)
		return nil, fmt.Errorf("upload image: %w", storeError(err, util.ErrInvalidInput))
	}
	return image, nil
}

func (s *propertyImageService) GetImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	return getImage(ctx, uow, id)
}

func (s *propertyImageService) ListImages(ctx context.Context, filter domain.PropertyImageFilter) ([]domain.PropertyImage, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	images, err := uow.PropertyImages().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

func (s *propertyImageService) ListPropertyImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	images, err := uow.PropertyImages().GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list images of property %s: %w", propertyID, err)
	}
	return images, nil
}

// ToggleImage flips the enabled flag and returns the image as stored afterwards.
// The file itself is untouched.
func (s *propertyImageService) ToggleImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	if _, err := getImage(ctx, uow, id); err != nil {
		return nil, err
	}
	if err := uow.PropertyImages().ToggleEnable(ctx, id); err != nil {
		return nil, fmt.Errorf("toggle image %s: %w", id, err)
	}
	return getImage(ctx, uow, id)
}

// DeleteImage removes the image record and then its file. Deleting an unknown
// image is not an error.
func (s *propertyImageService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.New()
	defer uow.Close()

	image, err := uow.PropertyImages().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete image %s: %w", id, err)
	}
	if image == nil {
		return nil
	}
	if err := uow.PropertyImages().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete image %s: %w", id, storeError(err, util.ErrConflict))
	}
	s.deleteFile(ctx, image.FileName)
	return nil
}

// OpenImageFile returns the stored file of an image with its metadata.
func (s *propertyImageService) OpenImageFile(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.PropertyImage, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	image, err := getImage(ctx, uow, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := openFile(ctx, s.files, image.FileName)
	if err != nil {
		return nil, nil, err
	}
	return rc, image, nil
}

func (s *propertyImageService) deleteFile(ctx context.Context, key string) {
	if err := s.files.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
		s.logger.Error("Failed to delete image file", "file", key, "error", err)
	}
}

func getImage(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) (*domain.PropertyImage, error) {
	image, err := uow.PropertyImages().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get image %s: %w", id, err)
	}
	if image == nil {
		return nil, fmt.Errorf("image %s: %w", id, util.ErrNotFound)
	}
	return image, nil
}
