// internal/storage/local.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrFileNotFound is returned when no file exists under a key.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidKey is returned for keys that escape the base directory.
	ErrInvalidKey = errors.New("invalid storage key")
	// ErrUnsupportedType is returned for content types other than jpeg, png and webp.
	ErrUnsupportedType = errors.New("unsupported content type")
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 5 << 20

// FileStore keeps uploaded image files. Keys are the file names persisted in
// the database.
type FileStore interface {
	Save(ctx context.Context, prefix, contentType string, r io.Reader) (key string, size int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}

// LocalStore stores files in a directory on the local disk.
type LocalStore struct {
	basePath string
	logger   *slog.Logger
}

// NewLocalStore creates basePath if needed and returns a store rooted there.
func NewLocalStore(basePath string, logger *slog.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalStore{basePath: basePath, logger: logger}, nil
}

// Save writes r under a fresh key derived from prefix and contentType.
func (s *LocalStore) Save(ctx context.Context, prefix, contentType string, r io.Reader) (string, int64, error) {
	ext, ok := contentTypeToExt(contentType)
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	key := fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)
	filePath, err := s.safeJoin(key)
	if err != nil {
		return "", 0, err
	}

	f, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	size, err := io.Copy(f, r)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			s.logger.Error("Failed to close file after write error", "error", cerr)
		}
		s.remove(filePath)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		s.remove(filePath)
		return "", 0, fmt.Errorf("failed to close file: %w", err)
	}
	return key, size, nil
}

// Open returns the file stored under key and its content type.
func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	filePath, err := s.safeJoin(key)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ErrFileNotFound
		}
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	return f, extToContentType(filePath), nil
}

// Delete removes the file stored under key.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	filePath, err := s.safeJoin(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStore) remove(filePath string) {
	if err := os.Remove(filePath); err != nil {
		s.logger.Error("Failed to remove partial file", "path", filePath, "error", err)
	}
}

// safeJoin resolves key relative to basePath and rejects directory traversal.
func (s *LocalStore) safeJoin(key string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.basePath, key))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return absPath, nil
}

func contentTypeToExt(contentType string) (string, bool) {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/webp":
		return ".webp", true
	default:
		return "", false
	}
}

func extToContentType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
