// internal/api/handler/upload.go
package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"realestate-api/internal/storage"
	"realestate-api/internal/util"
)

// formImage returns the "file" part of a multipart upload and its declared
// content type. Bodies larger than storage.MaxImageSize are rejected.
func formImage(w http.ResponseWriter, r *http.Request) (multipart.File, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize+(1<<20))
	if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
		return nil, "", fmt.Errorf("%w: invalid multipart upload: %v", util.ErrInvalidInput, err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("%w: file is required", util.ErrInvalidInput)
	}
	if header.Size > storage.MaxImageSize {
		file.Close()
		return nil, "", fmt.Errorf("%w: max file size is 5MB", util.ErrInvalidInput)
	}
	return file, header.Header.Get("Content-Type"), nil
}
