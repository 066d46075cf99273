// internal/api/handler/handler.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"realestate-api/internal/api/types"
	"realestate-api/internal/util" // For custom errors
)

// DefaultTimeout bounds the handling of a single request.
const DefaultTimeout = 30 * time.Second

// responder holds the response helpers shared by all handlers.
type responder struct {
	logger *slog.Logger
}

// Helper function to send JSON responses.
func (h responder) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h responder) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error() // Use the error message directly for invalid input
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrDuplicateEntry, util.ErrConflict):
		statusCode = http.StatusConflict
		message = err.Error()
	case util.IsError(err, util.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = "Unauthorized"
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Forbidden"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

// Helper function to stream a stored file.
func (h responder) respondWithFile(w http.ResponseWriter, contentType string, rc io.ReadCloser) {
	defer rc.Close()
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Error("Failed to stream file", "error", err)
	}
}

// uuidParam parses the named URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", util.ErrInvalidInput, name)
	}
	return id, nil
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", util.ErrInvalidInput)
		}
		return fmt.Errorf("%w: %v", util.ErrInvalidInput, err)
	}
	return nil
}
