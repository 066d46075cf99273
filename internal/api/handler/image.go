// internal/api/handler/image.go
package handler

import (
	"log/slog"
	"net/http"

	"realestate-api/internal/api/types"
	"realestate-api/internal/domain"
	"realestate-api/internal/service"
)

// ImageHandler handles HTTP requests related to property images.
type ImageHandler struct {
	responder
	service service.PropertyImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(svc service.PropertyImageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// Upload stores an image for a property. The image starts enabled.
// POST /properties/{id}/images
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	file, contentType, err := formImage(w, r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	defer file.Close()

	image, err := h.service.UploadImage(r.Context(), propertyID, contentType, file)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, image)
}

// ListByProperty lists the images of a property.
// GET /properties/{id}/images?enabled=
func (h *ImageHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	enabled, err := optBool(r.URL.Query(), "enabled")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	images, err := h.service.ListImages(r.Context(), domain.PropertyImageFilter{
		IdProperty: &propertyID,
		Enabled:    enabled,
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(images))
}

// Get returns image metadata.
// GET /images/{id}
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	image, err := h.service.GetImage(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, image)
}

// File streams the stored image.
// GET /images/{id}/file
func (h *ImageHandler) File(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	rc, image, err := h.service.OpenImageFile(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithFile(w, image.ContentType, rc)
}

// Toggle flips the enabled flag of an image.
// PATCH /images/{id}/toggle
func (h *ImageHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	image, err := h.service.ToggleImage(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, image)
}

// Delete removes an image record and its file.
// DELETE /images/{id}
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
