// internal/api/handler/owner.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"realestate-api/internal/api/types"
	"realestate-api/internal/domain"
	"realestate-api/internal/service"
)

// OwnerHandler handles HTTP requests related to owners.
type OwnerHandler struct {
	responder
	service service.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(svc service.OwnerService, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// OwnerRequest represents the request body for creating or updating an owner.
type OwnerRequest struct {
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	ContactEmail *string    `json:"contact_email"`
	Phone        *string    `json:"phone"`
	Birthday     *time.Time `json:"birthday"`
}

func (req OwnerRequest) toInput() service.OwnerInput {
	return service.OwnerInput{
		Name:         req.Name,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Birthday:     req.Birthday,
	}
}

// Create handles the create owner request.
// POST /owners
func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OwnerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	owner, err := h.service.CreateOwner(r.Context(), req.toInput())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, owner)
}

// Get handles the get owner request.
// GET /owners/{id}
func (h *OwnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	owner, err := h.service.GetOwner(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, owner)
}

// List handles the list owners request.
// GET /owners?name=
func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.OwnerFilter{Name: optString(r.URL.Query(), "name")}

	owners, err := h.service.ListOwners(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(owners))
}

// Update handles the update owner request.
// PUT /owners/{id}
func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req OwnerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	owner, err := h.service.UpdateOwner(r.Context(), id, req.toInput())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, owner)
}

// Delete handles the delete owner request.
// DELETE /owners/{id}
func (h *OwnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.DeleteOwner(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetPhoto handles the owner photo upload, a multipart form with a "file" part.
// PUT /owners/{id}/photo
func (h *OwnerHandler) SetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
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

	owner, err := h.service.SetOwnerPhoto(r.Context(), id, contentType, file)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, owner)
}

// GetPhoto streams the owner photo.
// GET /owners/{id}/photo
func (h *OwnerHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	rc, contentType, err := h.service.OpenOwnerPhoto(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithFile(w, contentType, rc)
}
