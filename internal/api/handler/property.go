// internal/api/handler/property.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"realestate-api/internal/api/types"
	"realestate-api/internal/service"
)

// PropertyHandler handles HTTP requests related to properties.
type PropertyHandler struct {
	responder
	service service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(svc service.PropertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// PropertyRequest represents the request body for creating or updating a property.
// Price is ignored on update; use the price endpoint instead.
type PropertyRequest struct {
	Name         string          `json:"name"`
	CodeInternal string          `json:"code_internal"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `json:"price"`
	Year         int             `json:"year"`
	IdOwner      uuid.UUID       `json:"id_owner"`
	Description  string          `json:"description"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	SquareMeters decimal.Decimal `json:"square_meters"`
	IsActive     *bool           `json:"is_active"`
}

func (req PropertyRequest) toInput() service.PropertyInput {
	return service.PropertyInput{
		Name:         req.Name,
		CodeInternal: req.CodeInternal,
		Address:      req.Address,
		Price:        req.Price,
		Year:         req.Year,
		IdOwner:      req.IdOwner,
		Description:  req.Description,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareMeters: req.SquareMeters,
		IsActive:     req.IsActive,
	}
}

// ChangePriceRequest represents the request body for a price change.
type ChangePriceRequest struct {
	Price  decimal.Decimal `json:"price"`
	Reason string          `json:"reason"`
}

// BulkUpsertRequest represents the request body for a bulk import.
type BulkUpsertRequest struct {
	Items []PropertyRequest `json:"items"`
}

// BulkUpsertResponse reports how many properties a bulk import touched.
type BulkUpsertResponse struct {
	Affected int `json:"affected"`
}

// Create handles the create property request.
// POST /properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), req.toInput())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, property)
}

// Get returns the detailed view of a property.
// GET /properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	detail, err := h.service.GetPropertyDetail(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, detail)
}

// List handles the property search.
// GET /properties?name=&min_price=&max_price=&id_owner=
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := propertyFilterFromQuery(r.URL.Query())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	properties, err := h.service.ListProperties(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(properties))
}

// ListByOwner lists the properties of one owner.
// GET /owners/{id}/properties
func (h *PropertyHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	properties, err := h.service.ListOwnerProperties(r.Context(), ownerID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(properties))
}

// Update handles the update property request.
// PUT /properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req PropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), id, req.toInput())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, property)
}

// Delete handles the delete property request.
// DELETE /properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.DeleteProperty(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChangePrice handles the price change request and returns the updated property.
// PATCH /properties/{id}/price
func (h *PropertyHandler) ChangePrice(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req ChangePriceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.ChangePrice(r.Context(), id, req.Price, req.Reason); err != nil {
		h.respondWithError(w, err)
		return
	}
	property, err := h.service.GetProperty(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, property)
}

// BulkUpsert imports a batch of properties keyed by internal code.
// POST /properties/bulk
func (h *PropertyHandler) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	var req BulkUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	items := make([]service.PropertyInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = item.toInput()
	}
	affected, err := h.service.BulkUpsert(r.Context(), items)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, BulkUpsertResponse{Affected: affected})
}
