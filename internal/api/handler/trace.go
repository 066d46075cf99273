// internal/api/handler/trace.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"realestate-api/internal/api/types"
	"realestate-api/internal/domain"
	"realestate-api/internal/service"
)

// TraceHandler handles HTTP requests related to property history.
type TraceHandler struct {
	responder
	service service.PropertyTraceService
}

// NewTraceHandler creates a new TraceHandler.
func NewTraceHandler(svc service.PropertyTraceService, logger *slog.Logger) *TraceHandler {
	return &TraceHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// TraceRequest represents the request body for recording or correcting a trace.
type TraceRequest struct {
	DateSale  time.Time        `json:"date_sale"`
	Name      string           `json:"name"`
	Value     decimal.Decimal  `json:"value"`
	Tax       decimal.Decimal  `json:"tax"`
	TraceType domain.TraceType `json:"trace_type"`
	Notes     *string          `json:"notes"`
}

func (req TraceRequest) toInput() service.TraceInput {
	return service.TraceInput{
		DateSale:  req.DateSale,
		Name:      req.Name,
		Value:     req.Value,
		Tax:       req.Tax,
		TraceType: req.TraceType,
		Notes:     req.Notes,
	}
}

// Add records a trace for a property.
// POST /properties/{id}/traces
func (h *TraceHandler) Add(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req TraceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	trace, err := h.service.AddTrace(r.Context(), propertyID, req.toInput())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, trace)
}

// ListByProperty lists the history of a property.
// GET /properties/{id}/traces?trace_type=
func (h *TraceHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	filter := traceFilterFromQuery(r.URL.Query())
	filter.IdProperty = &propertyID

	traces, err := h.service.ListTraces(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(traces))
}

// Get returns a single trace.
// GET /traces/{id}
func (h *TraceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	trace, err := h.service.GetTrace(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, trace)
}

// Update corrects a trace.
// PUT /traces/{id}
func (h *TraceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req TraceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	trace, err := h.service.UpdateTrace(r.Context(), id, req.toInput())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, trace)
}

// Delete removes a trace.
// DELETE /traces/{id}
func (h *TraceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.DeleteTrace(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
