// internal/api/handler/user.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"realestate-api/internal/api/types"
	"realestate-api/internal/service"
)

// UserHandler handles registration, login and user lookups.
type UserHandler struct {
	responder
	service service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user account.
// POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, user)
}

// Login exchanges credentials for a bearer token.
// POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.TokenResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		ExpiresAt: result.ExpiresAt,
		ExpiresIn: int64(time.Until(result.ExpiresAt).Seconds()),
	})
}

// Get returns a user.
// GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, user)
}

// List lists users.
// GET /users?role=&is_active=
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := userFilterFromQuery(r.URL.Query())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	users, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewListResponse(users))
}
