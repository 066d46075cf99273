// internal/api/handler/middleware.go
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"realestate-api/internal/auth"
	"realestate-api/internal/util"
)

// TokenValidator resolves a bearer token to the caller identity.
type TokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// Authenticate rejects requests without a valid bearer token and stores the
// caller identity in the request context.
func Authenticate(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	h := responder{logger: logger}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				h.respondWithError(w, util.ErrUnauthorized)
				return
			}
			identity, err := validator.Validate(token)
			if err != nil {
				logger.Debug("Rejected bearer token", "error", err)
				h.respondWithError(w, util.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole allows only callers whose role is one of roles. It must run
// after Authenticate.
func RequireRole(logger *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	h := responder{logger: logger}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFrom(r.Context())
			if !ok {
				h.respondWithError(w, util.ErrUnauthorized)
				return
			}
			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			h.respondWithError(w, util.ErrForbidden)
		})
	}
}
