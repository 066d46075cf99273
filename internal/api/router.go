// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"realestate-api/internal/api/handler"
)

// AdminRole is the role allowed to manage users.
const AdminRole = "Admin"

// Handlers groups the resource handlers mounted by the router.
type Handlers struct {
	Owners     *handler.OwnerHandler
	Properties *handler.PropertyHandler
	Images     *handler.ImageHandler
	Traces     *handler.TraceHandler
	Users      *handler.UserHandler
}

// NewRouter sets up and returns a new HTTP router.
// Reads are public; writes require a bearer token.
func NewRouter(h Handlers, tokens handler.TokenValidator, allowedOrigins []string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	authenticate := handler.Authenticate(tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Users.Register)
		r.Post("/login", h.Users.Login)
	})

	r.Route("/owners", func(r chi.Router) {
		r.Get("/", h.Owners.List)
		r.Get("/{id}", h.Owners.Get)
		r.Get("/{id}/photo", h.Owners.GetPhoto)
		r.Get("/{id}/properties", h.Properties.ListByOwner)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Owners.Create)
			r.Put("/{id}", h.Owners.Update)
			r.Delete("/{id}", h.Owners.Delete)
			r.Put("/{id}/photo", h.Owners.SetPhoto)
		})
	})

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", h.Properties.List)
		r.Get("/{id}", h.Properties.Get)
		r.Get("/{id}/images", h.Images.ListByProperty)
		r.Get("/{id}/traces", h.Traces.ListByProperty)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Properties.Create)
			r.Post("/bulk", h.Properties.BulkUpsert)
			r.Put("/{id}", h.Properties.Update)
			r.Delete("/{id}", h.Properties.Delete)
			r.Patch("/{id}/price", h.Properties.ChangePrice)
			r.Post("/{id}/images", h.Images.Upload)
			r.Post("/{id}/traces", h.Traces.Add)
		})
	})

	r.Route("/images", func(r chi.Router) {
		r.Get("/{id}", h.Images.Get)
		r.Get("/{id}/file", h.Images.File)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Patch("/{id}/toggle", h.Images.Toggle)
			r.Delete("/{id}", h.Images.Delete)
		})
	})

	r.Route("/traces", func(r chi.Router) {
		r.Get("/{id}", h.Traces.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Put("/{id}", h.Traces.Update)
			r.Delete("/{id}", h.Traces.Delete)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(handler.RequireRole(logger, AdminRole))
		r.Get("/", h.Users.List)
		r.Get("/{id}", h.Users.Get)
	})

	return r
}
