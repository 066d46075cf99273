// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "realestate-api/internal/api"
	"realestate-api/internal/api/handler"
	"realestate-api/internal/auth"
	"realestate-api/internal/config"
	"realestate-api/internal/repository"
	"realestate-api/internal/repository/postgres"
	"realestate-api/internal/service"
	"realestate-api/internal/storage"
	"realestate-api/internal/util"
	"realestate-api/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Persistence
	UnitOfWorkFactory repository.UnitOfWorkFactory
	Files             storage.FileStore
	Tokens            *auth.TokenManager

	// Services
	OwnerService         service.OwnerService
	PropertyService      service.PropertyService
	PropertyImageService service.PropertyImageService
	PropertyTraceService service.PropertyTraceService
	UserService          service.UserService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	app.Logger = util.InitLogger(cfg.Log.Level, cfg.Log.Format)
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Persistence
	app.UnitOfWorkFactory = postgres.NewUnitOfWorkFactory(app.DB, app.Logger, cfg.StatementTimeout)
	files, err := storage.NewLocalStore(cfg.ImagesDir, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}
	app.Files = files
	app.Tokens = auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	app.Logger.Info("Persistence initialized.", "images_dir", cfg.ImagesDir)

	// 5. Initialize Services
	app.OwnerService = service.NewOwnerService(app.UnitOfWorkFactory, app.Files, app.Logger)
	app.PropertyService = service.NewPropertyService(app.UnitOfWorkFactory)
	app.PropertyImageService = service.NewPropertyImageService(app.UnitOfWorkFactory, app.Files, app.Logger)
	app.PropertyTraceService = service.NewPropertyTraceService(app.UnitOfWorkFactory)
	app.UserService = service.NewUserService(app.UnitOfWorkFactory, app.Tokens)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	app.HTTPHandler = router.NewRouter(router.Handlers{
		Owners:     handler.NewOwnerHandler(app.OwnerService, app.Logger),
		Properties: handler.NewPropertyHandler(app.PropertyService, app.Logger),
		Images:     handler.NewImageHandler(app.PropertyImageService, app.Logger),
		Traces:     handler.NewTraceHandler(app.PropertyTraceService, app.Logger),
		Users:      handler.NewUserHandler(app.UserService, app.Logger),
	}, app.Tokens, cfg.CORSAllowedOrigins, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
