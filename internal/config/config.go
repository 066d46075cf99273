// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"realestate-api/pkg/db" // Import db package for its Config struct

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	DB         db.Config
	Log        LogConfig
	JWT        JWTConfig

	ImagesDir          string        `env:"IMAGES_DIR" envDefault:"./data/images"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	StatementTimeout   time.Duration `env:"STATEMENT_TIMEOUT" envDefault:"0s"` // 0 disables the per-call timeout
}

// LogConfig selects the log level and output format ("json" or "text").
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// JWTConfig configures access token issuance.
type JWTConfig struct {
	Secret string        `env:"JWT_SECRET,required"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"realestate-api"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// LoadConfig loads configuration from environment variables.
// Values from the optional .env files are loaded first; variables already set
// in the environment win. It returns an error if any required variable is
// missing or invalid.
func LoadConfig(envFiles ...string) (*AppConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.DB.Port <= 0 {
		return nil, fmt.Errorf("invalid DB_PORT: %d", cfg.DB.Port)
	}
	return cfg, nil
}
