// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Backends BackendConfig
	Logging  logger.Config
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"9000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	BodyLimit    string        `env:"SERVER_BODY_LIMIT" envDefault:"1M"`
}

// BackendConfig holds the base URLs of the three backend services.
type BackendConfig struct {
	SearchURL       string        `env:"SEARCH_ENDPOINT,required,notEmpty"`
	BookingURL      string        `env:"BOOKING_ENDPOINT,required,notEmpty"`
	CancellationURL string        `env:"CANCELLATION_ENDPOINT,required,notEmpty"`
	Timeout         time.Duration `env:"BACKEND_TIMEOUT" envDefault:"5s"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Backends.SearchURL = strings.TrimRight(cfg.Backends.SearchURL, "/")
	cfg.Backends.BookingURL = strings.TrimRight(cfg.Backends.BookingURL, "/")
	cfg.Backends.CancellationURL = strings.TrimRight(cfg.Backends.CancellationURL, "/")

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if limit, err := bytes.Parse(cfg.Server.BodyLimit); err != nil || limit <= 0 {
		return fmt.Errorf("SERVER_BODY_LIMIT must be a positive size such as 512K or 1M, got %q", cfg.Server.BodyLimit)
	}
	if cfg.Backends.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}

	// A backend call must finish before the response write deadline
	if cfg.Backends.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("BACKEND_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Backends.Timeout, cfg.Server.WriteTimeout)
	}

	endpoints := []struct {
		name  string
		value string
	}{
		{"SEARCH_ENDPOINT", cfg.Backends.SearchURL},
		{"BOOKING_ENDPOINT", cfg.Backends.BookingURL},
		{"CANCELLATION_ENDPOINT", cfg.Backends.CancellationURL},
	}
	for _, ep := range endpoints {
		if err := validateEndpoint(ep.name, ep.value); err != nil {
			return err
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// validateEndpoint checks that a backend base URL is an absolute http(s) URL.
func validateEndpoint(name, value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http or https URL, got %q", name, value)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", name, value)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
