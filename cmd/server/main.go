// Package main is the entry point for the flight booking gateway.
//
//	@title						Flight Booking Gateway API
//	@version					1.0.0
//	@description				Gateway in front of the flight search, booking and cancellation services. Backend responses are relayed unchanged.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:9000
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-booking-gateway/docs"

	// Application layers
	"github.com/flight-search/flight-booking-gateway/internal/adapter/backend"
	gatewayhttp "github.com/flight-search/flight-booking-gateway/internal/adapter/http"
	"github.com/flight-search/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/flight-search/flight-booking-gateway/internal/config"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
	"github.com/flight-search/flight-booking-gateway/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("search_endpoint", cfg.Backends.SearchURL).
		Str("booking_endpoint", cfg.Backends.BookingURL).
		Str("cancellation_endpoint", cfg.Backends.CancellationURL).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger, middleware.Options{
		BodyLimit:  cfg.Server.BodyLimit,
		PanicStack: !cfg.IsProduction(),
	})

	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the backend client, use case and handler, then registers routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := backend.NewClient(backend.Config{
		SearchURL:       cfg.Backends.SearchURL,
		BookingURL:      cfg.Backends.BookingURL,
		CancellationURL: cfg.Backends.CancellationURL,
		Timeout:         cfg.Backends.Timeout,
	}, log)

	gatewayUseCase := usecase.NewGatewayUseCase(client, log)
	gatewayHandler := gatewayhttp.NewGatewayHandler(gatewayUseCase)

	gatewayhttp.RegisterRoutes(e, gatewayHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
