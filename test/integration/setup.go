// Package integration provides helpers and integration tests for the booking gateway.
// Integration tests run the full stack (echo routes and middleware, use case,
// HTTP backend client) against fake backend services.
package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-booking-gateway/internal/adapter/backend"
	httpAdapter "github.com/flight-search/flight-booking-gateway/internal/adapter/http"
	"github.com/flight-search/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
	"github.com/flight-search/flight-booking-gateway/internal/usecase"
	"github.com/flight-search/flight-booking-gateway/test/mock"
)

// defaultBackendTimeout keeps failing tests fast.
const defaultBackendTimeout = 2 * time.Second

// TestServer wraps an Echo instance wired to three fake backends.
type TestServer struct {
	Echo         *echo.Echo
	Search       *mock.Backend
	Booking      *mock.Backend
	Cancellation *mock.Backend
}

// NewTestServer creates a test server with fresh fake backends.
func NewTestServer() *TestServer {
	return NewTestServerWithOptions(middleware.DefaultOptions())
}

// NewTestServerWithConfig creates a test server against arbitrary backend URLs.
// The fake backends of the returned server are not wired.
func NewTestServerWithConfig(cfg backend.Config) *TestServer {
	return &TestServer{Echo: newEcho(cfg)}
}

func newEcho(cfg backend.Config) *echo.Echo {
	return newEchoWithOptions(cfg, middleware.DefaultOptions())
}

func newEchoWithOptions(cfg backend.Config, opts middleware.Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.Nop(), opts)

	client := backend.NewClient(cfg, logger.Nop())
	uc := usecase.NewGatewayUseCase(client, logger.Nop())
	httpAdapter.RegisterRoutes(e, httpAdapter.NewGatewayHandler(uc))

	return e
}

// NewTestServerWithOptions is NewTestServer with custom middleware options.
func NewTestServerWithOptions(opts middleware.Options) *TestServer {
	ts := &TestServer{
		Search:       mock.NewBackend(),
		Booking:      mock.NewBackend(),
		Cancellation: mock.NewBackend(),
	}
	ts.Echo = newEchoWithOptions(backend.Config{
		SearchURL:       ts.Search.URL(),
		BookingURL:      ts.Booking.URL(),
		CancellationURL: ts.Cancellation.URL(),
		Timeout:         defaultBackendTimeout,
	}, opts)
	return ts
}

// Close shuts the fake backends down.
func (ts *TestServer) Close() {
	for _, b := range []*mock.Backend{ts.Search, ts.Booking, ts.Cancellation} {
		if b != nil {
			b.Close()
		}
	}
}

// TotalBackendCalls sums the calls received by all fake backends.
func (ts *TestServer) TotalBackendCalls() int {
	total := 0
	for _, b := range []*mock.Backend{ts.Search, ts.Booking, ts.Cancellation} {
		if b != nil {
			total += b.CallCount()
		}
	}
	return total
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    string
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	httpReq := httptest.NewRequest(req.Method, req.Path, strings.NewReader(req.Body))
	if req.Body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.RequestID != "" {
		httpReq.Header.Set(middleware.RequestIDHeader, req.RequestID)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.String(),
		Headers: rec.Header(),
	}
}

// Get is shorthand for a bodiless GET.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}
