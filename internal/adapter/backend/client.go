// Package backend implements the outbound HTTP client for the search,
// booking and cancellation services.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
)

// DefaultTimeout bounds a single backend call when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// HeaderRequestID carries the inbound request id to the backends.
const HeaderRequestID = "X-Request-ID"

// Config holds the base URLs of the backend families.
type Config struct {
	SearchURL       string
	BookingURL      string
	CancellationURL string

	// Timeout bounds each call, including reading the response body
	Timeout time.Duration
}

// Client implements domain.BackendGateway over HTTP.
// It is safe for concurrent use.
type Client struct {
	baseURLs   map[domain.Backend]string
	httpClient *http.Client
	timeout    time.Duration
	log        *logger.Logger
}

// NewClient creates a Client with its own http.Client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	return NewClientWithHTTPClient(cfg, &http.Client{}, log)
}

// NewClientWithHTTPClient creates a Client that sends requests through httpClient.
func NewClientWithHTTPClient(cfg Config, httpClient *http.Client, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURLs: map[domain.Backend]string{
			domain.BackendSearch:       cfg.SearchURL,
			domain.BackendBooking:      cfg.BookingURL,
			domain.BackendCancellation: cfg.CancellationURL,
		},
		httpClient: httpClient,
		timeout:    timeout,
		log:        log,
	}
}

// Call sends req to its backend and returns the status and full body.
// Any HTTP status is a result; only a call that produced no response is an error.
func (c *Client) Call(ctx context.Context, req domain.BackendRequest) (*domain.BackendCallResult, error) {
	base, ok := c.baseURLs[req.Backend]
	if !ok || base == "" {
		return nil, domain.NewTransportError(req.Backend, req.Method, req.Path, domain.ErrUnknownBackend)
	}
	url := base + req.Path

	log := c.log.WithBackend(string(req.Backend)).WithRequestID(domain.RequestIDFromContext(ctx))
	start := time.Now()

	result, err := c.do(ctx, url, req)

	elapsed := time.Since(start)
	status := 0
	if result != nil {
		status = result.StatusCode
	}
	backendRequestsTotal.WithLabelValues(string(req.Backend), req.Method, outcomeFor(status, err)).Inc()
	backendRequestDuration.WithLabelValues(string(req.Backend), req.Method).Observe(elapsed.Seconds())

	if err != nil {
		log.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", url).
			Dur("duration", elapsed).
			Msg("Backend call failed")
		return nil, domain.NewTransportError(req.Backend, req.Method, url, err)
	}

	log.Debug().
		Str("method", req.Method).
		Str("url", url).
		Int("status", result.StatusCode).
		Dur("duration", elapsed).
		Msg("Backend call completed")

	return result, nil
}

func (c *Client) do(ctx context.Context, url string, req domain.BackendRequest) (*domain.BackendCallResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", domain.ContentTypeJSON)
	if body != nil {
		httpReq.Header.Set(domain.HeaderContentType, domain.ContentTypeJSON)
	}
	if id := domain.RequestIDFromContext(ctx); id != "" {
		httpReq.Header.Set(HeaderRequestID, id)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &domain.BackendCallResult{
		StatusCode: resp.StatusCode,
		Body:       string(data),
	}, nil
}

// Ensure Client implements domain.BackendGateway at compile time.
var _ domain.BackendGateway = (*Client)(nil)
