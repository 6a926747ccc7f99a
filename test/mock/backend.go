// Package mock provides test doubles for the booking gateway.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, statuses, specific bodies).
package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// Call is one request received by a Backend.
type Call struct {
	Method    string
	Path      string
	RawQuery  string
	Body      string
	RequestID string
}

// URI returns the path and query as sent.
func (c Call) URI() string {
	if c.RawQuery == "" {
		return c.Path
	}
	return c.Path + "?" + c.RawQuery
}

type reply struct {
	status int
	body   string
}

// Backend is a configurable fake backend service served over HTTP.
// Replies are keyed by method and request URI; unconfigured requests get a 404.
type Backend struct {
	server  *httptest.Server
	replies map[string]reply
	delay   time.Duration
	calls   []Call
	mu      sync.Mutex
}

// NewBackend starts a new fake backend. Call Close when done.
func NewBackend() *Backend {
	b := &Backend{
		replies: make(map[string]reply),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.serveHTTP))
	return b
}

// On configures the reply for method and uri (path plus optional query).
func (b *Backend) On(method, uri string, status int, body string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies[method+" "+uri] = reply{status: status, body: body}
	return b
}

// WithDelay configures the backend to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (b *Backend) WithDelay(d time.Duration) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delay = d
	return b
}

// URL returns the base URL of the backend.
func (b *Backend) URL() string {
	return b.server.URL
}

// Close shuts the backend down.
func (b *Backend) Close() {
	b.server.Close()
}

// Calls returns a copy of every request received so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallCount returns the number of requests received.
func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// Reset forgets recorded calls. Configured replies are kept.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

func (b *Backend) serveHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	call := Call{
		Method:    r.Method,
		Path:      r.URL.Path,
		RawQuery:  r.URL.RawQuery,
		Body:      string(data),
		RequestID: r.Header.Get("X-Request-ID"),
	}

	b.mu.Lock()
	b.calls = append(b.calls, call)
	rep, ok := b.replies[call.Method+" "+call.URI()]
	delay := b.delay
	b.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	if !ok {
		rep = reply{status: http.StatusNotFound, body: `{"error":"not found"}`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

// UnreachableURL returns the URL of a server that has already been closed,
// so every request to it fails at the transport level.
func UnreachableURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}
