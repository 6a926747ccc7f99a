package domain

import "context"

//go:generate mockgen -source=backend.go -destination=mock_backend.go -package=domain

// Backend names one of the three upstream service families.
type Backend string

// Backend families.
const (
	BackendSearch       Backend = "search"
	BackendBooking      Backend = "booking"
	BackendCancellation Backend = "cancellation"
)

// BackendRequest describes one outbound call.
type BackendRequest struct {
	// Backend selects the configured base URL
	Backend Backend

	// Method is the HTTP method used upstream
	Method string

	// Path is appended to the base URL as-is; it may carry a query string.
	// Path parameters are interpolated without escaping.
	Path string

	// Body is JSON-encoded when non-nil
	Body any
}

// BackendGateway performs outbound calls to the backend services.
type BackendGateway interface {
	// Call issues the request and returns whatever status and body the backend answered with.
	// It returns a *TransportError when no response could be obtained.
	Call(ctx context.Context, req BackendRequest) (*BackendCallResult, error)
}

// PaymentRequest is sent to the booking backend when paying for a seat or booking.
// Price is forwarded exactly as the caller supplied it.
type PaymentRequest struct {
	Price any `json:"price"`
}

// ReserverRequest identifies who reserves a seat.
type ReserverRequest struct {
	ID any `json:"id"`
}

type requestIDKey struct{}

// ContextWithRequestID returns a context carrying the inbound request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
