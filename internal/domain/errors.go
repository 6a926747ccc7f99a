package domain

import (
	"errors"
	"fmt"
)

// Messages returned to callers in ErrorBody.
const (
	MsgQueryNotSupported      = "Query parameters not yet supported"
	MsgPathParamsNotSupported = "Path parameters not supported"
	MsgBodyNotSupported       = "Request body not supported"
	MsgBodyRequired           = "Request body required"
	MsgParamsRequired         = "Parameter(s) required"
	MsgReserverRequired       = "Reserver required"
	MsgInvalidBody            = "Request body must be valid JSON"
	MsgUnreadableBody         = "Unable to read request body"
	MsgBodyTooLarge           = "Request body too large"
	MsgBackendError           = "Error in backend service"
	MsgInternalError          = "Internal server error"
)

// MethodNotSupportedMessage builds the 405 message for a list of supported methods.
func MethodNotSupportedMessage(supported string) string {
	return "Only " + supported + " supported"
}

// Sentinel errors.
var (
	// ErrBackendUnavailable matches every TransportError.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrUnknownRoute is logged when the dispatcher has no handler for a route.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrUnknownBackend is returned when a backend family has no configured base URL.
	ErrUnknownBackend = errors.New("unknown backend")
)

// TransportError reports a backend call that could not complete:
// connection failure, timeout, DNS failure or an unreadable response.
// A backend that answers with any HTTP status is not a TransportError.
type TransportError struct {
	Backend Backend
	Method  string
	URL     string
	Err     error
}

// NewTransportError wraps err with the call that produced it.
func NewTransportError(backend Backend, method, url string, err error) *TransportError {
	return &TransportError{
		Backend: backend,
		Method:  method,
		URL:     url,
		Err:     err,
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s backend: %s %s: %v", e.Backend, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrBackendUnavailable) true for any TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrBackendUnavailable
}
