package usecase

import (
	"encoding/json"
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
)

// backendErrorBody is ErrorBody{MsgBackendError} in encoded form.
const backendErrorBody = `{"error":"Error in backend service"}`

// Normalize builds the outward response for a status and body.
// A string body is relayed verbatim, which is how raw backend bodies pass through
// without re-encoding. Any other body is encoded as JSON. The status is never inspected.
func Normalize(statusCode int, body any) domain.OutwardResponse {
	var encoded string
	switch b := body.(type) {
	case string:
		encoded = b
	case []byte:
		encoded = string(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return backendError()
		}
		encoded = string(data)
	}

	return domain.OutwardResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{domain.HeaderContentType: domain.ContentTypeJSON},
		Body:       encoded,
	}
}

// NormalizeError logs err and returns the generic 500 response.
// Transport details never reach the caller.
func NormalizeError(log *logger.Logger, err error) domain.OutwardResponse {
	log.Error().Err(err).Msg("Backend call failed")
	return backendError()
}

func backendError() domain.OutwardResponse {
	return domain.OutwardResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{domain.HeaderContentType: domain.ContentTypeJSON},
		Body:       backendErrorBody,
	}
}
