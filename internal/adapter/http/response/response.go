// Package response writes gateway responses onto an Echo context.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Write relays an OutwardResponse as-is: status, headers and the already-encoded body.
// An empty 204 is written without a body.
func Write(c echo.Context, resp domain.OutwardResponse) error {
	for name, value := range resp.Headers {
		c.Response().Header().Set(name, value)
	}

	if resp.IsNoContent() {
		return c.NoContent(http.StatusNoContent)
	}

	contentType := resp.Headers[domain.HeaderContentType]
	if contentType == "" {
		contentType = domain.ContentTypeJSON
	}
	return c.Blob(resp.StatusCode, contentType, []byte(resp.Body))
}

// Error writes a synthesized {"error": message} response.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &domain.ErrorBody{Error: message})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// InternalServerError writes a 500 with the generic message.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domain.MsgInternalError)
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}
