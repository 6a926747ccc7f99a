package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-booking-gateway/internal/adapter/http/response"
	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

// DefaultBodyLimit caps inbound request bodies when Options.BodyLimit is empty.
const DefaultBodyLimit = "1M"

// Options tunes the middleware stack per environment.
type Options struct {
	// BodyLimit is the largest accepted request body, e.g. "512K" or "2M"
	BodyLimit string

	// PanicStack includes the goroutine stack in panic logs
	PanicStack bool
}

// DefaultOptions returns the options used outside production.
func DefaultOptions() Options {
	return Options{BodyLimit: DefaultBodyLimit, PanicStack: true}
}

// Setup installs the error handler and middleware, outermost first:
// RequestID, Metrics, RequestLogger, Recover, BodyLimit.
// Metrics sits outside the logger so it sees the status the error handler wrote.
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, opts Options) {
	limit := opts.BodyLimit
	if limit == "" {
		limit = DefaultBodyLimit
	}

	e.HTTPErrorHandler = ErrorHandler
	e.Use(
		RequestID(),
		Metrics(),
		RequestLogger(log),
		Recover(log, opts.PanicStack),
		echomw.BodyLimit(limit),
	)
}

// ErrorHandler writes errors that escape the handlers in the {"error": msg} shape.
// In debug mode a 5xx carries the error text instead of the generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code >= http.StatusInternalServerError {
		if c.Echo().Debug {
			_ = response.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		_ = response.InternalServerError(c)
		return
	}

	message := http.StatusText(httpErr.Code)
	if httpErr.Code == http.StatusRequestEntityTooLarge {
		message = domain.MsgBodyTooLarge
	}
	_ = response.Error(c, httpErr.Code, message)
}
