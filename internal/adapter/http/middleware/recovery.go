package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-booking-gateway/internal/adapter/http/response"
)

// Recover turns a handler panic into a logged 500 {"error":"Internal server error"}.
// withStack adds the goroutine stack to the log entry.
func Recover(log zerolog.Logger, withStack bool) echo.MiddlewareFunc {
	return echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisablePrintStack:   !withStack,
		DisableErrorHandler: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			event := log.Error().
				Str("request_id", GetRequestID(c)).
				Str("panic", err.Error())
			if len(stack) > 0 {
				event = event.Str("stack", string(stack))
			}
			event.Msg("Panic recovered")

			if c.Response().Committed {
				return nil
			}
			return response.InternalServerError(c)
		},
	})
}
