package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request once the response is written.
// Handler errors go through echo's error handler first so the logged status
// is the one the caller saw. 5xx log at error, 4xx at warn.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		HandleError:     true,
		LogLatency:      true,
		LogMethod:       true,
		LogURIPath:      true,
		LogRoutePath:    true,
		LogStatus:       true,
		LogResponseSize: true,
		LogRemoteIP:     true,
		LogUserAgent:    true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			event := log.Info()
			switch {
			case v.Status >= 500:
				event = log.Error()
			case v.Status >= 400:
				event = log.Warn()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", v.Method).
				Str("path", v.URIPath).
				Str("route", v.RoutePath).
				Str("query", c.Request().URL.RawQuery).
				Int("status", v.Status).
				Int64("duration_ms", v.Latency.Milliseconds()).
				Int64("bytes_out", v.ResponseSize).
				Str("client_ip", v.RemoteIP).
				Str("user_agent", v.UserAgent).
				Msg("HTTP request")
			return nil
		},
	})
}
