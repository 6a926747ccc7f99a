// Package http provides the HTTP handler layer for the booking gateway.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all gateway routes.
// Each route accepts any method so that method mismatches reach the use case
// and are answered with the route's own 405 message. The parameterless
// variants of parameterised routes are registered too, so a missing parameter
// is a 400 rather than a 404.
func RegisterRoutes(e *echo.Echo, h *GatewayHandler) {
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Any("/airports", h.Airports)
	anyWithBare(e, "/airport", "/:code", h.Airport)

	e.Any("/flights", h.Flights)
	anyWithBare(e, "/flight", "/:flightId", h.Flight)
	e.Any("/flight/:flightId/seats", h.Seats)
	e.Any("/flight/:flightId/seat/:row/:seatId", h.Seat)
	e.Any("/flight/:flightId/seat/:row/:seatId/ticket", h.Ticket)

	anyWithBare(e, "/booking", "/:bookingCode", h.Booking)

	e.RouteNotFound("/*", h.Unknown)
}

// anyWithBare registers prefix+param plus prefix and prefix+"/" on handler.
func anyWithBare(e *echo.Echo, prefix, param string, handler echo.HandlerFunc) {
	e.Any(prefix+param, handler)
	e.Any(prefix, handler)
	e.Any(prefix+"/", handler)
}
