// Package http provides the HTTP handler layer for the booking gateway.
// Handlers translate echo requests into domain.InboundRequest, dispatch them,
// and write back the resulting OutwardResponse unchanged.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-booking-gateway/internal/adapter/http/response"
	"github.com/flight-search/flight-booking-gateway/internal/domain"
	"github.com/flight-search/flight-booking-gateway/internal/usecase"
)

// GatewayHandler handles HTTP requests for every gateway route.
type GatewayHandler struct {
	useCase usecase.GatewayUseCase
}

// NewGatewayHandler creates a new GatewayHandler with the given use case.
func NewGatewayHandler(uc usecase.GatewayUseCase) *GatewayHandler {
	return &GatewayHandler{
		useCase: uc,
	}
}

// serve converts, dispatches and writes one request for route.
func (h *GatewayHandler) serve(c echo.Context, route domain.Route) error {
	req, err := toInboundRequest(c, route)
	if err != nil {
		// Oversized bodies surface as *echo.HTTPError from the body limit reader.
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return err
		}
		return response.BadRequest(c, domain.MsgUnreadableBody)
	}

	resp := h.useCase.Dispatch(c.Request().Context(), req)
	return response.Write(c, resp)
}

// Airports handles GET /airports
//
// @Summary List airports
// @Tags search
// @Produce json
// @Success 200 {array} object "Relayed from the search service"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Search service unreachable"
// @Router /airports [get]
func (h *GatewayHandler) Airports(c echo.Context) error {
	return h.serve(c, domain.RouteAirports)
}

// Airport handles GET /airport/{code}
//
// @Summary Get airport details
// @Tags search
// @Produce json
// @Param code path string true "Airport code"
// @Success 200 {object} object "Relayed from the search service"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Search service unreachable"
// @Router /airport/{code} [get]
func (h *GatewayHandler) Airport(c echo.Context) error {
	return h.serve(c, domain.RouteAirport)
}

// Flights handles GET /flights
//
// @Summary List flights
// @Tags search
// @Produce json
// @Success 200 {array} object "Relayed from the search service"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Search service unreachable"
// @Router /flights [get]
func (h *GatewayHandler) Flights(c echo.Context) error {
	return h.serve(c, domain.RouteFlights)
}

// Flight handles GET /flight/{flightId}
//
// @Summary Get flight details
// @Tags search
// @Produce json
// @Param flightId path string true "Flight id"
// @Success 200 {object} object "Relayed from the search service"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Search service unreachable"
// @Router /flight/{flightId} [get]
func (h *GatewayHandler) Flight(c echo.Context) error {
	return h.serve(c, domain.RouteFlight)
}

// Seats handles GET /flight/{flightId}/seats
//
// @Summary List seats on a flight
// @Tags search
// @Produce json
// @Param flightId path string true "Flight id"
// @Success 200 {array} object "Relayed from the search service"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Search service unreachable"
// @Router /flight/{flightId}/seats [get]
func (h *GatewayHandler) Seats(c echo.Context) error {
	return h.serve(c, domain.RouteSeats)
}

// Seat handles GET /flight/{flightId}/seat/{row}/{seatId}
//
// @Summary Get seat details
// @Tags booking
// @Produce json
// @Param flightId path string true "Flight id"
// @Param row path string true "Seat row"
// @Param seatId path string true "Seat id"
// @Success 200 {object} object "Relayed from the booking service"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Booking service unreachable"
// @Router /flight/{flightId}/seat/{row}/{seatId} [get]
func (h *GatewayHandler) Seat(c echo.Context) error {
	return h.serve(c, domain.RouteSeat)
}

// Ticket handles POST, PUT and DELETE /flight/{flightId}/seat/{row}/{seatId}/ticket
//
// @Summary Reserve, pay for, extend or cancel a seat
// @Description POST reserves the seat for body.reserver.id. PUT pays when body.price is set, otherwise extends the hold.
// @Description DELETE cancels a paid seat or releases an unpaid one; an unreserved seat yields 204.
// @Tags booking
// @Accept json
// @Produce json
// @Param flightId path string true "Flight id"
// @Param row path string true "Seat row"
// @Param seatId path string true "Seat id"
// @Param request body object false "{\"price\": 100} or {\"reserver\": {\"id\": \"...\"}}"
// @Success 200 {object} object "Relayed from the booking or cancellation service"
// @Success 204 "Seat was not reserved"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Backend service unreachable"
// @Router /flight/{flightId}/seat/{row}/{seatId}/ticket [post]
// @Router /flight/{flightId}/seat/{row}/{seatId}/ticket [put]
// @Router /flight/{flightId}/seat/{row}/{seatId}/ticket [delete]
func (h *GatewayHandler) Ticket(c echo.Context) error {
	return h.serve(c, domain.RouteTicket)
}

// Booking handles GET, PUT and DELETE /booking/{bookingCode}
//
// @Summary Read, pay for, extend or cancel a booking
// @Tags booking
// @Accept json
// @Produce json
// @Param bookingCode path string true "Booking code"
// @Param request body object false "{\"price\": 100}"
// @Success 200 {object} object "Relayed from the booking or cancellation service"
// @Success 204 "Booking was not reserved"
// @Failure 400 {object} domain.ErrorBody
// @Failure 405 {object} domain.ErrorBody
// @Failure 500 {object} domain.ErrorBody "Backend service unreachable"
// @Router /booking/{bookingCode} [get]
// @Router /booking/{bookingCode} [put]
// @Router /booking/{bookingCode} [delete]
func (h *GatewayHandler) Booking(c echo.Context) error {
	return h.serve(c, domain.RouteBooking)
}

// Unknown handles paths matching no registered route.
func (h *GatewayHandler) Unknown(c echo.Context) error {
	return h.serve(c, domain.Route(c.Request().URL.Path))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *GatewayHandler) Health(c echo.Context) error {
	return response.Health(c)
}
