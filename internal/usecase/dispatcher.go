package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

// Dispatch selects the handler for the request's route and method.
// A known route with an unhandled method, or an unknown route, yields a 405.
func (uc *gatewayUseCase) Dispatch(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	handler, supported, known := uc.route(req)
	if handler != nil {
		return handler(ctx, req)
	}

	log := uc.requestLogger(req)
	event := log.Error().Str("method", req.Method)
	if known {
		event.Msg("Method not supported on route")
	} else {
		event.Err(fmt.Errorf("%w: %s", domain.ErrUnknownRoute, req.Route)).Msg("No handler for route")
	}
	return Normalize(http.StatusMethodNotAllowed, domain.ErrorBody{Error: domain.MethodNotSupportedMessage(supported)})
}

// route returns the handler for req, the supported-method list for a 405,
// and whether the route itself is known.
func (uc *gatewayUseCase) route(req domain.InboundRequest) (handlerFunc, string, bool) {
	switch req.Route {
	case domain.RouteAirports:
		return uc.allAirports, getMethods, true
	case domain.RouteAirport:
		return uc.oneAirport, getMethods, true
	case domain.RouteFlights:
		return uc.allFlights, getMethods, true
	case domain.RouteFlight:
		return uc.oneFlight, getMethods, true
	case domain.RouteSeats:
		return uc.seatsOnFlight, seatMethods, true
	case domain.RouteSeat:
		return uc.oneSeat, seatMethods, true

	case domain.RouteTicket:
		switch req.Method {
		case http.MethodPut:
			return uc.putTicket, ticketMethods, true
		case http.MethodPost:
			return uc.postTicket, ticketMethods, true
		case http.MethodDelete:
			return uc.deleteTicket, ticketMethods, true
		}
		return nil, ticketMethods, true

	case domain.RouteBooking:
		switch req.Method {
		case http.MethodGet:
			return uc.getBooking, bookingMethods, true
		case http.MethodPut:
			return uc.putBooking, bookingMethods, true
		case http.MethodDelete:
			return uc.deleteBooking, bookingMethods, true
		}
		return nil, bookingMethods, true
	}
	return nil, allMethods, false
}
