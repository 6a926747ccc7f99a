package usecase

import (
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

// Supported-method lists used in 405 messages.
const (
	getMethods     = "GET"
	seatMethods    = "GET method"
	ticketMethods  = "POST, PUT, and DELETE"
	bookingMethods = "GET, PUT, and DELETE"
	allMethods     = "GET, POST, PUT, and DELETE"
)

var seatParams = []string{domain.ParamFlightID, domain.ParamRow, domain.ParamSeatID}

// Precondition contracts, one per handler.
var (
	allAirportsContract = domain.PreconditionContract{
		Method:           http.MethodGet,
		Route:            domain.RouteAirports,
		SupportedMethods: getMethods,
	}
	oneAirportContract = domain.PreconditionContract{
		Method:           http.MethodGet,
		PathParams:       []string{domain.ParamCode},
		Route:            domain.RouteAirport,
		SupportedMethods: getMethods,
	}
	allFlightsContract = domain.PreconditionContract{
		Method:           http.MethodGet,
		Route:            domain.RouteFlights,
		SupportedMethods: getMethods,
	}
	oneFlightContract = domain.PreconditionContract{
		Method:           http.MethodGet,
		PathParams:       []string{domain.ParamFlightID},
		Route:            domain.RouteFlight,
		SupportedMethods: getMethods,
	}
	seatsOnFlightContract = domain.PreconditionContract{
		Method:           http.MethodGet,
		PathParams:       []string{domain.ParamFlightID},
		Route:            domain.RouteSeats,
		SupportedMethods: seatMethods,
	}
	oneSeatContract = domain.PreconditionContract{
		Method:           http.MethodGet,
		PathParams:       seatParams,
		Route:            domain.RouteSeat,
		SupportedMethods: seatMethods,
	}

	putTicketContract = domain.PreconditionContract{
		Method:           http.MethodPut,
		PathParams:       seatParams,
		BodyRequired:     true,
		Route:            domain.RouteTicket,
		SupportedMethods: ticketMethods,
	}
	postTicketContract = domain.PreconditionContract{
		Method:           http.MethodPost,
		PathParams:       seatParams,
		BodyRequired:     true,
		Route:            domain.RouteTicket,
		SupportedMethods: ticketMethods,
	}
	deleteTicketContract = domain.PreconditionContract{
		Method:           http.MethodDelete,
		PathParams:       seatParams,
		Route:            domain.RouteTicket,
		SupportedMethods: ticketMethods,
	}

	getBookingContract = domain.PreconditionContract{
		Method:           http.MethodGet,
		PathParams:       []string{domain.ParamBookingCode},
		Route:            domain.RouteBooking,
		SupportedMethods: bookingMethods,
	}
	putBookingContract = domain.PreconditionContract{
		Method:           http.MethodPut,
		PathParams:       []string{domain.ParamBookingCode},
		BodyRequired:     true,
		Route:            domain.RouteBooking,
		SupportedMethods: bookingMethods,
	}
	deleteBookingContract = domain.PreconditionContract{
		Method:           http.MethodDelete,
		PathParams:       []string{domain.ParamBookingCode},
		Route:            domain.RouteBooking,
		SupportedMethods: bookingMethods,
	}
)
