package domain

// Route is the resource identifier the dispatcher switches on.
// Values use the public path template so they read well in logs.
type Route string

// Routes served by the gateway.
const (
	RouteAirports Route = "/airports"
	RouteAirport  Route = "/airport/{code}"
	RouteFlights  Route = "/flights"
	RouteFlight   Route = "/flight/{flightId}"
	RouteSeats    Route = "/flight/{flightId}/seats"
	RouteSeat     Route = "/flight/{flightId}/seat/{row}/{seatId}"
	RouteTicket   Route = "/flight/{flightId}/seat/{row}/{seatId}/ticket"
	RouteBooking  Route = "/booking/{bookingCode}"
)

// Path parameter names.
const (
	ParamCode        = "code"
	ParamFlightID    = "flightId"
	ParamRow         = "row"
	ParamSeatID      = "seatId"
	ParamBookingCode = "bookingCode"
)

// PreconditionContract declares what a route accepts.
// One value exists per route and handler; it is never mutated after construction.
type PreconditionContract struct {
	// Method is the only HTTP method the handler accepts
	Method string

	// PathParams lists required path parameter names in check order.
	// Empty means the route takes no path parameters.
	PathParams []string

	// BodyRequired is true when the handler needs a request body
	BodyRequired bool

	// Route is used for diagnostics only
	Route Route

	// SupportedMethods is the human-readable method list used in 405 messages (e.g., "GET, PUT, and DELETE")
	SupportedMethods string
}
