package usecase

import (
	"context"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

func (uc *gatewayUseCase) allAirports(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	return uc.forward(ctx, req, allAirportsContract, func(domain.InboundRequest) domain.BackendRequest {
		return get(domain.BackendSearch, "/airports")
	})
}

func (uc *gatewayUseCase) oneAirport(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	return uc.forward(ctx, req, oneAirportContract, func(req domain.InboundRequest) domain.BackendRequest {
		return get(domain.BackendSearch, "/airportDetails?airport="+req.Param(domain.ParamCode))
	})
}

func (uc *gatewayUseCase) allFlights(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	return uc.forward(ctx, req, allFlightsContract, func(domain.InboundRequest) domain.BackendRequest {
		return get(domain.BackendSearch, "/flights")
	})
}

func (uc *gatewayUseCase) oneFlight(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	return uc.forward(ctx, req, oneFlightContract, func(req domain.InboundRequest) domain.BackendRequest {
		return get(domain.BackendSearch, "/flightDetails?flight="+req.Param(domain.ParamFlightID))
	})
}

func (uc *gatewayUseCase) seatsOnFlight(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	return uc.forward(ctx, req, seatsOnFlightContract, func(req domain.InboundRequest) domain.BackendRequest {
		return get(domain.BackendSearch, "/seats?flight="+req.Param(domain.ParamFlightID))
	})
}
