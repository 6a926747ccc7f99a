// Package usecase contains the request handling of the booking gateway:
// precondition checks, backend forwarding, response normalization and the
// two-step delete workflow for tickets and bookings.
package usecase

import (
	"context"
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
)

// GatewayUseCase defines the entry point used by the transport layer.
type GatewayUseCase interface {
	// Dispatch routes req to its handler and returns the response to relay.
	// Every failure is already expressed as an OutwardResponse.
	Dispatch(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse
}

// gatewayUseCase implements GatewayUseCase on top of a BackendGateway.
// It holds no per-request state; concurrent Dispatch calls share nothing mutable.
type gatewayUseCase struct {
	backend domain.BackendGateway
	log     *logger.Logger
}

// handlerFunc is the shape of every route handler.
type handlerFunc func(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse

// NewGatewayUseCase creates a GatewayUseCase that forwards to backend.
// If log is nil, logging is disabled.
func NewGatewayUseCase(backend domain.BackendGateway, log *logger.Logger) GatewayUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &gatewayUseCase{
		backend: backend,
		log:     log,
	}
}

// requestLogger returns a logger carrying the request's correlation fields.
func (uc *gatewayUseCase) requestLogger(req domain.InboundRequest) *logger.Logger {
	return uc.log.WithRequestID(req.RequestID).WithRoute(string(req.Route))
}

// forward runs the validate, call, normalize pipeline shared by single-call routes.
func (uc *gatewayUseCase) forward(ctx context.Context, req domain.InboundRequest, contract domain.PreconditionContract, call func(domain.InboundRequest) domain.BackendRequest) domain.OutwardResponse {
	log := uc.requestLogger(req)
	if resp := Validate(log, req, contract); resp != nil {
		return *resp
	}
	return uc.relay(ctx, log, call(req))
}

// relay performs one backend call and normalizes its outcome.
// Backend statuses pass through unchanged; transport failures become a 500.
func (uc *gatewayUseCase) relay(ctx context.Context, log *logger.Logger, call domain.BackendRequest) domain.OutwardResponse {
	result, err := uc.backend.Call(ctx, call)
	if err != nil {
		return NormalizeError(log.WithBackend(string(call.Backend)), err)
	}
	return Normalize(result.StatusCode, result.Body)
}

// get builds a bodiless GET request.
func get(backend domain.Backend, path string) domain.BackendRequest {
	return domain.BackendRequest{Backend: backend, Method: http.MethodGet, Path: path}
}

// Ensure gatewayUseCase implements GatewayUseCase at compile time.
var _ GatewayUseCase = (*gatewayUseCase)(nil)
