package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
)

// errReservationState is returned when the current state of a seat or booking cannot be read.
var errReservationState = errors.New("reservation state unavailable")

// cancellationTarget holds the backend paths a delete touches for one resource.
type cancellationTarget struct {
	details string // booking backend, GET
	cancel  string // cancellation backend, PUT
	release string // booking backend, DELETE
}

func ticketTarget(req domain.InboundRequest) cancellationTarget {
	flight, row, seat := req.Param(domain.ParamFlightID), req.Param(domain.ParamRow), req.Param(domain.ParamSeatID)
	return cancellationTarget{
		details: "/booking/details" + seatPath(req),
		cancel:  fmt.Sprintf("/cancel/ticket/flight/%s/row/%s/seat/%s", flight, row, seat),
		release: "/booking/book" + seatPath(req),
	}
}

func bookingTarget(req domain.InboundRequest) cancellationTarget {
	return cancellationTarget{
		details: "/booking/details" + bookingPath(req),
		cancel:  "/cancel/ticket/booking/" + req.Param(domain.ParamBookingCode),
		release: "/booking/book" + bookingPath(req),
	}
}

// cancelOrRelease fetches the reservation state, then decides:
// nothing reserved is a 204 with no further call, a paid reservation is
// cancelled, and an unpaid one is released. The second call's response is relayed.
func (uc *gatewayUseCase) cancelOrRelease(ctx context.Context, log *logger.Logger, target cancellationTarget) domain.OutwardResponse {
	state, err := uc.fetchState(ctx, target.details)
	if err != nil {
		return NormalizeError(log.WithBackend(string(domain.BackendBooking)), err)
	}

	switch {
	case !state.Reserved:
		log.Info().Str("path", target.details).Msg("Nothing reserved, delete is a no-op")
		return Normalize(http.StatusNoContent, "")

	case state.Paid():
		log.Info().Str("path", target.cancel).Msg("Cancelling paid reservation")
		// The cancellation service exposes cancel as PUT.
		return uc.relay(ctx, log, domain.BackendRequest{
			Backend: domain.BackendCancellation,
			Method:  http.MethodPut,
			Path:    target.cancel,
		})

	default:
		log.Info().Str("path", target.release).Msg("Releasing unpaid reservation")
		return uc.relay(ctx, log, domain.BackendRequest{
			Backend: domain.BackendBooking,
			Method:  http.MethodDelete,
			Path:    target.release,
		})
	}
}

// fetchState reads the reservation state from the booking backend.
// A non-2xx answer or an undecodable body is treated like a failed call.
func (uc *gatewayUseCase) fetchState(ctx context.Context, path string) (domain.SeatState, error) {
	result, err := uc.backend.Call(ctx, get(domain.BackendBooking, path))
	if err != nil {
		return domain.SeatState{}, err
	}
	if !result.IsSuccess() {
		return domain.SeatState{}, fmt.Errorf("%w: booking backend answered %d", errReservationState, result.StatusCode)
	}

	var state domain.SeatState
	if err := json.Unmarshal([]byte(result.Body), &state); err != nil {
		return domain.SeatState{}, fmt.Errorf("%w: %v", errReservationState, err)
	}
	return state, nil
}
