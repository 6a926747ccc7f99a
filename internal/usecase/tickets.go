package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

// seatPath returns the "/flights/<f>/rows/<r>/seats/<s>" suffix shared by booking backend seat paths.
func seatPath(req domain.InboundRequest) string {
	return fmt.Sprintf("/flights/%s/rows/%s/seats/%s",
		req.Param(domain.ParamFlightID), req.Param(domain.ParamRow), req.Param(domain.ParamSeatID))
}

func (uc *gatewayUseCase) oneSeat(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	return uc.forward(ctx, req, oneSeatContract, func(req domain.InboundRequest) domain.BackendRequest {
		return get(domain.BackendBooking, "/details"+seatPath(req))
	})
}

// putTicket pays for a seat when the body carries a price, otherwise extends its hold.
func (uc *gatewayUseCase) putTicket(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	log := uc.requestLogger(req)
	if resp := Validate(log, req, putTicketContract); resp != nil {
		return *resp
	}

	body, err := decodeBody(req.Body, paymentSchema)
	if err != nil {
		return rejectBody(log, err, domain.MsgInvalidBody)
	}

	if price := body["price"]; domain.Truthy(price) {
		return uc.relay(ctx, log, domain.BackendRequest{
			Backend: domain.BackendBooking,
			Method:  http.MethodPut,
			Path:    "/booking/pay" + seatPath(req),
			Body:    domain.PaymentRequest{Price: price},
		})
	}
	return uc.relay(ctx, log, domain.BackendRequest{
		Backend: domain.BackendBooking,
		Method:  http.MethodPut,
		Path:    "/booking/extend" + seatPath(req),
	})
}

// postTicket reserves a seat for the reserver named in the body.
func (uc *gatewayUseCase) postTicket(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	log := uc.requestLogger(req)
	if resp := Validate(log, req, postTicketContract); resp != nil {
		return *resp
	}

	body, err := decodeBody(req.Body, reservationSchema)
	switch {
	case errors.Is(err, errBodyContract):
		return rejectBody(log, err, domain.MsgReserverRequired)
	case err != nil:
		return rejectBody(log, err, domain.MsgInvalidBody)
	}

	reserver, _ := body["reserver"].(map[string]any)
	id := reserver["id"]
	if !domain.Truthy(id) {
		return rejectBody(log, errors.New("reserver id is empty"), domain.MsgReserverRequired)
	}

	return uc.relay(ctx, log, domain.BackendRequest{
		Backend: domain.BackendBooking,
		Method:  http.MethodPut,
		Path:    "/booking/pay" + seatPath(req),
		Body:    domain.ReserverRequest{ID: id},
	})
}

// deleteTicket releases or cancels a seat depending on its reservation state.
func (uc *gatewayUseCase) deleteTicket(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	log := uc.requestLogger(req)
	if resp := Validate(log, req, deleteTicketContract); resp != nil {
		return *resp
	}
	return uc.cancelOrRelease(ctx, log, ticketTarget(req))
}
