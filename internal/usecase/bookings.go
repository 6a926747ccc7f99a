package usecase

import (
	"context"
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

func bookingPath(req domain.InboundRequest) string {
	return "/bookings/" + req.Param(domain.ParamBookingCode)
}

func (uc *gatewayUseCase) getBooking(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	return uc.forward(ctx, req, getBookingContract, func(req domain.InboundRequest) domain.BackendRequest {
		return get(domain.BackendBooking, "/booking/details"+bookingPath(req))
	})
}

// putBooking pays for a booking when the body carries a price, otherwise extends its hold.
func (uc *gatewayUseCase) putBooking(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	log := uc.requestLogger(req)
	if resp := Validate(log, req, putBookingContract); resp != nil {
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
			Path:    "/booking/pay" + bookingPath(req),
			Body:    domain.PaymentRequest{Price: price},
		})
	}
	return uc.relay(ctx, log, domain.BackendRequest{
		Backend: domain.BackendBooking,
		Method:  http.MethodPut,
		Path:    "/booking/extend" + bookingPath(req),
	})
}

func (uc *gatewayUseCase) deleteBooking(ctx context.Context, req domain.InboundRequest) domain.OutwardResponse {
	log := uc.requestLogger(req)
	if resp := Validate(log, req, deleteBookingContract); resp != nil {
		return *resp
	}
	return uc.cancelOrRelease(ctx, log, bookingTarget(req))
}
