package usecase

import (
	"net/http"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
)

// Validate checks req against contract before any backend is contacted.
// It returns nil when the request may proceed, otherwise the error response to send.
// The first failing check wins; the order below fixes which message a caller sees.
func Validate(log *logger.Logger, req domain.InboundRequest, contract domain.PreconditionContract) *domain.OutwardResponse {
	switch {
	case req.Method != contract.Method:
		return reject(log, req, contract, http.StatusMethodNotAllowed,
			domain.MethodNotSupportedMessage(contract.SupportedMethods), "unsupported method")

	case req.HasQuery():
		return reject(log, req, contract, http.StatusBadRequest,
			domain.MsgQueryNotSupported, "unwanted query parameters")

	case len(contract.PathParams) == 0 && req.HasPathParams():
		return reject(log, req, contract, http.StatusBadRequest,
			domain.MsgPathParamsNotSupported, "unwanted path parameters")

	case !contract.BodyRequired && req.HasBody():
		return reject(log, req, contract, http.StatusBadRequest,
			domain.MsgBodyNotSupported, "unwanted request body")

	case contract.BodyRequired && !req.HasBody():
		return reject(log, req, contract, http.StatusBadRequest,
			domain.MsgBodyRequired, "missing request body")
	}

	if len(contract.PathParams) == 0 {
		return nil
	}
	if !req.HasPathParams() {
		return reject(log, req, contract, http.StatusBadRequest,
			domain.MsgParamsRequired, "path parameters must be provided")
	}
	for _, name := range contract.PathParams {
		if req.Param(name) == "" {
			return reject(log, req, contract, http.StatusBadRequest,
				domain.MsgParamsRequired, "path parameter "+name+" must be provided")
		}
	}
	return nil
}

// reject logs the rejected request and builds its error response.
func reject(log *logger.Logger, req domain.InboundRequest, contract domain.PreconditionContract, status int, message, reason string) *domain.OutwardResponse {
	log.Warn().
		Str("route", string(contract.Route)).
		Str("method", req.Method).
		Interface("path_params", req.PathParams).
		Str("query", req.RawQuery).
		Bool("has_body", req.HasBody()).
		Int("status", status).
		Msg("Request rejected: " + reason)

	resp := Normalize(status, domain.ErrorBody{Error: message})
	return &resp
}
