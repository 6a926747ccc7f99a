package http

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/flight-search/flight-booking-gateway/internal/domain"
)

// toInboundRequest converts the echo request into the transport-neutral form.
// A route registered without parameters yields a nil PathParams map, which the
// validator distinguishes from a map with empty values.
func toInboundRequest(c echo.Context, route domain.Route) (domain.InboundRequest, error) {
	req := c.Request()

	var body []byte
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return domain.InboundRequest{}, fmt.Errorf("read request body: %w", err)
		}
		body = data
	}

	var params map[string]string
	if names := c.ParamNames(); len(names) > 0 {
		params = make(map[string]string, len(names))
		for _, name := range names {
			params[name] = c.Param(name)
		}
	}

	return domain.InboundRequest{
		Method:     req.Method,
		Route:      route,
		PathParams: params,
		Query:      c.QueryParams(),
		RawQuery:   req.URL.RawQuery,
		Body:       string(body),
		RequestID:  middleware.GetRequestID(c),
	}, nil
}
