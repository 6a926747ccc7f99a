// Package domain contains the request-scoped entities of the booking gateway.
// Nothing in this package outlives a single inbound request.
package domain

import "net/url"

// InboundRequest is the transport-neutral view of an HTTP request reaching the gateway.
type InboundRequest struct {
	// Method is the HTTP method (e.g., "GET")
	Method string

	// Route identifies which route table entry the request matched
	Route Route

	// PathParams holds the named path parameters.
	// A nil map means the matched route carried no path parameters at all.
	PathParams map[string]string

	// Query holds every query parameter, single- and multi-valued alike
	Query url.Values

	// RawQuery is the undecoded query string as received
	RawQuery string

	// Body is the raw request body; empty means absent
	Body string

	// RequestID correlates log lines and backend calls for this request
	RequestID string
}

// HasQuery reports whether any query parameter was supplied.
// A raw query that does not parse (";" separators, bad escapes) still counts,
// since url.ParseQuery drops the pairs it rejects.
func (r InboundRequest) HasQuery() bool {
	if len(r.Query) > 0 {
		return true
	}
	if r.RawQuery == "" {
		return false
	}
	_, err := url.ParseQuery(r.RawQuery)
	return err != nil
}

// HasPathParams reports whether the request carries a path parameter map.
func (r InboundRequest) HasPathParams() bool {
	return r.PathParams != nil
}

// HasBody reports whether a non-empty body was supplied.
func (r InboundRequest) HasBody() bool {
	return r.Body != ""
}

// Param returns the named path parameter, or "" if absent.
func (r InboundRequest) Param(name string) string {
	return r.PathParams[name]
}
