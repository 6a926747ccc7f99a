package domain

import "net/http"

// Header names and values used on outward responses.
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// OutwardResponse is what the gateway relays to its caller.
// StatusCode and Body are always set together.
type OutwardResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// IsNoContent reports whether the response is an empty 204.
func (r OutwardResponse) IsNoContent() bool {
	return r.StatusCode == http.StatusNoContent && r.Body == ""
}

// ErrorBody is the JSON shape of every error the gateway synthesizes.
type ErrorBody struct {
	Error string `json:"error"`
}

// BackendCallResult is the raw outcome of one completed backend call.
type BackendCallResult struct {
	StatusCode int
	Body       string
}

// IsSuccess reports a 2xx status.
func (r BackendCallResult) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
