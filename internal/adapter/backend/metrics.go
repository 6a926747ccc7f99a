package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded in backendRequestsTotal.
const (
	outcomeSuccess   = "success"
	outcomeStatus    = "non_2xx"
	outcomeTransport = "transport_error"
)

var (
	backendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "backend_requests_total",
			Help:      "Total number of calls made to backend services",
		},
		[]string{"backend", "method", "outcome"},
	)
	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of backend calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend", "method"},
	)
)

func outcomeFor(statusCode int, err error) string {
	switch {
	case err != nil:
		return outcomeTransport
	case statusCode >= 200 && statusCode < 300:
		return outcomeSuccess
	default:
		return outcomeStatus
	}
}
