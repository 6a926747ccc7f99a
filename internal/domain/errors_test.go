package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	tests := []struct {
		name          string
		backend       Backend
		method        string
		url           string
		underlyingErr error
		wantContains  []string
	}{
		{
			name:          "message names backend, method and url",
			backend:       BackendSearch,
			method:        "GET",
			url:           "http://search/airports",
			underlyingErr: errors.New("connection refused"),
			wantContains:  []string{"search", "GET", "http://search/airports", "connection refused"},
		},
		{
			name:          "timeout",
			backend:       BackendCancellation,
			method:        "PUT",
			url:           "http://cancel/cancel/ticket/booking/B1",
			underlyingErr: context.DeadlineExceeded,
			wantContains:  []string{"cancellation", "PUT", "deadline exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTransportError(tt.backend, tt.method, tt.url, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.True(t, errors.Is(err, ErrBackendUnavailable))
		})
	}
}

func TestTransportError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("fetch state: %w", NewTransportError(BackendBooking, "GET", "http://b", errors.New("eof")))

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.Equal(t, BackendBooking, transportErr.Backend)
	assert.True(t, errors.Is(err, ErrBackendUnavailable))
	assert.False(t, errors.Is(err, ErrUnknownRoute))
}

func TestMethodNotSupportedMessage(t *testing.T) {
	tests := []struct {
		supported string
		want      string
	}{
		{"GET", "Only GET supported"},
		{"GET method", "Only GET method supported"},
		{"POST, PUT, and DELETE", "Only POST, PUT, and DELETE supported"},
		{"GET, PUT, and DELETE", "Only GET, PUT, and DELETE supported"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MethodNotSupportedMessage(tt.supported))
	}
}
