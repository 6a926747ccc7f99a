package domain

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutwardResponse_IsNoContent(t *testing.T) {
	assert.True(t, OutwardResponse{StatusCode: http.StatusNoContent}.IsNoContent())
	assert.False(t, OutwardResponse{StatusCode: http.StatusNoContent, Body: "{}"}.IsNoContent())
	assert.False(t, OutwardResponse{StatusCode: http.StatusOK}.IsNoContent())
}

func TestBackendCallResult_IsSuccess(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusCreated, true},
		{http.StatusNoContent, true},
		{299, true},
		{http.StatusMultipleChoices, false},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
		{199, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BackendCallResult{StatusCode: tt.status}.IsSuccess(), "status %d", tt.status)
	}
}

func TestErrorBody_JSON(t *testing.T) {
	data, err := json.Marshal(ErrorBody{Error: MsgParamsRequired})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Parameter(s) required"}`, string(data))
}
