package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatState_Decode(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantReserved bool
		wantPaid     bool
	}{
		{"unreserved", `{"reserved":false}`, false, false},
		{"held, price null", `{"reserved":true,"price":null}`, true, false},
		{"held, price missing", `{"reserved":true}`, true, false},
		{"held, price zero", `{"reserved":true,"price":0}`, true, false},
		{"held, price empty string", `{"reserved":true,"price":""}`, true, false},
		{"held, price false", `{"reserved":true,"price":false}`, true, false},
		{"paid", `{"reserved":true,"price":50}`, true, true},
		{"paid, fractional", `{"reserved":true,"price":0.5}`, true, true},
		{"paid, price as string", `{"reserved":true,"price":"50"}`, true, true},
		{"paid, price as object", `{"reserved":true,"price":{"amount":50}}`, true, true},
		{"extra fields ignored", `{"reserved":true,"price":10,"seat":"A"}`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state SeatState
			require.NoError(t, json.Unmarshal([]byte(tt.body), &state))

			assert.Equal(t, tt.wantReserved, state.Reserved)
			assert.Equal(t, tt.wantPaid, state.Paid())
		})
	}
}

func TestSeatState_Paid(t *testing.T) {
	assert.False(t, SeatState{Reserved: true}.Paid())
	assert.False(t, SeatState{Reserved: true, Price: 0.0}.Paid())
	assert.True(t, SeatState{Reserved: true, Price: 99.0}.Paid())
	assert.True(t, SeatState{Reserved: true, Price: -1.0}.Paid())
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"0", true},
		{json.Number("0"), false},
		{json.Number("0.0"), false},
		{json.Number("12.5"), true},
		{json.Number("-1"), true},
		{float64(0), false},
		{float64(3), true},
		{map[string]any{}, true},
		{[]any{}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy(tt.value), "Truthy(%#v)", tt.value)
	}
}
