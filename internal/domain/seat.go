package domain

import "encoding/json"

// SeatState is the reservation state of a seat or booking as reported by the booking backend.
// It is fetched fresh at the start of every delete and never cached.
type SeatState struct {
	// Reserved is true while the seat has an active hold or purchase
	Reserved bool `json:"reserved"`

	// Price is set once payment completed. Backends are not consistent about
	// its type, so any truthy value counts as paid.
	Price any `json:"price"`
}

// Paid reports whether the reservation was paid for.
func (s SeatState) Paid() bool {
	return Truthy(s.Price)
}

// Truthy reports whether a decoded JSON value counts as set:
// null, false, "", and 0 do not.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	default:
		return true
	}
}
