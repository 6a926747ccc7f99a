// Package testutil provides test helper functions for unit and integration tests.
package testutil

import "encoding/json"

// ErrorJSON returns the body the gateway writes for a synthesized error.
func ErrorJSON(message string) string {
	data, _ := json.Marshal(map[string]string{"error": message})
	return string(data)
}
