package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/flight-search/flight-booking-gateway/internal/domain"
	"github.com/flight-search/flight-booking-gateway/internal/infrastructure/logger"
)

// Body decoding errors.
var (
	errMalformedBody = errors.New("request body is not valid JSON")
	errBodyContract  = errors.New("request body does not match contract")
)

// Schemas for request bodies. Field values are only checked for presence;
// truthiness is decided by domain.Truthy.
var (
	paymentSchema = mustSchema(`{
		"type": "object",
		"properties": {
			"price": {}
		}
	}`)

	reservationSchema = mustSchema(`{
		"type": "object",
		"required": ["reserver"],
		"properties": {
			"reserver": {
				"type": "object",
				"required": ["id"]
			}
		}
	}`)
)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid body schema: %v", err))
	}
	return schema
}

// decodeBody checks raw against schema and decodes it as a JSON object.
// Numbers are kept as json.Number so they are forwarded exactly as received.
func decodeBody(raw string, schema *gojsonschema.Schema) (map[string]any, error) {
	if !json.Valid([]byte(raw)) {
		return nil, errMalformedBody
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, fmt.Errorf("%w: %s", errBodyContract, strings.Join(details, "; "))
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return body, nil
}

// rejectBody logs a body that failed decoding and returns a 400 with message.
func rejectBody(log *logger.Logger, err error, message string) domain.OutwardResponse {
	log.Warn().Err(err).Int("status", http.StatusBadRequest).Msg("Request rejected: " + message)
	return Normalize(http.StatusBadRequest, domain.ErrorBody{Error: message})
}
