package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidPayload = errors.New("request body must be a JSON object")

// ParseJSONPayload decodes a payment request body into the loosely typed field map the
// use cases accept. An empty body yields an empty map so that missing fields are reported
// by the request rules instead.
func ParseJSONPayload(raw []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidPayload
	}

	// Numbers stay json.Number so large amounts are not rounded through float64.
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// FromQuery keeps the first non-blank value of every query parameter.
func FromQuery(values url.Values) map[string]any {
	payload := make(map[string]any, len(values))
	for key, vals := range values {
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				payload[key] = v
				break
			}
		}
	}
	return payload
}
