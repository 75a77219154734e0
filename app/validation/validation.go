// Package validation holds the per-operation request checks that run
// before any persistence call: required-field presence, path/body id
// identity, and the shared raw-object decode they both work on.
package validation

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeObject reads a request body as a raw JSON object. Keeping the
// values raw lets callers test field presence without type-checking,
// and copy whitelisted fields without decoding the rest.
func DecodeObject(r io.Reader) (map[string]json.RawMessage, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed request body: %w", err)
	}
	return body, nil
}

// RequireFields checks each named field for presence in the submitted
// payload, in order, and fails fast on the first one missing. Presence
// only: an empty or null value passes.
func RequireFields(body map[string]json.RawMessage, fields []string) error {
	for _, field := range fields {
		if _, ok := body[field]; !ok {
			return fmt.Errorf("Missing %s in request body", field)
		}
	}
	return nil
}

// MatchUpdateID requires the identifier in the request path and the one
// embedded in the body to be present and equal. On mismatch both values
// are echoed back to the client.
func MatchUpdateID(pathID int, body map[string]json.RawMessage) error {
	raw, ok := body["id"]
	if !ok {
		return fmt.Errorf("Request path id (%d) and request body id () must match", pathID)
	}

	var bodyID int
	if err := json.Unmarshal(raw, &bodyID); err != nil || bodyID != pathID {
		return fmt.Errorf("Request path id (%d) and request body id (%s) must match", pathID, string(raw))
	}
	return nil
}
