package controllers

import (
	"encoding/json"
	"net/http"
)

// sendJSON writes data as a JSON response with the given status code.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendMessage writes a {"message": ...} body, the shape every error
// response shares.
func sendMessage(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"message": message})
}

// decodeFields copies raw JSON values into their typed targets.
func decodeFields(body map[string]json.RawMessage, targets map[string]interface{}) error {
	for field, target := range targets {
		raw, ok := body[field]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return err
		}
	}
	return nil
}
