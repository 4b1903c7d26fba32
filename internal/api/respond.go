package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var errInvalidJSON = errors.New("invalid JSON")

// decodeJSON parses the request body into v. Unknown fields are tolerated:
// storefront builds attach extra metadata the backend doesn't care about.
func decodeJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if contentType != "" && contentType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", errInvalidJSON, contentType)
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errInvalidJSON)
		}
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}
	return nil
}

// writeJSON renders v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody builds the failure payload. The details field carries internal
// error context and is withheld in production.
func errorBody(message string, err error, production bool, extra map[string]any) map[string]any {
	body := map[string]any{"error": message}
	if err != nil && !production {
		body["details"] = err.Error()
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}
