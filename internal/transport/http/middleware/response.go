package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError rejects a request before it reaches a handler. The body
// uses the same {message} shape as the handler envelopes so clients see one
// error format regardless of which layer rejected them.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
