// Package middleware holds the HTTP middleware stack shared by every route.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware wraps an http.Handler. It matches chi's Use signature.
type Middleware = func(http.Handler) http.Handler

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
