// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrMissingSearcher is returned by New when no search service is supplied.
var ErrMissingSearcher = errors.New("api: search service is required")

// Client-facing messages. Causes are logged, never echoed.
const (
	msgQueryRequired = "Query parameter is required"
	msgFetchFailed   = "Failed to fetch videos"
)

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
