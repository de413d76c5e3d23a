package rest

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the body of every non-lookup error reply.
type errorResponse struct {
	Word  *string `json:"word,omitempty"`
	Error string  `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
