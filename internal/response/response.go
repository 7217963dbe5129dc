// Package response provides shared JSON response helpers for HTTP handlers.
//
// The gateway's API contract is JSON-level, not transport-level: every
// response — success or failure — is written with HTTP 200, and callers
// inspect the "success" field. Existing clients depend on this.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard API response envelope.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with success=true. message and data are each
// omitted from the body when empty.
func OK(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failure response. Per the API contract the status code
// stays 200; only the success flag and message signal the error.
func Fail(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Envelope{Success: false, Message: message})
}
