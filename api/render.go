package api

import (
	"encoding/json"
	"log"
	"net/http"

	"cruxen/internal/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// statusFor maps taxonomy codes to HTTP statuses. Client input errors
// are 4xx; provider failures are 502; anything unrecognized is a 500.
func statusFor(code string) int {
	switch code {
	case errors.CodeEmptyInput, errors.CodeUnknownFramework, errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] encode response: %v", err)
	}
}

// writeError renders an error with its taxonomy code unchanged, so
// callers can branch on code rather than parsing messages.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		log.Printf("[API] internal error request_id=%s: %v", reqIDFrom(r.Context()), err)
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Code: code})
}
