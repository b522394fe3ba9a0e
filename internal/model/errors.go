package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the transport-level error representation. Callers only ever see
// the status code and a fixed message; internal failure detail stays in logs.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Fixed user-facing messages. These are part of the external interface and
// deliberately carry no detail about which internal check failed.
const (
	msgInvalidInviteCode = "Invalid invite code"
	msgAuthentication    = "Authentication failed"
	msgServer            = "Something went wrong"
)

// Common error constructors

func NewInvalidInviteCodeError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: msgInvalidInviteCode,
	}
}

func NewUnauthorizedError() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: msgAuthentication,
	}
}

func NewServerError() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: msgServer,
	}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}
