package apiErrors

import (
	"encoding/json"
	"net/http"
)

// API error codes grouped by family
const (
	// Authentication errors (AUTH)
	ErrInvalidToken          = "AUTH_001" // Invalid or malformed token
	ErrExpiredToken          = "AUTH_002" // Expired token
	ErrInsufficientPrivilege = "AUTH_003" // Insufficient privileges

	// Validation errors (VAL)
	ErrInvalidRequest = "VAL_001" // Malformed request
	ErrEmptyName      = "VAL_002" // Contact name missing
	ErrInvalidPhone   = "VAL_003" // Phone number not normalizable
	ErrInvalidPax     = "VAL_004" // Pax below 1

	// Resource errors (RES)
	ErrPackageNotFound = "RES_001" // Package not found or not bookable
	ErrPrefillNotFound = "RES_002" // No prefill entry for device

	// Server errors (SRV)
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation failure
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrEmptyName:             http.StatusBadRequest,
	ErrInvalidPhone:          http.StatusBadRequest,
	ErrInvalidPax:            http.StatusBadRequest,
	ErrPackageNotFound:       http.StatusNotFound,
	ErrPrefillNotFound:       http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError is the standardized error envelope returned to clients
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error envelope to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps an existing Go error into an APIError
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
