package dto

import (
	"net/http"
	"strings"
)

// General error codes used by the HTTP layer itself. Domain errors carry
// their own codes and are mapped through ErrorCodeHTTPStatus below.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request body validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Codes not listed fall through to GetHTTPStatus's prefix rules.
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeInternal:           http.StatusInternalServerError,
	"PASSWORD_HASH_FAILED":    http.StatusInternalServerError,
	"TOKEN_GENERATION_FAILED": http.StatusInternalServerError,

	// Malformed or incomplete input -> 400 Bad Request
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,
	"MISSING_FIELD":   http.StatusBadRequest,

	// Auth errors -> 401 Unauthorized
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	"INVALID_CREDENTIALS":   http.StatusUnauthorized,
	"INVALID_REFRESH_TOKEN": http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	"UNKNOWN_ORDER":      http.StatusNotFound,
	"ALREADY_EXISTS":     http.StatusConflict,
	"DUPLICATE_NAME":     http.StatusConflict,
	"DUPLICATE_USERNAME": http.StatusConflict,

	// Order form rejections -> 422 Unprocessable Entity. The request was
	// well formed but the ledger refused it.
	"UNKNOWN_CUSTOMER":      http.StatusUnprocessableEntity,
	"UNKNOWN_PRODUCT":       http.StatusUnprocessableEntity,
	"PRICE_MISMATCH":        http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":    http.StatusUnprocessableEntity,
	"NON_POSITIVE_QUANTITY": http.StatusUnprocessableEntity,

	// Store failures -> 503 Service Unavailable, clients may retry
	"STORE_UNAVAILABLE": http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// INVALID_* codes not explicitly mapped are treated as bad input.
// Everything else falls back to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
