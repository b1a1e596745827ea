package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorWithDetails creates a new domain error carrying structured details
func NewDomainErrorWithDetails(code, message string, details map[string]any) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists    = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized     = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrStoreUnavailable = NewDomainError("STORE_UNAVAILABLE", "The data store is unavailable, please retry")
)

// NewStoreUnavailableError wraps a persistence failure as a retryable store error.
// The underlying cause is kept in the details for logging, never shown raw to users.
func NewStoreUnavailableError(cause error) *DomainError {
	return NewDomainErrorWithDetails("STORE_UNAVAILABLE",
		"The data store is unavailable, please retry",
		map[string]any{"cause": cause.Error()})
}
