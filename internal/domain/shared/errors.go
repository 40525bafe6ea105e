package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
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

// ValidationError is a domain error carrying per-field failure messages
type ValidationError struct {
	DomainError
	Fields map[string]string `json:"fields"`
}

// NewValidationError creates a validation error with per-field messages
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		DomainError: DomainError{Code: "VALIDATION_FAILED", Message: message},
		Fields:      fields,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrNotConfigured = NewDomainError("NOT_CONFIGURED", "Server configuration error")
	ErrUpstream      = NewDomainError("UPSTREAM_ERROR", "Record store request failed")
)
