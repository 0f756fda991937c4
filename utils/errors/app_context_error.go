package errors

import (
	"fmt"
	"net/http"
)

// Error codes used across layers. Gateways translate raw driver failures
// into one of these so usecases can branch on class, not on provider quirks.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND_ERROR"
	CodeRateLimit   = "RATE_LIMIT_ERROR"
	CodeTimeout     = "TIMEOUT_ERROR"
	CodeExternalAPI = "EXTERNAL_API_ERROR"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// AppContextError represents an error with rich context information.
type AppContextError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // rest, usecase, gateway, driver
	Component string                 `json:"component,omitempty"` // specific component/service name
	Operation string                 `json:"operation,omitempty"` // specific operation/method name
	Cause     error                  `json:"-"`                   // underlying error (not serialized)
	Context   map[string]interface{} `json:"context,omitempty"`   // additional context information
}

// Error implements the error interface
func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping
func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeExternalAPI:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryable determines if the error represents a retryable condition.
// Timeouts are retryable in general, but the analyze flow deliberately does
// not retry them against the same provider.
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeRateLimit, CodeTimeout, CodeExternalAPI:
		return true
	default:
		return false
	}
}

// HTTPContextResponse represents the structure of error responses sent to clients
type HTTPContextResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`
	Component string                 `json:"component,omitempty"`
	Operation string                 `json:"operation,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// ToHTTPResponse converts an AppContextError to an HTTP error response
func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	return HTTPContextResponse{
		Error:     "error",
		Code:      e.Code,
		Message:   e.Message,
		Layer:     e.Layer,
		Component: e.Component,
		Operation: e.Operation,
		Context:   e.Context,
	}
}

// NewAppContextError creates a new AppContextError with full context
func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]interface{},
) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// NewValidationContextError creates a validation error with context
func NewValidationContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeValidation, message, layer, component, operation, nil, context)
}

// NewNotFoundContextError creates a not-found error with context
func NewNotFoundContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeNotFound, message, layer, component, operation, nil, context)
}

// NewRateLimitContextError creates a rate limit error with context
func NewRateLimitContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeRateLimit, message, layer, component, operation, cause, context)
}

// NewTimeoutContextError creates a timeout error with context
func NewTimeoutContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeTimeout, message, layer, component, operation, cause, context)
}

// NewExternalAPIContextError creates an external API error with context
func NewExternalAPIContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeExternalAPI, message, layer, component, operation, cause, context)
}

// NewUnknownContextError creates an unknown error with context
func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, context)
}
