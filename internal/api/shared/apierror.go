package shared

import (
	"fmt"
	"net/http"
)

// APIError is the single failure type raised by gates and handlers. It
// serializes directly into the uniform error body
// {statusCode, message, errors?}. Gates never write the HTTP response on
// failure; they return an *APIError and the terminal translator performs
// the one and only response write.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *APIError) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error as context. The cause is logged
// but never serialized to the client.
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}

// BadRequest creates a 400 error.
func BadRequest(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message}
}

// BadRequestWithErrors creates a 400 error carrying field messages.
func BadRequestWithErrors(message string, errs []string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message, Errors: errs}
}

// Unauthorized creates a 401 error: the credential is absent entirely.
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Message: message}
}

// Unauthorizedf creates a 401 error with a formatted message.
func Unauthorizedf(format string, args ...any) *APIError {
	return Unauthorized(fmt.Sprintf(format, args...))
}

// Forbidden creates a 403 error: a credential is present but invalid, or
// the principal lacks ownership.
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Message: message}
}

// NotFoundf creates a 404 error identifying the failed lookup key.
func NotFoundf(format string, args ...any) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// MethodNotAllowed creates a 405 error.
func MethodNotAllowed(message string) *APIError {
	return &APIError{StatusCode: http.StatusMethodNotAllowed, Message: message}
}

// Conflict creates a 409 error for uniqueness violations.
func Conflict(message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Message: message}
}

// UnprocessableEntity creates a 422 error carrying the ordered per-field
// validation messages.
func UnprocessableEntity(message string, errs []string) *APIError {
	return &APIError{StatusCode: http.StatusUnprocessableEntity, Message: message, Errors: errs}
}

// ServiceUnavailable creates a 503 error.
func ServiceUnavailable(message string) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Message: message}
}
