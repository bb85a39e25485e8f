package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is a transport-level error with a status code, a stable
// machine-readable code, and a user-facing message.
type HTTPError struct {
	Status  int
	Code    int
	Message string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// New creates a new HTTPError.
func New(status, code int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}

// NewBadRequest creates a 400 error.
func NewBadRequest(code int, message string) *HTTPError {
	return New(http.StatusBadRequest, code, message)
}

// NewNotFound creates a 404 error.
func NewNotFound(code int, message string) *HTTPError {
	return New(http.StatusNotFound, code, message)
}

// NewUnprocessable creates a 422 error.
func NewUnprocessable(code int, message string) *HTTPError {
	return New(http.StatusUnprocessableEntity, code, message)
}

// NewInternal creates a 500 error.
func NewInternal(code int, message string) *HTTPError {
	return New(http.StatusInternalServerError, code, message)
}
