// Package apierror describes failures that are safe to show to API callers.
package apierror

import (
	"fmt"
	"net/http"
)

// FieldError names a request field and the rule it failed.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// APIError is an error with an HTTP status and a client-facing message.
type APIError struct {
	HTTPCode int
	Message  string
	Fields   []FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrLoginTaken reports that a poll for login is already registered.
func NewErrLoginTaken(login string) *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Message:  fmt.Sprintf("poll for %q already exists", login),
	}
}

// NewErrUnauthorized reports missing or incorrect credentials.
// Unknown logins and wrong passwords share this message.
func NewErrUnauthorized() *APIError {
	return &APIError{
		HTTPCode: http.StatusUnauthorized,
		Message:  "incorrect login or password",
	}
}

func NewErrValidation(fields []FieldError) *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Message:  "validation failed",
		Fields:   fields,
	}
}

func NewErrInvalidParameter(name, reason string) *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Message:  fmt.Sprintf("invalid %s: %s", name, reason),
		Fields:   []FieldError{{Field: name, Rule: reason}},
	}
}

func NewErrInvalidJSON() *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Message:  "invalid JSON body",
	}
}

func NewErrInternal() *APIError {
	return &APIError{
		HTTPCode: http.StatusInternalServerError,
		Message:  "internal server error",
	}
}
