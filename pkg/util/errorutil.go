package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed request into the client-side error taxonomy.
type Kind string

const (
	KindLoginFailure   Kind = "LOGIN_FAILURE"
	KindSessionExpired Kind = "SESSION_EXPIRED"
	KindUnauthorized   Kind = "UNAUTHORIZED"
	KindForbidden      Kind = "FORBIDDEN"
	KindValidation     Kind = "VALIDATION_FAILED"
	KindNotFound       Kind = "NOT_FOUND"
	KindServer         Kind = "SERVER_ERROR"
	KindClient         Kind = "CLIENT_ERROR"
	KindUnknown        Kind = "UNKNOWN"
)

// Default messages surfaced when the backend provides none.
const (
	MsgLoginFailure   = "Invalid username or password."
	MsgSessionExpired = "Your session has expired. Please login again."
	MsgUnauthorized   = "You are not authorized to perform this action."
	MsgForbidden      = "You do not have permission to access this resource."
	MsgValidation     = "Invalid request. Please check your input."
	MsgNotFound       = "Resource not found."
	MsgServer         = "Internal server error. Please try again later."
)

// APIError standardizes failures surfaced by the request pipeline.
type APIError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError constructs an APIError, substituting fallback when the
// server-provided message is empty.
func NewAPIError(kind Kind, message, fallback string, status int) *APIError {
	if message == "" {
		message = fallback
	}
	return &APIError{Kind: kind, Message: message, HTTPStatus: status}
}

func NewLoginFailure(message string) *APIError {
	return NewAPIError(KindLoginFailure, message, MsgLoginFailure, http.StatusUnauthorized)
}

func NewSessionExpired() *APIError {
	return NewAPIError(KindSessionExpired, "", MsgSessionExpired, http.StatusUnauthorized)
}

func NewUnauthorized(message string) *APIError {
	return NewAPIError(KindUnauthorized, message, MsgUnauthorized, http.StatusUnauthorized)
}

func NewForbidden(message string) *APIError {
	return NewAPIError(KindForbidden, message, MsgForbidden, http.StatusForbidden)
}

func NewValidationError(message string) *APIError {
	return NewAPIError(KindValidation, message, MsgValidation, http.StatusBadRequest)
}

func NewNotFound(message string) *APIError {
	return NewAPIError(KindNotFound, message, MsgNotFound, http.StatusNotFound)
}

func NewServerError(message string) *APIError {
	return NewAPIError(KindServer, message, MsgServer, http.StatusInternalServerError)
}

// NewClientError wraps a transport-level failure where no response was
// received.
func NewClientError(err error) *APIError {
	return &APIError{
		Kind:    KindClient,
		Message: fmt.Sprintf("Error: %v", err),
		Err:     err,
	}
}

// NewUnknown covers status codes outside the classification table.
func NewUnknown(message string, status int) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{
		Kind:       KindUnknown,
		Message:    fmt.Sprintf("Error Code: %d\nMessage: %s", status, message),
		HTTPStatus: status,
	}
}

// AsAPIError extracts an APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == kind
}
