// Package apperr defines the error taxonomy shared by handlers,
// middleware and the authorization gate. Every value carries the HTTP
// status it maps to; the Fiber error handler turns it into the JSON
// envelope.
package apperr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// ErrCredentials covers every authentication failure: missing header,
// malformed or expired token, bad signature, unknown account. One
// message for all of them so nothing leaks about which check failed.
var ErrCredentials = New(http.StatusUnauthorized, "Could not validate credentials")

func NotFound(what string) *Error {
	return New(http.StatusNotFound, what+" not found")
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func Conflict(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Validation(format string, args ...any) *Error {
	return New(http.StatusUnprocessableEntity, fmt.Sprintf(format, args...))
}
