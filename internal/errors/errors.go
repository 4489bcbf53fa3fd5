package errors

import (
	"errors"
	"net/http"
)

// Re-exported so callers don't need both this package and stdlib errors.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func BadRequest(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func Unauthorized(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	var statusErr *ErrorWithStatusCode
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
