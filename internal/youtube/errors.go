package youtube

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport covers dial, TLS, timeout and cancellation failures.
	ErrTransport = errors.New("youtube: transport failure")
	// ErrBadResponse means a 2xx response body could not be decoded.
	ErrBadResponse = errors.New("youtube: malformed response")
)

// StatusError is returned when the Data API answers with a non-success status.
type StatusError struct {
	Code       int
	StatusText string
	// Message is the API's own error message, if it sent one.
	Message string
}

func newStatusError(code int, message string) *StatusError {
	return &StatusError{Code: code, StatusText: http.StatusText(code), Message: message}
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("youtube api error: %s (HTTP %d)", e.StatusText, e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}
