package search

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned for an empty query. No upstream call is made.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUpstream covers every failure to obtain or interpret upstream data.
	ErrUpstream = errors.New("upstream error")
)

// Error wraps one of the sentinels above with call context.
// errors.Is matches both the sentinel and the underlying cause.
type Error struct {
	Sentinel   error
	Op         string
	Status     int
	StatusText string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d %s)", msg, e.Status, e.StatusText)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Sentinel}
	}
	return []error{e.Sentinel, e.Err}
}

func invalidRequest(op, reason string) *Error {
	return &Error{Sentinel: ErrInvalidRequest, Op: op, Err: errors.New(reason)}
}

func upstreamError(op string, err error) *Error {
	return &Error{Sentinel: ErrUpstream, Op: op, Err: err}
}
