package adapter

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by every [*APIError].
var (
	// ErrUnauthorized is a 401 response.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrServer is any other non-2xx response.
	ErrServer = errors.New("server error")
	// ErrTimeout means the request exceeded its time bound.
	ErrTimeout = errors.New("request timed out")
	// ErrNetwork means no response was received.
	ErrNetwork = errors.New("network error")
	// ErrMalformedResponse means a 2xx response body could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError describes a failed request. StatusCode is 0 when no HTTP
// response was received or the body of a 2xx response was unusable.
type APIError struct {
	StatusCode int
	// Message is the server-supplied message, if any.
	Message string

	kind  error
	cause error
}

func (e *APIError) Error() string {
	msg := e.kind.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *APIError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// NewAPIError builds an *APIError of the given kind. kind should be one of
// the sentinels above.
func NewAPIError(kind error, statusCode int, message string, cause error) *APIError {
	return &APIError{StatusCode: statusCode, Message: message, kind: kind, cause: cause}
}
