package coggle

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTextTooLong indicates node text longer than MaxTextLength.
	ErrTextTooLong = errors.New("the text is too long")

	// ErrInvalidOrganizationName indicates an organization slug that does not
	// match the accepted pattern.
	ErrInvalidOrganizationName = errors.New("invalid organization name")
)

// ValidationError is returned when caller input is rejected before any request
// is sent.
type ValidationError struct {
	// Field is the name of the rejected input, e.g. "text" or "organization".
	Field string

	// Err is one of the Err* sentinels of this package.
	Err error

	// Reason is the underlying validator error, if any.
	Reason error
}

func (e *ValidationError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("invalid %s: %v (%v)", e.Field, e.Err, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// TransportError wraps a failed round trip: the request could not be sent,
// the server answered with a non-2xx status, or a body could not be encoded
// or decoded.
type TransportError struct {
	Method string

	// Endpoint is the server-relative path. The access token is never included.
	Endpoint string

	// StatusCode is zero when no response was received.
	StatusCode int

	// Body holds the response body for non-2xx responses.
	Body string

	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: API returned status %d: %v", e.Method, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the request could succeed.
func (e *TransportError) Retryable() bool {
	if e.StatusCode == 0 {
		// No response: network failures are retryable, encode/decode failures
		// are not.
		return !errors.Is(e.Err, errCodec)
	}
	return isRetryableHTTPStatus(e.StatusCode)
}

// errCodec marks JSON encode/decode failures inside a TransportError.
var errCodec = errors.New("json codec")

type codecError struct {
	op  string
	err error
}

func (e *codecError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.op, e.err)
}

func (e *codecError) Unwrap() []error {
	return []error{errCodec, e.err}
}

// isRetryableHTTPStatus determines if an HTTP status code represents a retryable error
func isRetryableHTTPStatus(status int) bool {
	switch {
	case status >= 500:
		return true
	case status == http.StatusTooManyRequests:
		return true
	case status == http.StatusRequestTimeout:
		return true
	default:
		return false
	}
}
