package transdirect

import (
	"errors"
	"fmt"
)

// HTTPError represents a transport, HTTP-status, or body-decode failure
// during an API call. The message text is for diagnostics only; callers
// should branch on the error kind, and on StatusCode when it is set.
type HTTPError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("transdirect: HTTP %d: %s: %v", e.StatusCode, e.Message, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("transdirect: HTTP %d: %s", e.StatusCode, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("transdirect: %s: %v", e.Message, e.Cause)
	default:
		return "transdirect: " + e.Message
	}
}

// Unwrap returns the underlying cause.
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(message string) *HTTPError {
	return &HTTPError{Message: message}
}

// WithStatusCode adds the HTTP status code to the error.
func (e *HTTPError) WithStatusCode(code int) *HTTPError {
	e.StatusCode = code
	return e
}

// WithCause adds a cause to the error.
func (e *HTTPError) WithCause(err error) *HTTPError {
	e.Cause = err
	return e
}

// ErrUnknownStatus matches any *UnknownStatusError via errors.Is.
var ErrUnknownStatus = errors.New("unknown booking status")

// UnknownStatusError reports a booking status token outside the known set.
// The server may introduce new statuses before this client is updated;
// callers should treat this as recoverable and distinct from an HTTPError.
type UnknownStatusError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("transdirect: unknown booking status %q", e.Token)
}

// Is reports true for ErrUnknownStatus.
func (e *UnknownStatusError) Is(target error) bool {
	return target == ErrUnknownStatus
}
