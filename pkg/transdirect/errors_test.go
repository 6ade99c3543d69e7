package transdirect_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/transdirect/pkg/transdirect"
)

func TestHTTPError_Message(t *testing.T) {
	err := transdirect.NewHTTPError("request failed")
	assert.Equal(t, "transdirect: request failed", err.Error())

	err = err.WithStatusCode(503)
	assert.Equal(t, "transdirect: HTTP 503: request failed", err.Error())

	cause := errors.New("connection refused")
	err = err.WithCause(cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := transdirect.NewHTTPError("request failed").WithCause(cause)

	assert.ErrorIs(t, err, cause)

	var httpErr *transdirect.HTTPError
	wrapped := fmt.Errorf("quotes: %w", err)
	require.ErrorAs(t, wrapped, &httpErr)
	assert.Equal(t, "request failed", httpErr.Message)
}

func TestUnknownStatusError_Sentinel(t *testing.T) {
	err := error(&transdirect.UnknownStatusError{Token: "teleported"})

	assert.ErrorIs(t, err, transdirect.ErrUnknownStatus)
	assert.Contains(t, err.Error(), "teleported")

	var httpErr *transdirect.HTTPError
	assert.False(t, errors.As(err, &httpErr), "unknown status is not a transport failure")
}
