package transdirect

import "context"

// Base URLs for the two Transdirect environments.
const (
	ProductionBaseURL = "https://www.transdirect.com.au/api/"
	SandboxBaseURL    = "https://private-anon-a28d0f1a72-transdirectapiv4.apiary-mock.com/api/"
)

// API paths, per Transdirect API v4.
const (
	memberPath   = "member"
	bookingsPath = "bookings/v4"
)

// APIClient defines the raw transport operations the booking client needs.
// This abstraction allows for mock implementations during testing and real
// implementations in production. Implementations must be safe for concurrent
// use, including SetCredentials racing with in-flight calls.
type APIClient interface {
	// Get issues a GET to the given path and returns the response body.
	Get(ctx context.Context, path string) ([]byte, error)

	// Post issues a POST with a JSON body and returns the response body.
	Post(ctx context.Context, path string, body []byte) ([]byte, error)

	// SetCredentials replaces the standing credentials attached to every
	// subsequent call. A nil value clears them.
	SetCredentials(creds Credentials)
}
