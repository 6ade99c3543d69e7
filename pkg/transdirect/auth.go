package transdirect

import "net/http"

// Credentials is a standing credential attached to every API call on a
// transport. Exactly one credential set is active at a time; SetCredentials
// replaces the previous one wholesale. The two shipped shapes, BasicAuth and
// APIKeyAuth, are mutually exclusive and chosen by the caller.
type Credentials interface {
	// Apply sets the authorization header(s) on an outgoing request.
	Apply(req *http.Request)
}

// BasicAuth authenticates with HTTP Basic credentials.
type BasicAuth struct {
	Username string
	Password string
}

// Apply sets the Authorization header.
func (a BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}

// APIKeyAuth authenticates with the Api-key header.
type APIKeyAuth struct {
	Key string
}

// Apply sets the Api-key header.
func (a APIKeyAuth) Apply(req *http.Request) {
	req.Header.Set("Api-key", a.Key)
}
