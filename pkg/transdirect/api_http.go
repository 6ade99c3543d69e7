package transdirect

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// HTTPAPIClient is the production implementation of APIClient using HTTP.
type HTTPAPIClient struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	creds Credentials
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPAPIClient creates a new HTTP-based API client for production use.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ProductionBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPAPIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetCredentials replaces the standing credentials.
func (c *HTTPAPIClient) SetCredentials(creds Credentials) {
	c.mu.Lock()
	c.creds = creds
	c.mu.Unlock()
}

// Get issues a GET to the given path.
func (c *HTTPAPIClient) Get(ctx context.Context, path string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with a JSON body.
func (c *HTTPAPIClient) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.doRequest(ctx, http.MethodPost, path, body)
}

// doRequest performs an HTTP request with proper headers and the standing
// credentials, and returns the response body on 2xx.
func (c *HTTPAPIClient) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + "/" + path

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, NewHTTPError("failed to create request").WithCause(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "transdirect-go/1.0")

	c.mu.RLock()
	creds := c.creds
	c.mu.RUnlock()
	if creds != nil {
		creds.Apply(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewHTTPError("request failed").WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewHTTPError("failed to read response body").WithStatusCode(resp.StatusCode).WithCause(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, parseError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// parseError extracts error information from a non-2xx response.
func parseError(statusCode int, body []byte) *HTTPError {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		if msg != "" {
			return NewHTTPError(msg).WithStatusCode(statusCode)
		}
	}

	return NewHTTPError(strings.TrimSpace(string(body))).WithStatusCode(statusCode)
}

// Ensure HTTPAPIClient implements APIClient interface
var _ APIClient = (*HTTPAPIClient)(nil)
