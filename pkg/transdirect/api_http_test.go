package transdirect_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/transdirect/pkg/transdirect"
)

func TestHTTPAPIClient_APIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Api-key")
		w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL})
	api.SetCredentials(transdirect.APIKeyAuth{Key: "test-key"})

	_, err := api.Get(context.Background(), "member")

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
}

func TestHTTPAPIClient_BasicAuth(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL})
	api.SetCredentials(transdirect.BasicAuth{Username: "user", Password: "pass"})

	_, err := api.Get(context.Background(), "member")

	require.NoError(t, err)
	require.True(t, gotOK)
	assert.Equal(t, "user", gotUser)
	assert.Equal(t, "pass", gotPass)
}

func TestHTTPAPIClient_NoCredentials(t *testing.T) {
	var gotAuth, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("Api-key")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := api.Get(context.Background(), "member")

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Empty(t, gotKey)
}

func TestHTTPAPIClient_ClearCredentials(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Api-key")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL})
	api.SetCredentials(transdirect.APIKeyAuth{Key: "test-key"})
	api.SetCredentials(nil)

	_, err := api.Get(context.Background(), "member")

	require.NoError(t, err)
	assert.Empty(t, gotKey)
}

func TestHTTPAPIClient_Post(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL + "/"})

	body, err := api.Post(context.Background(), "bookings/v4", []byte(`{"declared_value":53.3}`))

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/bookings/v4", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"declared_value":53.3}`, string(gotBody))
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestHTTPAPIClient_ErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "booking not found"}`))
	}))
	defer srv.Close()

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := api.Get(context.Background(), "bookings/v4/999")

	var httpErr *transdirect.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "booking not found", httpErr.Message)
}

func TestHTTPAPIClient_ErrorMapping_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable\n"))
	}))
	defer srv.Close()

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := api.Get(context.Background(), "member")

	var httpErr *transdirect.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "upstream unavailable", httpErr.Message)
}

func TestHTTPAPIClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening

	api := transdirect.NewHTTPAPIClient(transdirect.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := api.Get(context.Background(), "member")

	var httpErr *transdirect.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Zero(t, httpErr.StatusCode)
	assert.Error(t, httpErr.Cause)
}
