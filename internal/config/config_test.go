package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/transdirect/internal/config"
	"github.com/tournevent/transdirect/pkg/transdirect"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, transdirect.ProductionBaseURL, cfg.BaseURL)
	assert.False(t, cfg.UseSandbox)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestEffectiveBaseURL(t *testing.T) {
	cfg := &config.Config{BaseURL: "https://prod.example/api/", SandboxURL: "https://sandbox.example/api/"}
	assert.Equal(t, "https://prod.example/api/", cfg.EffectiveBaseURL())

	cfg.UseSandbox = true
	assert.Equal(t, "https://sandbox.example/api/", cfg.EffectiveBaseURL())
}

func TestCredentials_APIKey(t *testing.T) {
	t.Setenv("TRANSDIRECT_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	creds, err := cfg.Credentials()
	require.NoError(t, err)
	assert.Equal(t, transdirect.APIKeyAuth{Key: "test-key"}, creds)
}

func TestCredentials_Basic(t *testing.T) {
	t.Setenv("TRANSDIRECT_USERNAME", "user")
	t.Setenv("TRANSDIRECT_PASSWORD", "pass")

	cfg, err := config.Load()
	require.NoError(t, err)

	creds, err := cfg.Credentials()
	require.NoError(t, err)
	assert.Equal(t, transdirect.BasicAuth{Username: "user", Password: "pass"}, creds)
}

func TestCredentials_MutuallyExclusive(t *testing.T) {
	t.Setenv("TRANSDIRECT_API_KEY", "test-key")
	t.Setenv("TRANSDIRECT_USERNAME", "user")

	cfg, err := config.Load()
	require.NoError(t, err)

	_, err = cfg.Credentials()
	assert.Error(t, err)
}

func TestCredentials_None(t *testing.T) {
	cfg := &config.Config{}

	creds, err := cfg.Credentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}
