package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/tournevent/transdirect/pkg/transdirect"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the CLI.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Transdirect
	BaseURL    string        `envconfig:"TRANSDIRECT_BASE_URL" default:"https://www.transdirect.com.au/api/"`
	SandboxURL string        `envconfig:"TRANSDIRECT_SANDBOX_URL" default:"https://private-anon-a28d0f1a72-transdirectapiv4.apiary-mock.com/api/"`
	UseSandbox bool          `envconfig:"TRANSDIRECT_USE_SANDBOX" default:"false"`
	UseMock    bool          `envconfig:"TRANSDIRECT_USE_MOCK" default:"false"`
	APIKey     string        `envconfig:"TRANSDIRECT_API_KEY"`
	Username   string        `envconfig:"TRANSDIRECT_USERNAME"`
	Password   string        `envconfig:"TRANSDIRECT_PASSWORD"`
	Timeout    time.Duration `envconfig:"TRANSDIRECT_TIMEOUT" default:"30s"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"transdirect-go"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// EffectiveBaseURL returns the sandbox base when sandbox mode is enabled.
func (c *Config) EffectiveBaseURL() string {
	if c.UseSandbox {
		return c.SandboxURL
	}
	return c.BaseURL
}

// Credentials returns the configured credential shape, or nil when none is
// set. The API key and basic credentials are mutually exclusive.
func (c *Config) Credentials() (transdirect.Credentials, error) {
	hasBasic := c.Username != "" || c.Password != ""
	switch {
	case c.APIKey != "" && hasBasic:
		return nil, fmt.Errorf("config: API key and basic credentials are mutually exclusive")
	case c.APIKey != "":
		return transdirect.APIKeyAuth{Key: c.APIKey}, nil
	case hasBasic:
		return transdirect.BasicAuth{Username: c.Username, Password: c.Password}, nil
	default:
		return nil, nil
	}
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("transdirect.sandbox", c.UseSandbox),
		attribute.Bool("transdirect.mock", c.UseMock),
	}
}
