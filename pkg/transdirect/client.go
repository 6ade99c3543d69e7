// Package transdirect provides a typed client for the Transdirect
// freight-booking API.
package transdirect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config holds client configuration.
type Config struct {
	BaseURL string        // Defaults to ProductionBaseURL
	Timeout time.Duration // Connect/read timeout for the underlying transport
	UseMock bool          // When true, uses the mock API client
}

// Client is the Transdirect booking client. It owns one transport handle and
// tracks whether a credential verification succeeded.
//
// A Client starts unauthenticated. Authenticate attaches standing
// credentials to the transport and verifies them; booking calls made before
// that fail at the transport layer with an *HTTPError, they are not blocked
// up front. Authenticate on the same instance must not run concurrently with
// other calls; everything else is safe to call concurrently.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer

	mu            sync.Mutex
	authenticated bool
}

// New creates a new unauthenticated client.
// If cfg.UseMock is true, it uses a mock API client for testing.
// Otherwise, it uses the real HTTP API client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new client with a custom API client.
// This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewFromAuth creates a client and authenticates it in one step.
func NewFromAuth(ctx context.Context, cfg Config, creds Credentials, logger *otelzap.Logger, tracer trace.Tracer) (*Client, error) {
	c := New(cfg, logger, tracer)
	if err := c.Authenticate(ctx, creds); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromBasic creates a client authenticated with HTTP Basic credentials.
func NewFromBasic(ctx context.Context, cfg Config, username, password string, logger *otelzap.Logger, tracer trace.Tracer) (*Client, error) {
	return NewFromAuth(ctx, cfg, BasicAuth{Username: username, Password: password}, logger, tracer)
}

// NewFromAPIKey creates a client authenticated with an API key.
func NewFromAPIKey(ctx context.Context, cfg Config, key string, logger *otelzap.Logger, tracer trace.Tracer) (*Client, error) {
	return NewFromAuth(ctx, cfg, APIKeyAuth{Key: key}, logger, tracer)
}

// Authenticate attaches creds to the transport and verifies them against the
// member endpoint. Only one credential set is active at a time; calling
// Authenticate again replaces it. On failure the standing credentials are
// cleared so a later unrelated call cannot succeed on a half-applied state,
// and the client stays unauthenticated.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) error {
	ctx, span := c.startSpan(ctx, "transdirect.Authenticate")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiClient.SetCredentials(creds)
	if _, err := c.member(ctx); err != nil {
		c.apiClient.SetCredentials(nil)
		c.authenticated = false
		c.logger.Error("Transdirect authentication failed", zap.Error(err))
		return err
	}

	c.authenticated = true
	c.logger.Info("Authenticated with Transdirect")
	return nil
}

// Authenticated reports whether a previous Authenticate call succeeded.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

// Member fetches the authenticated member profile.
func (c *Client) Member(ctx context.Context) (*Member, error) {
	ctx, span := c.startSpan(ctx, "transdirect.Member")
	defer span.End()

	return c.member(ctx)
}

func (c *Client) member(ctx context.Context) (*Member, error) {
	body, err := c.apiClient.Get(ctx, memberPath)
	if err != nil {
		return nil, err
	}

	var m Member
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, NewHTTPError("failed to decode member response").WithCause(err)
	}
	return &m, nil
}

func (c *Client) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if c.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return c.tracer.Start(ctx, name)
}

// Quotes submits a booking request and returns the server's booking record
// with competing carrier quotes. The exchange is a single POST with no
// retries: booking creation is not idempotent and must not be replayed by
// this layer.
//
// Quotes does not block unauthenticated calls; they fail at the transport
// with an *HTTPError. An unknown status token in an otherwise valid response
// surfaces as *UnknownStatusError.
func Quotes[T Count, U Amount](ctx context.Context, c *Client, req *BookingRequest[T, U]) (*BookingResponse[T, U], error) {
	ctx, span := c.startSpan(ctx, "transdirect.Quotes")
	defer span.End()

	requestID := uuid.New().String()
	c.logger.Info("Requesting Transdirect quotes",
		zap.String("request_id", requestID),
		zap.Int("item_count", len(req.Items)),
		zap.Float64("declared_value", float64(req.DeclaredValue)),
	)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, NewHTTPError("failed to marshal booking request").WithCause(err)
	}

	respBody, err := c.apiClient.Post(ctx, bookingsPath, body)
	if err != nil {
		c.logger.Error("Transdirect API error",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return decodeBooking[T, U](respBody)
}

// GetBooking fetches a single booking by its server-assigned id.
func GetBooking[T Count, U Amount](ctx context.Context, c *Client, id uint32) (*BookingResponse[T, U], error) {
	ctx, span := c.startSpan(ctx, "transdirect.GetBooking")
	defer span.End()

	c.logger.Info("Fetching Transdirect booking", zap.Uint32("booking_id", id))

	body, err := c.apiClient.Get(ctx, fmt.Sprintf("%s/%d", bookingsPath, id))
	if err != nil {
		c.logger.Error("Transdirect API error",
			zap.Uint32("booking_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return decodeBooking[T, U](body)
}

// GetBookings fetches several bookings in parallel. The returned slice is
// aligned with ids; a failed fetch leaves a nil entry and contributes to the
// error slice without cancelling its siblings.
func GetBookings[T Count, U Amount](ctx context.Context, c *Client, ids ...uint32) ([]*BookingResponse[T, U], []error) {
	results := make([]*BookingResponse[T, U], len(ids))
	errs := make([]error, 0)
	mu := &sync.Mutex{}

	g, ctx := errgroup.WithContext(ctx)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			resp, err := GetBooking[T, U](ctx, c, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("booking %d: %w", id, err))
				return nil // Don't fail the group, continue with other bookings
			}
			results[i] = resp
			return nil
		})
	}

	g.Wait()
	return results, errs
}

// decodeBooking decodes a booking body, keeping unknown-status failures
// distinguishable from plain decode failures.
func decodeBooking[T Count, U Amount](body []byte) (*BookingResponse[T, U], error) {
	var resp BookingResponse[T, U]
	if err := json.Unmarshal(body, &resp); err != nil {
		var unknown *UnknownStatusError
		if errors.As(err, &unknown) {
			return nil, unknown
		}
		return nil, NewHTTPError("failed to decode booking response").WithCause(err)
	}

	if err := resp.validate(); err != nil {
		return nil, NewHTTPError("invalid booking response").WithCause(err)
	}

	return &resp, nil
}
