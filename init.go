package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tournevent/transdirect/internal/config"
	"github.com/tournevent/transdirect/internal/telemetry"
	"github.com/tournevent/transdirect/pkg/transdirect"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// app bundles the per-invocation dependencies of a CLI command.
type app struct {
	cfg           *config.Config
	logger        *otelzap.Logger
	metrics       *telemetry.Metrics
	client        *transdirect.Client
	tracerCleanup func(context.Context) error
}

func initApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var tracer trace.Tracer
	tracerCleanup := func(context.Context) error { return nil }
	if cfg.OTELEnabled {
		t, cleanup, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
		if err != nil {
			logger.Warn("Failed to initialize tracer", zap.Error(err))
		} else {
			tracer = t
			tracerCleanup = cleanup
		}
	}

	client := transdirect.New(transdirect.Config{
		BaseURL: cfg.EffectiveBaseURL(),
		Timeout: cfg.Timeout,
		UseMock: cfg.UseMock,
	}, logger, tracer)

	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}
	if creds != nil {
		if err := client.Authenticate(ctx, creds); err != nil {
			return nil, err
		}
	}

	return &app{
		cfg:           cfg,
		logger:        logger,
		metrics:       telemetry.NewMetrics(),
		client:        client,
		tracerCleanup: tracerCleanup,
	}, nil
}

func (a *app) shutdown(ctx context.Context) {
	a.logger.Sync()
	a.tracerCleanup(ctx)
}

// record logs one operation into the Prometheus metrics.
func (a *app) record(operation string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"

		code := "unknown"
		var httpErr *transdirect.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode != 0 {
			code = strconv.Itoa(httpErr.StatusCode)
		}
		a.metrics.RecordError(operation, code)
	}
	a.metrics.RecordRequest(operation, status, elapsed.Seconds())
}

func parseBookingIDs(args []string) ([]uint32, error) {
	ids := make([]uint32, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid booking id %q: %w", arg, err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}
