package fetch

import (
	"context"

	"go.uber.org/zap"

	internaltracing "github.com/wehubfusion/jsj/internal/tracing"
)

// TracingConfig is the public tracing configuration used by Client.
// It mirrors the internal tracing configuration but keeps the implementation private.
type TracingConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	Insecure       bool
	Headers        map[string]string
	SampleRatio    float64
}

// DefaultTracingConfig returns a development-friendly tracing configuration.
func DefaultTracingConfig(serviceName string) TracingConfig {
	cfg := internaltracing.DefaultConfig(serviceName)
	cfg.ServiceVersion = Version
	return fromInternalConfig(cfg)
}

// SetupTracing installs a global OTLP tracer provider. Fetch spans are
// exported once it is in place. Call the returned function on exit.
func SetupTracing(ctx context.Context, cfg TracingConfig, logger *zap.Logger) (func(context.Context) error, error) {
	return internaltracing.SetupTracing(ctx, cfg.toInternalConfig(), logger)
}

func (c TracingConfig) toInternalConfig() internaltracing.TracingConfig {
	return internaltracing.TracingConfig{
		ServiceName:    c.ServiceName,
		ServiceVersion: c.ServiceVersion,
		Environment:    c.Environment,
		OTLPEndpoint:   c.OTLPEndpoint,
		Insecure:       c.Insecure,
		Headers:        c.Headers,
		SampleRatio:    c.SampleRatio,
	}
}

func fromInternalConfig(cfg internaltracing.TracingConfig) TracingConfig {
	return TracingConfig{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Insecure:       cfg.Insecure,
		Headers:        cfg.Headers,
		SampleRatio:    cfg.SampleRatio,
	}
}
