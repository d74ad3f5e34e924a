package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	internaltracing "github.com/wehubfusion/jsj/internal/tracing"
)

// RequestIDHeader carries a per-request uuid.
const RequestIDHeader = "X-Request-Id"

// Params are passed through to the GET request unchanged. Query values are
// added to any query already present in the URL.
type Params struct {
	Query  url.Values
	Header http.Header
}

// Client issues GET requests and wraps the responses. It adds no retries and
// translates no errors; whatever the underlying http.Client returns is what
// the caller sees.
//
// Example usage:
//
//	c := fetch.NewClient(fetch.WithLogger(logger))
//	resp, err := c.Fetch(ctx, "https://api.weather.gov/points/39.7632,-101.6483", nil)
//	if err != nil {
//	    return err
//	}
//	data, err := resp.JSONMap()
type Client struct {
	http      *http.Client
	config    Config
	logger    *zap.Logger
	tracer    trace.Tracer
	shutdowns []func(context.Context) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Config.Timeout is then ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets the tracer used for fetch spans. The default comes from the
// global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithConfig applies cfg.
func WithConfig(cfg Config) Option {
	return func(c *Client) { c.config = cfg }
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		config: DefaultConfig(),
		logger: zap.NewNop(),
		tracer: otel.Tracer("jsj/fetch"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.config.Timeout}
	}
	return c
}

// NewClientFromEnv builds a Client from LoadConfig, including its logger and,
// when JSJ_TRACING_ENDPOINT is set, an OTLP tracer provider. Close releases
// the tracer provider.
func NewClientFromEnv(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := LoadConfig()
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	var shutdowns []func(context.Context) error
	if tc := cfg.Tracing(); tc != nil {
		shutdown, err := SetupTracing(ctx, *tc, logger)
		if err != nil {
			logger.Warn("Failed to setup tracing, continuing without tracing", zap.Error(err))
		} else {
			shutdowns = append(shutdowns, shutdown)
		}
	}

	c := NewClient(append([]Option{WithConfig(cfg), WithLogger(logger)}, opts...)...)
	c.shutdowns = shutdowns

	logger.Debug("Client configured", zap.Stringer("config", cfg))
	return c, nil
}

// Close shuts down anything NewClientFromEnv started and flushes the logger.
func (c *Client) Close() error {
	var firstErr error
	for _, shutdown := range c.shutdowns {
		if err := internaltracing.ShutdownTracing(shutdown, c.logger); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.shutdowns = nil
	_ = c.logger.Sync()
	return firstErr
}

// Fetch issues a GET to rawURL and reads the whole body. Non-2xx statuses are
// not errors; inspect Response.StatusCode.
func (c *Client) Fetch(ctx context.Context, rawURL string, params *Params) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "jsj.fetch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := c.newRequest(ctx, rawURL, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	requestID := req.Header.Get(RequestIDHeader)
	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.full", req.URL.Redacted()),
		attribute.String("jsj.request_id", requestID),
	)

	c.logger.Debug("Fetching",
		zap.String("url", req.URL.Redacted()),
		zap.String("request_id", requestID))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Fetch failed",
			zap.String("url", req.URL.Redacted()),
			zap.String("request_id", requestID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body",
			zap.String("url", req.URL.Redacted()),
			zap.String("request_id", requestID),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, resp.Status)
	}

	c.logger.Info("Fetched",
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID))

	return newResponse(resp, body, requestID), nil
}

func (c *Client) newRequest(ctx context.Context, rawURL string, params *Params) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	if params != nil {
		if len(params.Query) > 0 {
			q := req.URL.Query()
			for key, values := range params.Query {
				for _, v := range values {
					q.Add(key, v)
				}
			}
			req.URL.RawQuery = q.Encode()
		}
		for key, values := range params.Header {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}

	if req.Header.Get("User-Agent") == "" && c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req, nil
}
