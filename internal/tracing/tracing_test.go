package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap/zaptest"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("jsj")
	assert.Equal(t, "jsj", cfg.ServiceName)
	assert.Equal(t, "127.0.0.1:4318", cfg.OTLPEndpoint)
	assert.True(t, cfg.Insecure)
	assert.Empty(t, cfg.Headers)
	assert.Equal(t, 1.0, cfg.SampleRatio)
}

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "authorization=Bearer abc", map[string]string{"authorization": "Bearer abc"}},
		{"several with spaces", " x-team = weather , x-env=prod", map[string]string{"x-team": "weather", "x-env": "prod"}},
		{"value keeps later equals", "sig=a=b", map[string]string{"sig": "a=b"}},
		{"malformed skipped", "novalue,=orphan,k=v", map[string]string{"k": "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHeaders(tt.in))
		})
	}
}

func TestExporterOptions(t *testing.T) {
	secure := TracingConfig{OTLPEndpoint: "collector.example.com:4318"}
	assert.Len(t, exporterOptions(secure), 1, "endpoint only")

	local := DefaultConfig("jsj")
	assert.Len(t, exporterOptions(local), 2, "endpoint and insecure")

	withAuth := secure
	withAuth.Headers = map[string]string{"authorization": "Bearer abc"}
	withAuth.Insecure = true
	assert.Len(t, exporterOptions(withAuth), 3, "endpoint, insecure and headers")
}

func TestHeaderNames(t *testing.T) {
	names := headerNames(map[string]string{"x-b": "secret", "x-a": "secret"})
	assert.Equal(t, []string{"x-a", "x-b"}, names)
}

func TestSetupAndShutdown(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	cfg := DefaultConfig("jsj-test")
	cfg.Headers = map[string]string{"authorization": "Bearer abc"}

	logger := zaptest.NewLogger(t)
	shutdown, err := SetupTracing(context.Background(), cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// No spans were started, so nothing is exported and shutdown does not dial.
	assert.NoError(t, ShutdownTracing(shutdown, logger))
}
