package fetch

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	internaltracing "github.com/wehubfusion/jsj/internal/tracing"
)

// Version is reported in the default User-Agent.
const Version = "0.2.0"

// DefaultUserAgent is sent when neither the config nor the caller sets one.
const DefaultUserAgent = "jsj/" + Version

// ConfigSource indicates where the configuration came from
type ConfigSource string

const (
	ConfigSourceEnvVar  ConfigSource = "environment_variable"
	ConfigSourceDefault ConfigSource = "default"
)

// Config holds client settings.
type Config struct {
	// Timeout is handed to http.Client. Zero leaves the client without a limit.
	Timeout   time.Duration
	UserAgent string

	// LogLevel is a zap level name. Empty disables logging.
	LogLevel  string
	LogFormat string // "json" or "console"

	ServiceName        string
	TracingEndpoint    string // OTLP HTTP host:port. Empty disables exporting.
	TracingSampleRatio float64
	TracingInsecure    bool              // plain HTTP to the collector
	TracingHeaders     map[string]string // sent with every export

	Source ConfigSource
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		UserAgent:          DefaultUserAgent,
		LogFormat:          "json",
		ServiceName:        "jsj",
		TracingSampleRatio: 1.0,
		TracingInsecure:    true,
		Source:             ConfigSourceDefault,
	}
}

// LoadConfig loads configuration from JSJ_* environment variables on top of
// DefaultConfig. Unparseable values are ignored.
func LoadConfig() Config {
	config := DefaultConfig()
	fromEnv := false

	if timeout := getEnvDuration("JSJ_HTTP_TIMEOUT", 0); timeout > 0 {
		config.Timeout = timeout
		fromEnv = true
	}
	if ua := getEnv("JSJ_USER_AGENT", ""); ua != "" {
		config.UserAgent = ua
		fromEnv = true
	}
	if level := getEnv("JSJ_LOG_LEVEL", ""); level != "" {
		config.LogLevel = level
		fromEnv = true
	}
	if format := getEnv("JSJ_LOG_FORMAT", ""); format == "json" || format == "console" {
		config.LogFormat = format
		fromEnv = true
	}
	if name := getEnv("JSJ_SERVICE_NAME", ""); name != "" {
		config.ServiceName = name
		fromEnv = true
	}
	if endpoint := getEnv("JSJ_TRACING_ENDPOINT", ""); endpoint != "" {
		config.TracingEndpoint = endpoint
		fromEnv = true
	}
	if ratio := getEnvFloat("JSJ_TRACING_SAMPLE_RATIO", -1); ratio >= 0 && ratio <= 1 {
		config.TracingSampleRatio = ratio
		fromEnv = true
	}
	if insecure, ok := getEnvBool("JSJ_TRACING_INSECURE"); ok {
		config.TracingInsecure = insecure
		fromEnv = true
	}
	if headers := internaltracing.ParseHeaders(getEnv("JSJ_TRACING_HEADERS", "")); len(headers) > 0 {
		config.TracingHeaders = headers
		fromEnv = true
	}

	if fromEnv {
		config.Source = ConfigSourceEnvVar
	}
	return config
}

// NewLogger builds the zap logger described by the config. An empty LogLevel
// yields a no-op logger.
func (c Config) NewLogger() (*zap.Logger, error) {
	if c.LogLevel == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	var zc zap.Config
	if c.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// Tracing returns the tracing configuration, or nil when no endpoint is set.
func (c Config) Tracing() *TracingConfig {
	if c.TracingEndpoint == "" {
		return nil
	}
	tc := DefaultTracingConfig(c.ServiceName)
	tc.OTLPEndpoint = c.TracingEndpoint
	tc.SampleRatio = c.TracingSampleRatio
	tc.Insecure = c.TracingInsecure
	tc.Headers = c.TracingHeaders
	return &tc
}

// String returns a formatted string representation of the config
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Timeout: %s, UserAgent: %s, LogLevel: %s, TracingEndpoint: %s, Source: %s}",
		c.Timeout,
		c.UserAgent,
		c.LogLevel,
		c.TracingEndpoint,
		c.Source,
	)
}

// getEnv retrieves a string from environment variable with default fallback
func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvBool reports the parsed value and whether a valid one was set.
func getEnvBool(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	return b, true
}
