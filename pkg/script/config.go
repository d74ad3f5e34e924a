package script

import "time"

// Security levels for the sandbox
const (
	SecurityLevelStrict     = "strict"
	SecurityLevelStandard   = "standard"
	SecurityLevelPermissive = "permissive"
)

// Config holds settings for compiling and running a callback
type Config struct {
	// SecurityLevel controls which globals are removed and whether builtins are frozen
	SecurityLevel string

	// Timeout interrupts a single Call that runs longer. Zero means no limit.
	Timeout time.Duration
}

// Option mutates Config.
type Option func(*Config)

// WithSecurityLevel sets the sandbox level.
func WithSecurityLevel(level string) Option {
	return func(c *Config) { c.SecurityLevel = level }
}

// WithTimeout bounds each Call.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// ApplyDefaults fills unset fields
func (c *Config) ApplyDefaults() {
	switch c.SecurityLevel {
	case SecurityLevelStrict, SecurityLevelStandard, SecurityLevelPermissive:
	default:
		c.SecurityLevel = SecurityLevelStandard
	}
	if c.Timeout < 0 {
		c.Timeout = 0
	}
}
