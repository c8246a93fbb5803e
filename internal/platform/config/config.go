// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers accepted by StoreConfig.Driver.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Store     StoreConfig     `koanf:"store"`
	Hub       HubConfig       `koanf:"hub"`
	Limits    LimitsConfig    `koanf:"limits"`
	Health    HealthConfig    `koanf:"health"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds each /api/v1 request. It must stay below
	// WriteTimeout or clients see a reset instead of a 504.
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects and tunes the persistence gateway.
type StoreConfig struct {
	Driver         string               `koanf:"driver"`
	Redis          RedisConfig          `koanf:"redis"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RedisConfig holds the Redis connection settings. Only read when the
// driver is "redis".
type RedisConfig struct {
	URL         string        `koanf:"url"`
	KeyPrefix   string        `koanf:"key_prefix"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// Applied to store reads only; conditional writes are never retried.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// HubConfig holds the real-time hub transport and group registry settings.
type HubConfig struct {
	Path              string        `koanf:"path"`
	SendBuffer        int           `koanf:"send_buffer"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	PongWait          time.Duration `koanf:"pong_wait"`
	MaxMessageBytes   int64         `koanf:"max_message_bytes"`
	MessagesPerWindow int           `koanf:"messages_per_window"`
	Window            time.Duration `koanf:"window"`
	BroadcastWorkers  int           `koanf:"broadcast_workers"`
	SweepInterval     time.Duration `koanf:"sweep_interval"`
	StaleThreshold    time.Duration `koanf:"stale_threshold"`
}

// LimitsConfig holds input ceilings enforced by the board service.
type LimitsConfig struct {
	MaxBulkOperations    int `koanf:"max_bulk_operations"`
	MaxTitleLength       int `koanf:"max_title_length"`
	MaxDescriptionLength int `koanf:"max_description_length"`
}

// HealthConfig holds readiness probe settings.
type HealthConfig struct {
	CheckTimeout time.Duration `koanf:"check_timeout"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
