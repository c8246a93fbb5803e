package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Store.validate(),
		c.Hub.validate(),
		c.Limits.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 || (s.RequestTimeout > 0 && s.RequestTimeout >= s.WriteTimeout) {
		errs = append(errs, fmt.Errorf("server.request_timeout must be below server.write_timeout, got %s", s.RequestTimeout))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StoreConfig) validate() error {
	var errs []error

	switch st.Driver {
	case StoreMemory:
	case StoreRedis:
		if st.Redis.URL == "" {
			errs = append(errs, errors.New("store.redis.url must not be empty when driver is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: memory, redis; got %q", st.Driver))
	}
	if st.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("store.retry.max_attempts must be >= 1, got %d", st.Retry.MaxAttempts))
	}
	if st.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("store.retry.multiplier must be positive, got %f", st.Retry.Multiplier))
	}
	if st.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			st.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (h *HubConfig) validate() error {
	var errs []error

	if !strings.HasPrefix(h.Path, "/") || strings.HasPrefix(h.Path, "/api/") {
		errs = append(errs, fmt.Errorf("hub.path must be absolute and outside /api, got %q", h.Path))
	}
	if h.SendBuffer < 1 {
		errs = append(errs, fmt.Errorf("hub.send_buffer must be >= 1, got %d", h.SendBuffer))
	}
	if h.PongWait <= 0 {
		errs = append(errs, errors.New("hub.pong_wait must be positive"))
	}
	if h.MessagesPerWindow < 0 {
		errs = append(errs, fmt.Errorf("hub.messages_per_window must be >= 0, got %d", h.MessagesPerWindow))
	}
	if h.SweepInterval > 0 && h.StaleThreshold <= 0 {
		errs = append(errs, errors.New("hub.stale_threshold must be positive when sweeping is enabled"))
	}

	return errors.Join(errs...)
}

func (l *LimitsConfig) validate() error {
	if l.MaxBulkOperations < 1 {
		return fmt.Errorf("limits.max_bulk_operations must be >= 1, got %d", l.MaxBulkOperations)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
