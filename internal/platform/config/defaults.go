package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultHubSendBuffer        = 32
	defaultHubMaxMessageBytes   = 4096
	defaultHubMessagesPerWindow = 120
	defaultHubBroadcastWorkers  = 16

	defaultMaxBulkOperations    = 100
	defaultMaxTitleLength       = 200
	defaultMaxDescriptionLength = 10000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                defaultServerPort,
		"server.read_timeout":        "5s",
		"server.read_header_timeout": "2s",
		"server.write_timeout":       "10s",
		"server.idle_timeout":        "120s",
		"server.request_timeout":     "8s",
		"server.shutdown_timeout":    "15s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "boardsync",

		"store.driver":                          StoreMemory,
		"store.redis.url":                       "redis://localhost:6379/0",
		"store.redis.key_prefix":                "boardsync",
		"store.redis.dial_timeout":              "5s",
		"store.retry.max_attempts":              defaultRetryMaxAttempts,
		"store.retry.initial_interval":          "50ms",
		"store.retry.max_interval":              "1s",
		"store.retry.multiplier":                defaultRetryMultiplier,
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"hub.path":                "/hubs/board",
		"hub.send_buffer":         defaultHubSendBuffer,
		"hub.write_timeout":       "10s",
		"hub.pong_wait":           "60s",
		"hub.max_message_bytes":   defaultHubMaxMessageBytes,
		"hub.messages_per_window": defaultHubMessagesPerWindow,
		"hub.window":              "1m",
		"hub.broadcast_workers":   defaultHubBroadcastWorkers,
		"hub.sweep_interval":      "1m",
		"hub.stale_threshold":     "5m",

		"limits.max_bulk_operations":    defaultMaxBulkOperations,
		"limits.max_title_length":       defaultMaxTitleLength,
		"limits.max_description_length": defaultMaxDescriptionLength,

		"health.check_timeout": "2s",
	}
}
