package config

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 100

	defaultComputeWorkers = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.rate_limit.requests_per_second": defaultRateLimitRPS,
		"server.rate_limit.burst_size":          defaultRateLimitBurst,

		"log.level":  "info",
		"log.format": "json",

		"forms.files":                           []string{"configs/forms/*.yaml"},
		"forms.compute_workers":                 defaultComputeWorkers,
		"forms.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"forms.circuit_breaker.timeout":         "30s",
		"forms.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "formflow",
	}
}
