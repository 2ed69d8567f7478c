package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envCacheTTL     = "CACHE_TTL"
	envDatabaseURL  = "DATABASE_URL"
	envAdminToken   = "ADMIN_TOKEN"
	envMaxRetries   = "PROVIDER_MAX_RETRIES"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Team rosters and league ranks move slowly; a long refresh keeps us well
	// under upstream quotas.
	defaultPollInterval = 15 * Duration(time.Minute)
	defaultProvider     = "nbastats"
	// Advanced stats are recomputed nightly upstream, so a short TTL buys
	// little. Fifteen minutes keeps repeat simulations cheap.
	defaultCacheTTL    = 15 * Duration(time.Minute)
	defaultMaxRetries  = 3
	defaultMetricsPort = "9090"
)
