package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	CacheTTL     Duration
	DatabaseURL  string
	AdminToken   string
	MaxRetries   int
	NBAStats     NBAStatsConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		CacheTTL:     durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		DatabaseURL:  envOrDefault(envDatabaseURL, ""),
		AdminToken:   envOrDefault(envAdminToken, ""),
		MaxRetries:   intEnvOrDefault(envMaxRetries, defaultMaxRetries),
		NBAStats:     loadNBAStats(),
		Metrics:      loadMetrics(),
	}
}
