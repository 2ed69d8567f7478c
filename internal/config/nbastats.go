package config

const (
	envNBAStatsBaseURL = "NBASTATS_BASE_URL"
	envNBAStatsAPIKey  = "NBASTATS_API_KEY"
	envNBAStatsSeason  = "NBASTATS_SEASON"

	defaultNBAStatsBaseURL = "https://api.nbastats.io/v1"
	defaultNBAStatsSeason  = "2025-26"
)

// NBAStatsConfig controls how we talk to the nbastats API.
type NBAStatsConfig struct {
	BaseURL string
	APIKey  string
	Season  string
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL: envOrDefault(envNBAStatsBaseURL, defaultNBAStatsBaseURL),
		APIKey:  envOrDefault(envNBAStatsAPIKey, ""),
		Season:  envOrDefault(envNBAStatsSeason, defaultNBAStatsSeason),
	}
}
