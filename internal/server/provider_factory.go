package server

import (
	"fmt"
	"log/slog"
	"strings"

	"nba-fit-service/internal/config"
	"nba-fit-service/internal/metrics"
	"nba-fit-service/internal/providers"
	"nba-fit-service/internal/providers/fixture"
	"nba-fit-service/internal/providers/nbastats"
	"nba-fit-service/internal/store"
)

// providerFactory assembles the provider with shared wrappers (cache + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config, cache store.StatsCache) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	cached := providers.NewCachingProvider(base, cache, f.logger)
	return providers.NewRetryingProvider(cached, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.MaxRetries, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "nbastats", "":
		return nbastats.NewClient(nbastats.Config{
			BaseURL: cfg.NBAStats.BaseURL,
			APIKey:  cfg.NBAStats.APIKey,
			Season:  cfg.NBAStats.Season,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
