package providers

import (
	"context"
	"errors"
	"log/slog"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/store"
)

// cachingProvider serves stats lookups from a cache and falls through to the
// inner provider on a miss. Cache failures are logged and never surfaced;
// the cache must not take down lookups.
type cachingProvider struct {
	inner  DataProvider
	cache  store.StatsCache
	logger *slog.Logger
}

// NewCachingProvider wraps the given provider with a stats cache. A nil cache
// returns the inner provider unchanged.
func NewCachingProvider(inner DataProvider, cache store.StatsCache, logger *slog.Logger) DataProvider {
	if cache == nil {
		return inner
	}
	return &cachingProvider{inner: inner, cache: cache, logger: logger}
}

func (c *cachingProvider) PlayerAdvancedStats(ctx context.Context, playerID int) (players.AdvancedStats, error) {
	cached, err := c.cache.PlayerStats(ctx, playerID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.logWarn("player cache read failed", "player_id", playerID, "err", err)
	}

	stats, err := c.inner.PlayerAdvancedStats(ctx, playerID)
	if err != nil {
		return players.AdvancedStats{}, err
	}
	if putErr := c.cache.PutPlayerStats(ctx, stats); putErr != nil {
		c.logWarn("player cache write failed", "player_id", playerID, "err", putErr)
	}
	return stats, nil
}

func (c *cachingProvider) TeamStats(ctx context.Context, teamID int) (teams.Stats, error) {
	cached, err := c.cache.TeamStats(ctx, teamID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.logWarn("team cache read failed", "team_id", teamID, "err", err)
	}

	stats, err := c.inner.TeamStats(ctx, teamID)
	if err != nil {
		return teams.Stats{}, err
	}
	if putErr := c.cache.PutTeamStats(ctx, stats); putErr != nil {
		c.logWarn("team cache write failed", "team_id", teamID, "err", putErr)
	}
	return stats, nil
}

// SearchPlayers is served live; search result freshness matters more than quota.
func (c *cachingProvider) SearchPlayers(ctx context.Context, name string) ([]players.SearchResult, error) {
	return c.inner.SearchPlayers(ctx, name)
}

// Teams is served live; the poller-maintained directory snapshot covers the
// cached path.
func (c *cachingProvider) Teams(ctx context.Context) ([]teams.Team, error) {
	return c.inner.Teams(ctx)
}

func (c *cachingProvider) logWarn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
