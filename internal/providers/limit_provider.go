package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

// RateLimitedDirectory enforces a minimum interval between full directory
// fetches to protect the upstream quota. Only the bulk Teams listing is
// throttled; per-entity stats lookups are covered by the cache layer.
type RateLimitedDirectory struct {
	next     DirectoryProvider
	interval time.Duration
	ticker   *time.Ticker
	first    chan struct{}
	logger   *slog.Logger
}

// NewRateLimitedDirectory returns a DirectoryProvider whose Teams calls block
// until the interval elapses. The first call passes immediately so startup
// warming is not delayed.
func NewRateLimitedDirectory(next DirectoryProvider, interval time.Duration, logger *slog.Logger) *RateLimitedDirectory {
	if interval <= 0 {
		interval = time.Minute
	}
	first := make(chan struct{}, 1)
	first <- struct{}{}
	return &RateLimitedDirectory{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		first:    first,
		logger:   logger,
	}
}

func (p *RateLimitedDirectory) Teams(ctx context.Context) ([]teams.Team, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited directory fetch canceled")
		}
		return nil, ctx.Err()
	case <-p.first:
	case <-p.ticker.C:
	}
	return p.next.Teams(ctx)
}

func (p *RateLimitedDirectory) SearchPlayers(ctx context.Context, name string) ([]players.SearchResult, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return p.next.SearchPlayers(ctx, name)
}

// Close releases the ticker.
func (p *RateLimitedDirectory) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
