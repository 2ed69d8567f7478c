package providers

import (
	"context"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

// StatsProvider fetches the per-player and per-team statistical rows the fit
// pipeline consumes. Lookups are idempotent reads; a missing entity is
// reported via ErrNotFound, anything else is an upstream fault.
type StatsProvider interface {
	PlayerAdvancedStats(ctx context.Context, playerID int) (players.AdvancedStats, error)
	TeamStats(ctx context.Context, teamID int) (teams.Stats, error)
}

// DirectoryProvider serves the player search and team listing surfaces.
type DirectoryProvider interface {
	SearchPlayers(ctx context.Context, name string) ([]players.SearchResult, error)
	Teams(ctx context.Context) ([]teams.Team, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	StatsProvider
	DirectoryProvider
}
