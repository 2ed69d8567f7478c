// Package store defines the lookup caches that sit between the fit pipeline
// and the upstream stats source, plus an in-memory implementation.
package store

import (
	"context"
	"errors"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

// ErrNotFound reports a cache miss or an expired entry.
var ErrNotFound = errors.New("store: not found")

// StatsCache caches upstream player and team statistical rows. Implementations
// decide their own freshness policy; expired entries surface as ErrNotFound.
type StatsCache interface {
	PlayerStats(ctx context.Context, playerID int) (players.AdvancedStats, error)
	PutPlayerStats(ctx context.Context, stats players.AdvancedStats) error
	TeamStats(ctx context.Context, teamID int) (teams.Stats, error)
	PutTeamStats(ctx context.Context, stats teams.Stats) error
}

// Directory holds the most recent team directory snapshot.
type Directory interface {
	Teams() []teams.Team
	SetTeams(list []teams.Team)
}
