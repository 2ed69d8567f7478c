// Package fixture returns a static data set useful for local testing and
// bootstrapping without an upstream API key.
package fixture

import (
	"context"
	"strings"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/providers"
)

// Provider serves deterministic players and teams chosen to exercise every
// verdict path: an elite shooter, a usage-heavy star, a rim-protecting center,
// and a pass-first guard.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

var _ providers.DataProvider = (*Provider)(nil)

var fixturePlayers = []players.AdvancedStats{
	{
		PlayerID: 1, PlayerName: "Miles Archer", Position: "SG",
		Points: 19.8, FieldGoalAtt: 14.1, FieldGoalPct: 0.462,
		ThreePointAtt: 8.4, ThreePointPct: 0.413,
		Assists: 2.3, Turnovers: 1.1, Rebounds: 3.1, OffRebounds: 0.4,
		Blocks: 0.2, Steals: 0.8, UsagePct: 0.21, PER: 17.9, Minutes: 32.5,
	},
	{
		PlayerID: 2, PlayerName: "Dominic Cole", Position: "PG",
		Points: 27.4, FieldGoalAtt: 20.3, FieldGoalPct: 0.471,
		ThreePointAtt: 6.1, ThreePointPct: 0.348,
		Assists: 6.2, Turnovers: 3.4, Rebounds: 4.8, OffRebounds: 0.6,
		Blocks: 0.3, Steals: 1.1, UsagePct: 0.334, AssistPct: 0.29,
		PER: 24.6, Minutes: 36.1,
	},
	{
		PlayerID: 3, PlayerName: "Viktor Hale", Position: "C",
		Points: 12.6, FieldGoalAtt: 8.9, FieldGoalPct: 0.611,
		ThreePointAtt: 0.2, ThreePointPct: 0.0,
		Assists: 1.4, Turnovers: 1.5, Rebounds: 11.2, OffRebounds: 3.4,
		Blocks: 2.3, Steals: 0.6, UsagePct: 0.16, PER: 19.2, Minutes: 29.8,
	},
	{
		PlayerID: 4, PlayerName: "Theo Vance", Position: "PG",
		Points: 14.2, FieldGoalAtt: 11.0, FieldGoalPct: 0.448,
		ThreePointAtt: 3.8, ThreePointPct: 0.371,
		Assists: 8.9, Turnovers: 2.6, Rebounds: 3.9, OffRebounds: 0.3,
		Blocks: 0.1, Steals: 1.3, UsagePct: 0.19, AssistPct: 0.38,
		PER: 18.8, Minutes: 31.4,
	},
}

var fixtureTeamStats = []teams.Stats{
	{
		TeamID: 1, TeamName: "Boston Celtics",
		ThreePointRank: 3, ReboundRank: 8, AssistRank: 6,
		PaceRank: 11, DefRatingRank: 2, OffRatingRank: 1,
		Pace: 99.1, ThreePointPct: 0.387, BallDominantCnt: 1,
	},
	{
		TeamID: 2, TeamName: "Sacramento Kings",
		ThreePointRank: 24, ReboundRank: 22, AssistRank: 9,
		PaceRank: 2, DefRatingRank: 25, OffRatingRank: 12,
		Pace: 103.6, ThreePointPct: 0.341, BallDominantCnt: 2,
	},
	{
		TeamID: 3, TeamName: "Orlando Magic",
		ThreePointRank: 28, ReboundRank: 14, AssistRank: 26,
		PaceRank: 27, DefRatingRank: 4, OffRatingRank: 24,
		Pace: 96.2, ThreePointPct: 0.328, BallDominantCnt: 0,
	},
}

var fixtureTeams = []teams.Team{
	{ID: 1, FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic"},
	{ID: 2, FullName: "Sacramento Kings", Abbreviation: "SAC", City: "Sacramento", Conference: "West", Division: "Pacific"},
	{ID: 3, FullName: "Orlando Magic", Abbreviation: "ORL", City: "Orlando", Conference: "East", Division: "Southeast"},
}

// PlayerAdvancedStats returns the fixture player with the given ID.
func (p *Provider) PlayerAdvancedStats(_ context.Context, playerID int) (players.AdvancedStats, error) {
	for _, stats := range fixturePlayers {
		if stats.PlayerID == playerID {
			return stats, nil
		}
	}
	return players.AdvancedStats{}, providers.ErrNotFound
}

// TeamStats returns the fixture team profile with the given ID.
func (p *Provider) TeamStats(_ context.Context, teamID int) (teams.Stats, error) {
	for _, stats := range fixtureTeamStats {
		if stats.TeamID == teamID {
			return stats, nil
		}
	}
	return teams.Stats{}, providers.ErrNotFound
}

// SearchPlayers matches fixture players by case-insensitive substring.
func (p *Provider) SearchPlayers(_ context.Context, name string) ([]players.SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	var results []players.SearchResult
	for _, stats := range fixturePlayers {
		if needle == "" || strings.Contains(strings.ToLower(stats.PlayerName), needle) {
			results = append(results, players.SearchResult{
				ID:       stats.PlayerID,
				FullName: stats.PlayerName,
				Position: stats.Position,
				IsActive: true,
			})
		}
	}
	return results, nil
}

// Teams returns the fixture team directory.
func (p *Provider) Teams(_ context.Context) ([]teams.Team, error) {
	out := make([]teams.Team, len(fixtureTeams))
	copy(out, fixtureTeams)
	return out, nil
}
