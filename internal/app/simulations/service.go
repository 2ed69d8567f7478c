// Package simulations orchestrates a full trade-fit simulation: it fetches the
// player and team statistical profiles, runs them through the fit pipeline,
// and assembles the wire-level result.
package simulations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainfit "nba-fit-service/internal/domain/fit"
	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/fit"
	"nba-fit-service/internal/logging"
	"nba-fit-service/internal/metrics"
	"nba-fit-service/internal/providers"
)

const maxMinutes = 48

// Service runs fit simulations against a stats provider.
type Service struct {
	provider providers.StatsProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service with the provided stats source.
func NewService(provider providers.StatsProvider, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{provider: provider, logger: logger, metrics: rec}
}

// SimulateFit evaluates how the given player would fit the given team. A
// missing player or team produces a zero-score result rather than an error so
// callers can always render a verdict; provider faults are returned as-is.
func (s *Service) SimulateFit(ctx context.Context, playerID, teamID int) (domainfit.SimulationResult, error) {
	start := time.Now()

	type teamFetch struct {
		stats teams.Stats
		err   error
	}
	teamCh := make(chan teamFetch, 1)
	go func() {
		stats, err := s.provider.TeamStats(ctx, teamID)
		teamCh <- teamFetch{stats: stats, err: err}
	}()

	playerStats, playerErr := s.provider.PlayerAdvancedStats(ctx, playerID)
	team := <-teamCh

	if playerErr != nil {
		if errors.Is(playerErr, providers.ErrNotFound) {
			return s.notFoundResult(playerID, teamID, "", team.stats.TeamName, "Player data not found.", start), nil
		}
		return domainfit.SimulationResult{}, fmt.Errorf("fetch player %d: %w", playerID, playerErr)
	}
	if team.err != nil {
		if errors.Is(team.err, providers.ErrNotFound) {
			return s.notFoundResult(playerID, teamID, playerStats.PlayerName, "", "Team data not found.", start), nil
		}
		return domainfit.SimulationResult{}, fmt.Errorf("fetch team %d: %w", teamID, team.err)
	}

	analysis := fit.AnalyzePlayer(playerStats)
	needs := fit.AnalyzeTeamNeeds(team.stats)
	friction := fit.AnalyzeFriction(analysis, team.stats)
	score, label, reasons := fit.CalculateVerdict(analysis, needs, friction)

	result := domainfit.SimulationResult{
		PlayerID:           playerID,
		PlayerName:         analysis.PlayerName,
		TeamID:             teamID,
		TeamName:           team.stats.TeamName,
		FitScore:           score,
		FitLabel:           label,
		EstimatedMinutes:   clampMinutes(analysis.EstimatedMinutes),
		ProjectedRole:      friction.SuggestedRole,
		PlayerArchetypes:   archetypeStrings(analysis.Archetypes),
		TeamNeedsAddressed: needStrings(needs.Needs),
		Reasons:            reasons,
		Warnings:           conflictWarnings(friction.Conflicts),
		Breakdown: map[string]int{
			"archetype_match":  80,
			"need_match":       70,
			"friction_penalty": friction.TotalPenalty,
		},
		PlayerAnalysis: &analysis,
		TeamNeeds:      &needs,
		FrictionResult: &friction,
	}

	s.metrics.RecordSimulation(string(label), time.Since(start), nil)
	logging.Info(s.logger, "fit simulation complete",
		logging.FieldPlayerID, playerID,
		logging.FieldTeamID, teamID,
		logging.FieldFitLabel, string(label),
		"fit_score", score,
	)

	return result, nil
}

// notFoundResult keeps the response shape intact when one side of the
// simulation is missing upstream.
func (s *Service) notFoundResult(playerID, teamID int, playerName, teamName, reason string, start time.Time) domainfit.SimulationResult {
	if playerName == "" {
		playerName = "Unknown"
	}
	if teamName == "" {
		teamName = "Unknown"
	}

	result := domainfit.SimulationResult{
		PlayerID:           playerID,
		PlayerName:         playerName,
		TeamID:             teamID,
		TeamName:           teamName,
		FitScore:           0,
		FitLabel:           domainfit.LabelBadFit,
		ProjectedRole:      "Rotation",
		PlayerArchetypes:   []string{},
		TeamNeedsAddressed: []string{},
		Reasons:            []string{reason},
		Warnings:           []string{},
		Breakdown: map[string]int{
			"archetype_match":  0,
			"need_match":       0,
			"friction_penalty": 0,
		},
	}

	s.metrics.RecordSimulation(string(domainfit.LabelBadFit), time.Since(start), nil)
	logging.Warn(s.logger, "fit simulation missing data",
		logging.FieldPlayerID, playerID,
		logging.FieldTeamID, teamID,
		"reason", reason,
	)

	return result
}

func clampMinutes(m float64) float64 {
	if m < 0 {
		return 0
	}
	if m > maxMinutes {
		return maxMinutes
	}
	return m
}

func archetypeStrings(archetypes []players.Archetype) []string {
	out := make([]string, 0, len(archetypes))
	for _, a := range archetypes {
		out = append(out, string(a))
	}
	return out
}

func needStrings(needs []teams.Need) []string {
	out := make([]string, 0, len(needs))
	for _, n := range needs {
		out = append(out, string(n))
	}
	return out
}

func conflictWarnings(conflicts []domainfit.Conflict) []string {
	out := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, c.Description)
	}
	return out
}
