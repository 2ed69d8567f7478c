package fit

import (
	"strings"

	domainfit "nba-fit-service/internal/domain/fit"
	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

// fastPaceRank marks the cutoff for a team that plays at a running pace.
const fastPaceRank = 5

// AnalyzeFriction detects stylistic conflicts between an incoming player and
// the current roster and prices them in penalty points. Positional depth-chart
// redundancy is intentionally not checked; the roster composition inputs do
// not carry a depth chart.
func AnalyzeFriction(player players.Analysis, team teams.Stats) domainfit.FrictionResult {
	var conflicts []domainfit.Conflict
	totalPenalty := 0
	var blocking []string

	if player.IsBallDominant {
		switch {
		case team.BallDominantCnt >= 2:
			conflicts = append(conflicts, domainfit.Conflict{
				Type:          domainfit.ConflictTooManyCooks,
				Severity:      domainfit.SeverityHigh,
				PenaltyPoints: 30,
				Description:   "The roster already has multiple ball-dominant players. Adding another risks chemistry problems.",
			})
			totalPenalty += 30
			blocking = append(blocking, "Existing Stars")
		case team.BallDominantCnt == 1:
			conflicts = append(conflicts, domainfit.Conflict{
				Type:          domainfit.ConflictUsageClash,
				Severity:      domainfit.SeverityMedium,
				PenaltyPoints: 15,
				Description:   "Will compete for possessions with the current star.",
			})
			totalPenalty += 15
		}
	}

	// Classic centers without elite range are assumed to lack the mobility
	// for a top-five pace offense.
	isHeavyCenter := strings.Contains(player.Position, "C") && !player.IsEliteShooter
	if isHeavyCenter && team.PaceRank <= fastPaceRank {
		conflicts = append(conflicts, domainfit.Conflict{
			Type:          domainfit.ConflictPaceMismatch,
			Severity:      domainfit.SeverityMedium,
			PenaltyPoints: 20,
			Description:   "The team's pace is too fast for this player's style.",
		})
		totalPenalty += 20
	}

	return domainfit.FrictionResult{
		TotalPenalty:    totalPenalty,
		Conflicts:       conflicts,
		SuggestedRole:   suggestedRole(totalPenalty),
		BlockingPlayers: blocking,
	}
}

func suggestedRole(penalty int) string {
	switch {
	case penalty > 40:
		return "Bad Fit"
	case penalty > 20:
		return "Sixth Man / Rotation"
	case penalty > 0:
		return "Starter (with adjustments)"
	}
	return "Perfect Fit"
}
