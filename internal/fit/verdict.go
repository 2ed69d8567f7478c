package fit

import (
	"fmt"

	domainfit "nba-fit-service/internal/domain/fit"
	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

const baseScore = 75

// CalculateVerdict combines the three analyzer outputs into the final score,
// label, and explanation strings. Bonuses exist only for the shooting, rim
// protection, and playmaking needs; the remaining need types carry no bonus
// rule yet.
func CalculateVerdict(player players.Analysis, needs teams.Needs, friction domainfit.FrictionResult) (int, domainfit.Label, []string) {
	score := baseScore
	var reasons []string

	for _, need := range needs.Needs {
		switch need {
		case teams.NeedShooting:
			if player.HasArchetype(players.ArchetypeSniper) || player.HasArchetype(players.ArchetypeStretchBig) {
				score += 15
				reasons = append(reasons, "Addresses the team's critical shooting need.")
			}
		case teams.NeedRimProtection:
			if player.HasArchetype(players.ArchetypeRimProtector) {
				score += 15
				reasons = append(reasons, "Fills the rim protection gap.")
			}
		case teams.NeedPlaymaking:
			if player.HasArchetype(players.ArchetypePlaymaker) {
				score += 15
				reasons = append(reasons, "Brings the playmaking the offense lacks.")
			}
		}
	}

	score -= friction.TotalPenalty
	if friction.TotalPenalty > 0 {
		reasons = append(reasons, fmt.Sprintf("Friction penalty: -%d points.", friction.TotalPenalty))
	}

	score = clampScore(score)

	return score, labelForScore(score), reasons
}

func labelForScore(score int) domainfit.Label {
	switch {
	case score >= 90:
		return domainfit.LabelPerfectFit
	case score >= 80:
		return domainfit.LabelStarter
	case score >= 60:
		return domainfit.LabelRotation
	case score >= 40:
		return domainfit.LabelSituational
	}
	return domainfit.LabelBadFit
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
