// Package fit implements the fit-evaluation pipeline: the archetype
// classifier, team-needs analyzer, roster-friction analyzer, and the verdict
// calculator that combines their outputs. Every function here is pure; all
// state lives in the request.
package fit

import (
	"strings"

	"nba-fit-service/internal/domain/players"
)

// qualifyingScore is the confidence a player must reach for an archetype to
// enter the qualifying set.
const qualifyingScore = 80

// AnalyzePlayer scores a player against every archetype and returns the
// immutable analysis. Missing optional stats simply fail to qualify.
func AnalyzePlayer(stats players.AdvancedStats) players.Analysis {
	scores := make(map[players.Archetype]int, 8)
	var archetypes []players.Archetype

	record := func(arch players.Archetype, score int) {
		scores[arch] = score
		if score >= qualifyingScore {
			archetypes = append(archetypes, arch)
		}
	}

	sniper := sniperScore(stats)
	record(players.ArchetypeSniper, sniper)

	ballDominant := ballDominantScore(stats)
	record(players.ArchetypeBallDominant, ballDominant)

	record(players.ArchetypePlaymaker, playmakerScore(stats))

	rimProtector := rimProtectorScore(stats)
	record(players.ArchetypeRimProtector, rimProtector)

	record(players.ArchetypeHustle, hustleScore(stats))
	record(players.ArchetypeThreeAndD, threeAndDScore(stats))
	record(players.ArchetypeStretchBig, stretchBigScore(stats))
	scores[players.ArchetypeTwoWay] = 0

	return players.Analysis{
		PlayerID:          stats.PlayerID,
		PlayerName:        stats.PlayerName,
		Position:          stats.Position,
		Stats:             stats,
		Archetypes:        archetypes,
		ArchetypeScores:   scores,
		IsBallDominant:    ballDominant >= 80,
		IsEliteShooter:    sniper >= 90,
		IsDefensiveAnchor: rimProtector >= 90,
		PER:               stats.PER,
		EstimatedMinutes:  stats.Minutes,
	}
}

func sniperScore(s players.AdvancedStats) int {
	if s.ThreePointAtt < 5.0 {
		return 0
	}
	switch {
	case s.ThreePointPct >= 0.40:
		return 100
	case s.ThreePointPct >= 0.37:
		return 85
	case s.ThreePointPct >= 0.35:
		return 60
	}
	return 0
}

func ballDominantScore(s players.AdvancedStats) int {
	switch {
	case s.UsagePct >= 0.30:
		return 100
	case s.UsagePct >= 0.25:
		return 80
	case s.UsagePct >= 0.20:
		return 50
	}
	return 0
}

func playmakerScore(s players.AdvancedStats) int {
	score := 0
	switch {
	case s.Assists >= 8.0:
		score = 100
	case s.Assists >= 6.0:
		score = 85
	case s.Assists >= 4.0:
		score = 60
	}
	// A high assist share qualifies even on modest raw assist numbers.
	if s.AssistPct > 0.30 && score < 90 {
		score = 90
	}
	return score
}

func rimProtectorScore(s players.AdvancedStats) int {
	switch {
	case s.Blocks >= 2.0:
		return 100
	case s.Blocks >= 1.5:
		return 85
	case s.Blocks >= 1.0:
		return 60
	}
	return 0
}

func hustleScore(s players.AdvancedStats) int {
	switch {
	case s.Rebounds >= 10.0 || s.OffRebounds >= 3.0:
		return 100
	case s.Rebounds >= 8.0 || s.OffRebounds >= 2.0:
		return 85
	case s.Rebounds >= 6.0:
		return 60
	}
	return 0
}

func threeAndDScore(s players.AdvancedStats) int {
	goodShooter := s.ThreePointPct >= 0.36 && s.ThreePointAtt >= 3.0
	goodDefender := s.Steals >= 1.0 || s.Blocks >= 0.8

	switch {
	case goodShooter && goodDefender:
		return 90
	case goodShooter && (s.Steals >= 0.8 || s.Blocks >= 0.6):
		return 75
	}
	return 0
}

func stretchBigScore(s players.AdvancedStats) int {
	isBig := strings.Contains(s.Position, "C") || strings.Contains(s.Position, "F")
	if isBig && s.ThreePointPct >= 0.35 && s.ThreePointAtt >= 2.0 {
		return 90
	}
	return 0
}
