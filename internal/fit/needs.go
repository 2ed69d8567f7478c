package fit

import (
	"sort"

	"nba-fit-service/internal/domain/teams"
)

// weakRank is the league rank past which a category counts as a weakness.
const weakRank = 20

// AnalyzeTeamNeeds derives a team's prioritized needs from its league ranks.
// A team with no weak categories yields empty needs and no alerts.
func AnalyzeTeamNeeds(stats teams.Stats) teams.Needs {
	var needs []teams.Need
	priority := make(map[teams.Need]int)
	var alerts []string

	add := func(need teams.Need, prio int) {
		needs = append(needs, need)
		priority[need] = prio
	}

	if stats.ThreePointRank > weakRank {
		add(teams.NeedShooting, 10)
		alerts = append(alerts, "Team is among the league's worst in three-point percentage.")
	} else if stats.ThreePointRank > 15 {
		add(teams.NeedShooting, 5)
	}

	if stats.ReboundRank > weakRank {
		add(teams.NeedRebounding, 8)
		alerts = append(alerts, "Team struggles to control the boards.")
	}

	if stats.AssistRank > weakRank {
		add(teams.NeedPlaymaking, 9)
		alerts = append(alerts, "Stagnant offense: not enough shot creation.")
	}

	if stats.DefRatingRank > weakRank {
		add(teams.NeedPerimeterDefense, 8)
		add(teams.NeedRimProtection, 8)
		alerts = append(alerts, "Porous defense: needs defensive specialists.")
	}

	if stats.OffRatingRank > weakRank {
		add(teams.NeedScoring, 10)
		alerts = append(alerts, "Inefficient offense: needs more scoring punch.")
	}

	// Highest priority first; ties keep rule evaluation order.
	sort.SliceStable(needs, func(i, j int) bool {
		return priority[needs[i]] > priority[needs[j]]
	})

	return teams.Needs{
		TeamID:      stats.TeamID,
		TeamName:    stats.TeamName,
		Needs:       needs,
		Priority:    priority,
		StyleAlerts: alerts,
		Stats:       stats,
	}
}
