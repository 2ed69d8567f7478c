package nbastats

import (
	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

func mapPlayerStats(p playerStatsResponse) players.AdvancedStats {
	return players.AdvancedStats{
		PlayerID:        p.ID,
		PlayerName:      p.Name,
		Points:          p.Pts,
		FieldGoalAtt:    p.Fga,
		FieldGoalPct:    p.FgPct,
		ThreePointAtt:   p.Fg3a,
		ThreePointPct:   p.Fg3Pct,
		Assists:         p.Ast,
		Turnovers:       p.Tov,
		AssistPct:       p.AstPct,
		UsagePct:        p.UsgPct,
		Rebounds:        p.Reb,
		OffRebounds:     p.Oreb,
		OffReboundPct:   p.OrebPct,
		Blocks:          p.Blk,
		Steals:          p.Stl,
		DefFieldGoalPct: p.DfgPct,
		Deflections:     p.Deflections,
		PER:             p.Per,
		NetRating:       p.NetRating,
		Minutes:         p.Min,
		Position:        p.Position,
	}
}

func mapTeamStats(t teamStatsResponse) teams.Stats {
	return teams.Stats{
		TeamID:          t.ID,
		TeamName:        t.Name,
		ThreePointRank:  clampRank(t.Fg3PctRank),
		ReboundRank:     clampRank(t.RebRank),
		AssistRank:      clampRank(t.AstRank),
		PaceRank:        clampRank(t.PaceRank),
		DefRatingRank:   clampRank(t.DefRatingRank),
		OffRatingRank:   clampRank(t.OffRatingRank),
		Pace:            t.Pace,
		ThreePointPct:   t.Fg3Pct,
		BallDominantCnt: t.BallDominantCount,
	}
}

// clampRank bounds upstream ranks to the league's 1..30 range; an absent rank
// defaults to mid-pack so it never registers as a weakness.
func clampRank(rank int) int {
	if rank < 1 {
		return 15
	}
	if rank > 30 {
		return 30
	}
	return rank
}

func mapSearchRow(r playerSearchRow) players.SearchResult {
	return players.SearchResult{
		ID:       r.ID,
		FullName: r.FullName,
		Position: r.Position,
		IsActive: r.IsActive,
	}
}

func mapTeamRow(r teamRow) teams.Team {
	return teams.Team{
		ID:           r.ID,
		FullName:     r.FullName,
		Abbreviation: r.Abbreviation,
		City:         r.City,
		Conference:   r.Conference,
		Division:     r.Division,
	}
}
