package teams

// Need is a statistical weakness of a team, derived from its league rank in a
// category.
type Need string

const (
	NeedShooting         Need = "Shooting"
	NeedRebounding       Need = "Rebounding"
	NeedPlaymaking       Need = "Playmaking"
	NeedRimProtection    Need = "Rim Protection"
	NeedPerimeterDefense Need = "Perimeter Defense"
	NeedScoring          Need = "Scoring"
	NeedPaceFit          Need = "Pace Fit"
)

// Stats holds a team's league-rank profile. Ranks run 1 (best) to 30 (worst).
type Stats struct {
	TeamID          int     `json:"team_id"`
	TeamName        string  `json:"team_name"`
	ThreePointRank  int     `json:"fg3_pct_rank"`
	ReboundRank     int     `json:"reb_rank"`
	AssistRank      int     `json:"ast_rank"`
	PaceRank        int     `json:"pace_rank"`
	DefRatingRank   int     `json:"def_rating_rank"`
	OffRatingRank   int     `json:"off_rating_rank"`
	Pace            float64 `json:"pace"`
	ThreePointPct   float64 `json:"fg3_pct"`
	BallDominantCnt int     `json:"ball_dominant_count"`
}

// Needs is the gap analyzer's verdict on one team: triggered needs ordered by
// descending priority, plus the human-readable alerts that accompanied them.
type Needs struct {
	TeamID      int          `json:"team_id"`
	TeamName    string       `json:"team_name"`
	Needs       []Need       `json:"needs"`
	Priority    map[Need]int `json:"needs_priority"`
	StyleAlerts []string     `json:"style_alerts"`
	Stats       Stats        `json:"team_stats"`
}

// HasNeed reports whether the need was triggered.
func (n Needs) HasNeed(need Need) bool {
	for _, got := range n.Needs {
		if got == need {
			return true
		}
	}
	return false
}

// Team is one row of the upstream team directory.
type Team struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference,omitempty"`
	Division     string `json:"division,omitempty"`
}
