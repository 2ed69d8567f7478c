package players

// Archetype is a qualitative play-style tag derived from statistical thresholds.
type Archetype string

const (
	ArchetypeSniper       Archetype = "Sniper"
	ArchetypeBallDominant Archetype = "Ball Dominant"
	ArchetypeRimProtector Archetype = "Rim Protector"
	ArchetypePlaymaker    Archetype = "Playmaker"
	ArchetypeHustle       Archetype = "Hustle"
	ArchetypeThreeAndD    Archetype = "3&D"
	ArchetypeStretchBig   Archetype = "Stretch Big"
	ArchetypeTwoWay       Archetype = "Two-Way Player"
)

// Archetypes lists every known archetype in a stable order.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeSniper,
		ArchetypeBallDominant,
		ArchetypeRimProtector,
		ArchetypePlaymaker,
		ArchetypeHustle,
		ArchetypeThreeAndD,
		ArchetypeStretchBig,
		ArchetypeTwoWay,
	}
}

// AdvancedStats holds per-game statistics for one player as reported by the
// upstream stats source. Optional upstream fields are zero when absent; the
// classifier treats zero as "does not qualify".
type AdvancedStats struct {
	PlayerID        int     `json:"player_id"`
	PlayerName      string  `json:"player_name"`
	Points          float64 `json:"pts"`
	FieldGoalAtt    float64 `json:"fga"`
	FieldGoalPct    float64 `json:"fg_pct"`
	ThreePointAtt   float64 `json:"fg3a"`
	ThreePointPct   float64 `json:"fg3_pct"`
	Assists         float64 `json:"ast"`
	Turnovers       float64 `json:"tov"`
	AssistPct       float64 `json:"ast_pct,omitempty"`
	UsagePct        float64 `json:"usg_pct,omitempty"`
	Rebounds        float64 `json:"reb"`
	OffRebounds     float64 `json:"oreb"`
	OffReboundPct   float64 `json:"oreb_pct,omitempty"`
	Blocks          float64 `json:"blk"`
	Steals          float64 `json:"stl"`
	DefFieldGoalPct float64 `json:"dfg_pct,omitempty"`
	Deflections     float64 `json:"deflections,omitempty"`
	PER             float64 `json:"per,omitempty"`
	NetRating       float64 `json:"net_rating,omitempty"`
	Minutes         float64 `json:"min"`
	Position        string  `json:"position"`
}

// AssistToTurnoverRatio derives assists per turnover. When turnovers are zero
// or unreported the raw assist number is returned instead.
func (s AdvancedStats) AssistToTurnoverRatio() float64 {
	if s.Turnovers > 0 {
		return s.Assists / s.Turnovers
	}
	if s.Assists > 0 {
		return s.Assists
	}
	return 0
}

// Analysis is the classifier's verdict on one player. Built once per
// simulation and never mutated afterwards.
type Analysis struct {
	PlayerID          int               `json:"player_id"`
	PlayerName        string            `json:"player_name"`
	Position          string            `json:"position"`
	Stats             AdvancedStats     `json:"stats"`
	Archetypes        []Archetype       `json:"archetypes"`
	ArchetypeScores   map[Archetype]int `json:"archetype_scores"`
	IsBallDominant    bool              `json:"is_ball_dominant"`
	IsEliteShooter    bool              `json:"is_elite_shooter"`
	IsDefensiveAnchor bool              `json:"is_defensive_anchor"`
	PER               float64           `json:"per,omitempty"`
	EstimatedMinutes  float64           `json:"estimated_minutes"`
}

// HasArchetype reports whether the archetype made the qualifying set.
func (a Analysis) HasArchetype(arch Archetype) bool {
	for _, got := range a.Archetypes {
		if got == arch {
			return true
		}
	}
	return false
}

// SearchResult is one row of the upstream player directory.
type SearchResult struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position,omitempty"`
	IsActive bool   `json:"is_active"`
}

// PositionNames maps short position codes to their long form for display.
var PositionNames = map[string]string{
	"PG": "Point Guard",
	"SG": "Shooting Guard",
	"SF": "Small Forward",
	"PF": "Power Forward",
	"C":  "Center",
}
