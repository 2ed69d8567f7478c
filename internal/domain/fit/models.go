package fit

import (
	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

// Label buckets a fit score into a discrete verdict.
type Label string

const (
	LabelFranchiseSavior Label = "Franchise Savior"
	LabelPerfectFit      Label = "Perfect Fit"
	LabelStarter         Label = "Starter"
	LabelSixthMan        Label = "6th Man"
	LabelRotation        Label = "Rotation Player"
	LabelSituational     Label = "Situational"
	LabelBadFit          Label = "Bad Fit"
	LabelRedundant       Label = "Redundant"
)

// Conflict severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Conflict types detected by the friction analyzer.
const (
	ConflictTooManyCooks = "Too Many Cooks"
	ConflictUsageClash   = "Usage Clash"
	ConflictPaceMismatch = "Pace Mismatch"
)

// Conflict describes one stylistic or rotational clash between an incoming
// player and the current roster.
type Conflict struct {
	Type            string   `json:"conflict_type"`
	Severity        string   `json:"severity"`
	AffectedPlayers []string `json:"affected_players"`
	PenaltyPoints   int      `json:"penalty_points"`
	Description     string   `json:"description"`
}

// FrictionResult aggregates all detected conflicts for one player/team pair.
type FrictionResult struct {
	TotalPenalty    int        `json:"total_penalty"`
	Conflicts       []Conflict `json:"conflicts"`
	SuggestedRole   string     `json:"suggested_role"`
	BlockingPlayers []string   `json:"blocking_players"`
}

// SimulationResult is the wire shape returned for one fit simulation. Field
// names are a stable contract with API consumers.
type SimulationResult struct {
	PlayerID           int               `json:"player_id"`
	PlayerName         string            `json:"player_name"`
	TeamID             int               `json:"team_id"`
	TeamName           string            `json:"team_name"`
	FitScore           int               `json:"fit_score"`
	FitLabel           Label             `json:"fit_label"`
	EstimatedMinutes   float64           `json:"estimated_minutes"`
	ProjectedRole      string            `json:"projected_role"`
	PlayerArchetypes   []string          `json:"player_archetypes"`
	TeamNeedsAddressed []string          `json:"team_needs_addressed"`
	Reasons            []string          `json:"reasons"`
	Warnings           []string          `json:"warnings"`
	Breakdown          map[string]int    `json:"breakdown"`
	PlayerAnalysis     *players.Analysis `json:"player_analysis,omitempty"`
	TeamNeeds          *teams.Needs      `json:"team_needs,omitempty"`
	FrictionResult     *FrictionResult   `json:"friction_result,omitempty"`
}
