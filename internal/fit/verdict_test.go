package fit

import (
	"strings"
	"testing"

	domainfit "nba-fit-service/internal/domain/fit"
	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

func TestCalculateVerdictSniperMeetsShootingNeed(t *testing.T) {
	player := AnalyzePlayer(players.AdvancedStats{
		PlayerID:      1,
		PlayerName:    "Shooter",
		ThreePointAtt: 8.0,
		ThreePointPct: 0.42,
		Position:      "SG",
	})
	needs := AnalyzeTeamNeeds(teams.Stats{ThreePointRank: 25, ReboundRank: 15, AssistRank: 15, PaceRank: 15, DefRatingRank: 15, OffRatingRank: 15})
	friction := domainfit.FrictionResult{}

	score, label, reasons := CalculateVerdict(player, needs, friction)

	if score < 90 {
		t.Fatalf("expected score >= 90, got %d", score)
	}
	if label != domainfit.LabelPerfectFit {
		t.Fatalf("expected Perfect Fit, got %s", label)
	}
	foundShooting := false
	for _, r := range reasons {
		if strings.Contains(strings.ToLower(r), "shooting") {
			foundShooting = true
		}
	}
	if !foundShooting {
		t.Fatalf("expected a shooting reason, got %v", reasons)
	}
}

func TestCalculateVerdictNeutralPlayerKeepsBase(t *testing.T) {
	score, label, reasons := CalculateVerdict(players.Analysis{}, teams.Needs{}, domainfit.FrictionResult{})

	if score != 75 {
		t.Fatalf("expected base score 75, got %d", score)
	}
	if label != domainfit.LabelRotation {
		t.Fatalf("expected Rotation Player at 75, got %s", label)
	}
	if len(reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", reasons)
	}
}

func TestCalculateVerdictFrictionPenaltyAndReason(t *testing.T) {
	friction := domainfit.FrictionResult{TotalPenalty: 30}

	score, label, reasons := CalculateVerdict(players.Analysis{}, teams.Needs{}, friction)

	if score != 45 {
		t.Fatalf("expected 75-30=45, got %d", score)
	}
	if label != domainfit.LabelSituational {
		t.Fatalf("expected Situational, got %s", label)
	}
	if len(reasons) != 1 || !strings.Contains(reasons[0], "-30") {
		t.Fatalf("expected penalty reason with exact amount, got %v", reasons)
	}
}

func TestCalculateVerdictUnmatchedNeedsGrantNoBonus(t *testing.T) {
	// Scoring and rebounding have no bonus rule even when the player is a
	// qualified hustle archetype.
	player := AnalyzePlayer(players.AdvancedStats{Rebounds: 11.0})
	needs := AnalyzeTeamNeeds(teams.Stats{ThreePointRank: 15, ReboundRank: 25, AssistRank: 15, PaceRank: 15, DefRatingRank: 15, OffRatingRank: 25})

	score, _, reasons := CalculateVerdict(player, needs, domainfit.FrictionResult{})

	if score != 75 {
		t.Fatalf("expected no bonuses, got score %d", score)
	}
	if len(reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", reasons)
	}
}

func TestCalculateVerdictRimProtectionAndPlaymakingBonuses(t *testing.T) {
	player := AnalyzePlayer(players.AdvancedStats{Blocks: 2.0, Assists: 8.0, Position: "C"})
	needs := AnalyzeTeamNeeds(teams.Stats{ThreePointRank: 15, ReboundRank: 15, AssistRank: 25, PaceRank: 15, DefRatingRank: 25, OffRatingRank: 15})

	score, label, reasons := CalculateVerdict(player, needs, domainfit.FrictionResult{})

	// Playmaking +15, rim protection +15; perimeter defense has no rule.
	if score != 100 {
		t.Fatalf("expected 75+15+15 clamped to 100, got %d", score)
	}
	if label != domainfit.LabelPerfectFit {
		t.Fatalf("expected Perfect Fit, got %s", label)
	}
	if len(reasons) != 2 {
		t.Fatalf("expected two bonus reasons, got %v", reasons)
	}
}

func TestCalculateVerdictClampsToZero(t *testing.T) {
	friction := domainfit.FrictionResult{TotalPenalty: 200}

	score, label, _ := CalculateVerdict(players.Analysis{}, teams.Needs{}, friction)

	if score != 0 {
		t.Fatalf("expected clamp to 0, got %d", score)
	}
	if label != domainfit.LabelBadFit {
		t.Fatalf("expected Bad Fit, got %s", label)
	}
}

func TestLabelForScoreThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  domainfit.Label
	}{
		{100, domainfit.LabelPerfectFit},
		{90, domainfit.LabelPerfectFit},
		{89, domainfit.LabelStarter},
		{80, domainfit.LabelStarter},
		{79, domainfit.LabelRotation},
		{60, domainfit.LabelRotation},
		{59, domainfit.LabelSituational},
		{40, domainfit.LabelSituational},
		{39, domainfit.LabelBadFit},
		{0, domainfit.LabelBadFit},
	}
	for _, tc := range cases {
		if got := labelForScore(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestPipelineIsDeterministic(t *testing.T) {
	stats := players.AdvancedStats{ThreePointAtt: 6, ThreePointPct: 0.38, Assists: 5, UsagePct: 0.26, Position: "SG"}
	team := teams.Stats{ThreePointRank: 22, ReboundRank: 21, AssistRank: 23, PaceRank: 4, DefRatingRank: 24, OffRatingRank: 26, BallDominantCnt: 1}

	run := func() (int, domainfit.Label) {
		p := AnalyzePlayer(stats)
		n := AnalyzeTeamNeeds(team)
		f := AnalyzeFriction(p, team)
		score, label, _ := CalculateVerdict(p, n, f)
		return score, label
	}

	s1, l1 := run()
	s2, l2 := run()
	if s1 != s2 || l1 != l2 {
		t.Fatalf("pipeline not deterministic: (%d,%s) vs (%d,%s)", s1, l1, s2, l2)
	}
}
