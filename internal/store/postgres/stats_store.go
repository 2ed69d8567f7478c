package postgres

import (
	"context"
	"fmt"
	"time"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/store"
)

// StatsStore implements store.StatsCache on PostgreSQL. Entries older than the
// TTL are treated as misses; stale rows are overwritten on the next put.
type StatsStore struct {
	pool *Pool
	ttl  time.Duration
	now  func() time.Time
}

// NewStatsStore creates a StatsStore with the given freshness window.
func NewStatsStore(pool *Pool, ttl time.Duration) *StatsStore {
	return &StatsStore{pool: pool, ttl: ttl, now: time.Now}
}

// Compile-time interface check.
var _ store.StatsCache = (*StatsStore)(nil)

// PlayerStats retrieves a cached player row. Returns store.ErrNotFound on a
// miss or an expired entry.
func (s *StatsStore) PlayerStats(ctx context.Context, playerID int) (players.AdvancedStats, error) {
	query := `
		SELECT player_id, player_name, pts, fga, fg_pct, fg3a, fg3_pct,
			ast, tov, ast_pct, usg_pct, reb, oreb, oreb_pct,
			blk, stl, dfg_pct, deflections, per, net_rating, min, position
		FROM player_stats_cache
		WHERE player_id = $1 AND updated_at >= $2
	`

	var stats players.AdvancedStats
	err := s.pool.QueryRow(ctx, query, playerID, s.cutoff()).Scan(
		&stats.PlayerID,
		&stats.PlayerName,
		&stats.Points,
		&stats.FieldGoalAtt,
		&stats.FieldGoalPct,
		&stats.ThreePointAtt,
		&stats.ThreePointPct,
		&stats.Assists,
		&stats.Turnovers,
		&stats.AssistPct,
		&stats.UsagePct,
		&stats.Rebounds,
		&stats.OffRebounds,
		&stats.OffReboundPct,
		&stats.Blocks,
		&stats.Steals,
		&stats.DefFieldGoalPct,
		&stats.Deflections,
		&stats.PER,
		&stats.NetRating,
		&stats.Minutes,
		&stats.Position,
	)
	if err != nil {
		if isNotFoundError(err) {
			return players.AdvancedStats{}, store.ErrNotFound
		}
		return players.AdvancedStats{}, fmt.Errorf("get cached player stats: %w", err)
	}
	return stats, nil
}

// PutPlayerStats upserts one player row, refreshing its timestamp.
func (s *StatsStore) PutPlayerStats(ctx context.Context, stats players.AdvancedStats) error {
	query := `
		INSERT INTO player_stats_cache (
			player_id, player_name, pts, fga, fg_pct, fg3a, fg3_pct,
			ast, tov, ast_pct, usg_pct, reb, oreb, oreb_pct,
			blk, stl, dfg_pct, deflections, per, net_rating, min, position, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (player_id) DO UPDATE SET
			player_name = EXCLUDED.player_name,
			pts = EXCLUDED.pts,
			fga = EXCLUDED.fga,
			fg_pct = EXCLUDED.fg_pct,
			fg3a = EXCLUDED.fg3a,
			fg3_pct = EXCLUDED.fg3_pct,
			ast = EXCLUDED.ast,
			tov = EXCLUDED.tov,
			ast_pct = EXCLUDED.ast_pct,
			usg_pct = EXCLUDED.usg_pct,
			reb = EXCLUDED.reb,
			oreb = EXCLUDED.oreb,
			oreb_pct = EXCLUDED.oreb_pct,
			blk = EXCLUDED.blk,
			stl = EXCLUDED.stl,
			dfg_pct = EXCLUDED.dfg_pct,
			deflections = EXCLUDED.deflections,
			per = EXCLUDED.per,
			net_rating = EXCLUDED.net_rating,
			min = EXCLUDED.min,
			position = EXCLUDED.position,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.pool.Exec(ctx, query,
		stats.PlayerID,
		stats.PlayerName,
		stats.Points,
		stats.FieldGoalAtt,
		stats.FieldGoalPct,
		stats.ThreePointAtt,
		stats.ThreePointPct,
		stats.Assists,
		stats.Turnovers,
		stats.AssistPct,
		stats.UsagePct,
		stats.Rebounds,
		stats.OffRebounds,
		stats.OffReboundPct,
		stats.Blocks,
		stats.Steals,
		stats.DefFieldGoalPct,
		stats.Deflections,
		stats.PER,
		stats.NetRating,
		stats.Minutes,
		stats.Position,
		s.now(),
	)
	if err != nil {
		return fmt.Errorf("put cached player stats: %w", err)
	}
	return nil
}

// TeamStats retrieves a cached team row. Returns store.ErrNotFound on a miss
// or an expired entry.
func (s *StatsStore) TeamStats(ctx context.Context, teamID int) (teams.Stats, error) {
	query := `
		SELECT team_id, team_name, fg3_pct_rank, reb_rank, ast_rank,
			pace_rank, def_rating_rank, off_rating_rank,
			pace, fg3_pct, ball_dominant_count
		FROM team_stats_cache
		WHERE team_id = $1 AND updated_at >= $2
	`

	var stats teams.Stats
	err := s.pool.QueryRow(ctx, query, teamID, s.cutoff()).Scan(
		&stats.TeamID,
		&stats.TeamName,
		&stats.ThreePointRank,
		&stats.ReboundRank,
		&stats.AssistRank,
		&stats.PaceRank,
		&stats.DefRatingRank,
		&stats.OffRatingRank,
		&stats.Pace,
		&stats.ThreePointPct,
		&stats.BallDominantCnt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return teams.Stats{}, store.ErrNotFound
		}
		return teams.Stats{}, fmt.Errorf("get cached team stats: %w", err)
	}
	return stats, nil
}

// PutTeamStats upserts one team row, refreshing its timestamp.
func (s *StatsStore) PutTeamStats(ctx context.Context, stats teams.Stats) error {
	query := `
		INSERT INTO team_stats_cache (
			team_id, team_name, fg3_pct_rank, reb_rank, ast_rank,
			pace_rank, def_rating_rank, off_rating_rank,
			pace, fg3_pct, ball_dominant_count, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (team_id) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			fg3_pct_rank = EXCLUDED.fg3_pct_rank,
			reb_rank = EXCLUDED.reb_rank,
			ast_rank = EXCLUDED.ast_rank,
			pace_rank = EXCLUDED.pace_rank,
			def_rating_rank = EXCLUDED.def_rating_rank,
			off_rating_rank = EXCLUDED.off_rating_rank,
			pace = EXCLUDED.pace,
			fg3_pct = EXCLUDED.fg3_pct,
			ball_dominant_count = EXCLUDED.ball_dominant_count,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.pool.Exec(ctx, query,
		stats.TeamID,
		stats.TeamName,
		stats.ThreePointRank,
		stats.ReboundRank,
		stats.AssistRank,
		stats.PaceRank,
		stats.DefRatingRank,
		stats.OffRatingRank,
		stats.Pace,
		stats.ThreePointPct,
		stats.BallDominantCnt,
		s.now(),
	)
	if err != nil {
		return fmt.Errorf("put cached team stats: %w", err)
	}
	return nil
}

func (s *StatsStore) cutoff() time.Time {
	return s.now().Add(-s.ttl)
}
