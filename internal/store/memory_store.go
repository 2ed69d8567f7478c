package store

import (
	"context"
	"sync"
	"time"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

const defaultTTL = 15 * time.Minute

type playerEntry struct {
	stats    players.AdvancedStats
	storedAt time.Time
}

type teamEntry struct {
	stats    teams.Stats
	storedAt time.Time
}

// MemoryStore keeps thread-safe TTL caches of stats lookups and the latest
// team directory snapshot in memory.
type MemoryStore struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	players   map[int]playerEntry
	teams     map[int]teamEntry
	directory []teams.Team
}

// NewMemoryStore constructs an empty MemoryStore. A non-positive ttl falls
// back to the default.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		players: make(map[int]playerEntry),
		teams:   make(map[int]teamEntry),
	}
}

// PlayerStats returns a cached player row if present and fresh.
func (s *MemoryStore) PlayerStats(_ context.Context, playerID int) (players.AdvancedStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.players[playerID]
	if !ok || s.expired(entry.storedAt) {
		return players.AdvancedStats{}, ErrNotFound
	}
	return entry.stats, nil
}

// PutPlayerStats stores a player row with the current timestamp.
func (s *MemoryStore) PutPlayerStats(_ context.Context, stats players.AdvancedStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players[stats.PlayerID] = playerEntry{stats: stats, storedAt: s.now()}
	return nil
}

// TeamStats returns a cached team row if present and fresh.
func (s *MemoryStore) TeamStats(_ context.Context, teamID int) (teams.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.teams[teamID]
	if !ok || s.expired(entry.storedAt) {
		return teams.Stats{}, ErrNotFound
	}
	return entry.stats, nil
}

// PutTeamStats stores a team row with the current timestamp.
func (s *MemoryStore) PutTeamStats(_ context.Context, stats teams.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams[stats.TeamID] = teamEntry{stats: stats, storedAt: s.now()}
	return nil
}

// Teams returns a copy of the current directory snapshot.
func (s *MemoryStore) Teams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, len(s.directory))
	copy(result, s.directory)
	return result
}

// SetTeams replaces the directory snapshot.
func (s *MemoryStore) SetTeams(list []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory = make([]teams.Team, len(list))
	copy(s.directory, list)
}

func (s *MemoryStore) expired(storedAt time.Time) bool {
	return s.now().Sub(storedAt) > s.ttl
}
