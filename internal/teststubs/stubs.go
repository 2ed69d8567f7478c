// Package teststubs provides shared test doubles for the provider interfaces.
package teststubs

import (
	"context"
	"sync/atomic"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/providers"
)

// StubDataProvider is a test double for providers.DataProvider. Absent map
// entries surface as providers.ErrNotFound; the Err fields force a fault.
type StubDataProvider struct {
	Players       map[int]players.AdvancedStats
	TeamStatsByID map[int]teams.Stats
	SearchResults []players.SearchResult
	TeamList      []teams.Team

	PlayerErr error
	TeamErr   error
	SearchErr error
	ListErr   error

	PlayerCalls atomic.Int32
	TeamCalls   atomic.Int32
	SearchCalls atomic.Int32
	ListCalls   atomic.Int32
}

var _ providers.DataProvider = (*StubDataProvider)(nil)

func (s *StubDataProvider) PlayerAdvancedStats(_ context.Context, playerID int) (players.AdvancedStats, error) {
	s.PlayerCalls.Add(1)
	if s.PlayerErr != nil {
		return players.AdvancedStats{}, s.PlayerErr
	}
	stats, ok := s.Players[playerID]
	if !ok {
		return players.AdvancedStats{}, providers.ErrNotFound
	}
	return stats, nil
}

func (s *StubDataProvider) TeamStats(_ context.Context, teamID int) (teams.Stats, error) {
	s.TeamCalls.Add(1)
	if s.TeamErr != nil {
		return teams.Stats{}, s.TeamErr
	}
	stats, ok := s.TeamStatsByID[teamID]
	if !ok {
		return teams.Stats{}, providers.ErrNotFound
	}
	return stats, nil
}

func (s *StubDataProvider) SearchPlayers(_ context.Context, _ string) ([]players.SearchResult, error) {
	s.SearchCalls.Add(1)
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	return s.SearchResults, nil
}

func (s *StubDataProvider) Teams(_ context.Context) ([]teams.Team, error) {
	s.ListCalls.Add(1)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.TeamList, nil
}
