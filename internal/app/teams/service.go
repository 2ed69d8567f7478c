package teams

import (
	"context"
	"fmt"

	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/store"
)

// Lister is the slice of the provider surface the team service needs.
type Lister interface {
	Teams(ctx context.Context) ([]teams.Team, error)
}

// Service serves the team directory, preferring the warmed local copy and
// falling back to the provider when the directory is cold.
type Service struct {
	directory store.Directory
	lister    Lister
}

// NewService constructs a Service over the given directory and provider.
func NewService(directory store.Directory, lister Lister) *Service {
	return &Service{directory: directory, lister: lister}
}

// Teams returns the current team directory. On a cold directory it fetches
// from the provider and warms the store.
func (s *Service) Teams(ctx context.Context) ([]teams.Team, error) {
	if cached := s.directory.Teams(); len(cached) > 0 {
		return cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh re-fetches the directory from the provider and replaces the stored
// copy.
func (s *Service) Refresh(ctx context.Context) ([]teams.Team, error) {
	fetched, err := s.lister.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch team directory: %w", err)
	}
	s.directory.SetTeams(fetched)
	return fetched, nil
}
