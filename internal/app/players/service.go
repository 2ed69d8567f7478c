package players

import (
	"context"
	"fmt"

	"nba-fit-service/internal/domain/players"
)

// maxResults caps how many directory rows one search returns.
const maxResults = 10

// Searcher is the slice of the provider surface the player service needs.
type Searcher interface {
	SearchPlayers(ctx context.Context, name string) ([]players.SearchResult, error)
}

// Service serves player directory lookups.
type Service struct {
	searcher Searcher
}

// NewService constructs a Service backed by the given directory source.
func NewService(searcher Searcher) *Service {
	return &Service{searcher: searcher}
}

// Search finds players whose names match the query. Results are capped and
// position codes are expanded to their long form for display.
func (s *Service) Search(ctx context.Context, query string) ([]players.SearchResult, error) {
	results, err := s.searcher.SearchPlayers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search players %q: %w", query, err)
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	for i, r := range results {
		if long, ok := players.PositionNames[r.Position]; ok {
			results[i].Position = long
		}
	}
	return results, nil
}
