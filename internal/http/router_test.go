package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	appplayers "nba-fit-service/internal/app/players"
	"nba-fit-service/internal/app/simulations"
	appteams "nba-fit-service/internal/app/teams"
	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/http/handlers"
	"nba-fit-service/internal/metrics"
	"nba-fit-service/internal/store"
	"nba-fit-service/internal/teststubs"
)

func newTestRouter() nethttp.Handler {
	provider := &teststubs.StubDataProvider{
		Players: map[int]players.AdvancedStats{
			101: {PlayerID: 101, PlayerName: "Ray Legend", Position: "SG", ThreePointAtt: 8.0, ThreePointPct: 0.42, Minutes: 33},
		},
		TeamStatsByID: map[int]teams.Stats{
			7: {TeamID: 7, TeamName: "Riverton Pikes", ThreePointRank: 27, ReboundRank: 12, AssistRank: 10, PaceRank: 18, DefRatingRank: 14, OffRatingRank: 11},
		},
		SearchResults: []players.SearchResult{{ID: 101, FullName: "Ray Legend"}},
		TeamList:      []teams.Team{{ID: 7, FullName: "Riverton Pikes"}},
	}
	sims := simulations.NewService(provider, nil, metrics.NewRecorder())
	playerSvc := appplayers.NewService(provider)
	teamSvc := appteams.NewService(store.NewMemoryStore(time.Minute), provider)
	handler := handlers.NewHandler(sims, playerSvc, teamSvc, nil, nil)
	return NewRouter(handler)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		target string
		status int
	}{
		{"/health", nethttp.StatusOK},
		{"/ready", nethttp.StatusOK},
		{"/simulate-fit?player_id=101&team_id=7", nethttp.StatusOK},
		{"/players/search?name=ray", nethttp.StatusOK},
		{"/teams", nethttp.StatusOK},
		{"/nope", nethttp.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, tc.target, nil))
		if rec.Code != tc.status {
			t.Fatalf("GET %s = %d, want %d", tc.target, rec.Code, tc.status)
		}
	}
}
