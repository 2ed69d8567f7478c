// Package nbastats implements the upstream NBA statistics API client and maps
// its payloads to domain models.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/providers"
)

// Config controls how the nbastats client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Season     string
	HTTPClient *http.Client
}

// Client fetches player/team statistics and directory listings from the
// upstream API and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	season     string
	httpClient httpDoer
}

// NewClient constructs an nbastats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		season:     cfg.Season,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// PlayerAdvancedStats retrieves one player's per-game statistical row.
func (c *Client) PlayerAdvancedStats(ctx context.Context, playerID int) (players.AdvancedStats, error) {
	var payload playerStatsResponse
	path := fmt.Sprintf("/players/%d/advanced", playerID)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return players.AdvancedStats{}, err
	}
	return mapPlayerStats(payload), nil
}

// TeamStats retrieves one team's league-rank profile.
func (c *Client) TeamStats(ctx context.Context, teamID int) (teams.Stats, error) {
	var payload teamStatsResponse
	path := fmt.Sprintf("/teams/%d/profile", teamID)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return teams.Stats{}, err
	}
	return mapTeamStats(payload), nil
}

// SearchPlayers looks up players whose names contain the given fragment.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]players.SearchResult, error) {
	var payload playerSearchResponse
	query := url.Values{}
	query.Set("name", name)
	query.Set("per_page", strconv.Itoa(defaultSearchLimit))
	if err := c.getJSON(ctx, "/players/search", query, &payload); err != nil {
		return nil, err
	}

	results := make([]players.SearchResult, 0, len(payload.Data))
	for _, row := range payload.Data {
		results = append(results, mapSearchRow(row))
	}
	return results, nil
}

// Teams retrieves the full team directory.
func (c *Client) Teams(ctx context.Context) ([]teams.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, "/teams", nil, &payload); err != nil {
		return nil, err
	}

	list := make([]teams.Team, 0, len(payload.Data))
	for _, row := range payload.Data {
		list = append(list, mapTeamRow(row))
	}
	return list, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	if query == nil {
		query = url.Values{}
	}
	if c.season != "" {
		query.Set("season", c.season)
	}
	if encoded := query.Encode(); encoded != "" {
		req.URL.RawQuery = encoded
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return providers.ErrNotFound
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nbastats: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
