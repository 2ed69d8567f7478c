package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	appplayers "nba-fit-service/internal/app/players"
	"nba-fit-service/internal/app/simulations"
	appteams "nba-fit-service/internal/app/teams"
	"nba-fit-service/internal/logging"
	"nba-fit-service/internal/poller"
)

// minQueryLength guards the player search against over-broad scans.
const minQueryLength = 2

// Handler wires HTTP routes to the application services.
type Handler struct {
	sims     *simulations.Service
	players  *appplayers.Service
	teams    *appteams.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(sims *simulations.Service, players *appplayers.Service, teams *appteams.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		sims:     sims,
		players:  players,
		teams:    teams,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// SimulateFit runs one trade-fit simulation for ?player_id=&team_id=.
func (h *Handler) SimulateFit(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	playerID, ok := positiveIntParam(r, "player_id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "player_id must be a positive integer", h.logger)
		return
	}
	teamID, ok := positiveIntParam(r, "team_id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "team_id must be a positive integer", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	result, err := h.sims.SimulateFit(r.Context(), playerID, teamID)
	if err != nil {
		logging.Error(logger, "fit simulation failed", err)
		writeError(w, r, nethttp.StatusBadGateway, "upstream stats unavailable", logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, result, logger)
}

// SearchPlayers finds players by name for ?name=.
func (h *Handler) SearchPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("name"))
	if len(query) < minQueryLength {
		writeError(w, r, nethttp.StatusBadRequest, "name must be at least 2 characters", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	results, err := h.players.Search(r.Context(), query)
	if err != nil {
		logging.Error(logger, "player search failed", err)
		writeError(w, r, nethttp.StatusBadGateway, "upstream directory unavailable", logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"query":   query,
		"results": results,
		"count":   len(results),
	}, logger)
}

// Teams lists the team directory.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	logger := loggerFromContext(r, h.logger)
	list, err := h.teams.Teams(r.Context())
	if err != nil {
		logging.Error(logger, "team listing failed", err)
		writeError(w, r, nethttp.StatusBadGateway, "upstream directory unavailable", logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"teams": list,
		"count": len(list),
	}, logger)
}

func positiveIntParam(r *nethttp.Request, name string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return 0, false
	}
	return val, true
}
