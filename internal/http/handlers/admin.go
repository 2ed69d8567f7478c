package handlers

import (
	"log/slog"
	"net/http"

	appteams "nba-fit-service/internal/app/teams"
	"nba-fit-service/internal/http/requestutil"
	"nba-fit-service/internal/logging"
)

// AdminHandler exposes admin-only endpoints (e.g., team directory refresh).
type AdminHandler struct {
	teams  *appteams.Service
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(teams *appteams.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		teams:  teams,
		token:  token,
		logger: logger,
	}
}

// RefreshTeams re-fetches the team directory from the provider on demand.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshTeams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.teams == nil {
		writeError(w, r, http.StatusServiceUnavailable, "team service not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	list, err := h.teams.Refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin directory refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to refresh team directory", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"teams":  len(list),
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin directory refreshed", slog.Int(logging.FieldCount, len(list)))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
