package http

import (
	nethttp "net/http"

	"nba-fit-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/simulate-fit", handler.SimulateFit)
	mux.HandleFunc("/players/search", handler.SearchPlayers)
	mux.HandleFunc("/teams", handler.Teams)
	return mux
}
