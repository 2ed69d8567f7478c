package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	appplayers "nba-fit-service/internal/app/players"
	"nba-fit-service/internal/app/simulations"
	appteams "nba-fit-service/internal/app/teams"
	"nba-fit-service/internal/config"
	httpserver "nba-fit-service/internal/http"
	"nba-fit-service/internal/http/handlers"
	"nba-fit-service/internal/http/middleware"
	"nba-fit-service/internal/logging"
	"nba-fit-service/internal/metrics"
	"nba-fit-service/internal/poller"
	"nba-fit-service/internal/providers"
	"nba-fit-service/internal/store"
	"nba-fit-service/internal/store/migrations"
	"nba-fit-service/internal/store/postgres"
)

var metricsSetup = metrics.Setup

// directoryRefreshFloor spaces upstream directory fetches regardless of how
// aggressively the poller is configured.
const directoryRefreshFloor = time.Minute

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	simsService    *simulations.Service
	teamsService   *appteams.Service
	playersService *appplayers.Service
	httpServer     httpServer
	metricsServer  httpServer
	poller         Poller
	metricsStop    func(context.Context) error
	limitedDir     *providers.RateLimitedDirectory
	pgPool         *postgres.Pool
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore := store.NewMemoryStore(cfg.CacheTTL)
	cache, pgPool := buildCache(cfg, logger, memoryStore)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg, cache)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), cfg.MaxRetries, 0)
	}

	limitedDir := providers.NewRateLimitedDirectory(provider, directoryRefreshFloor, logger)

	simsSvc := simulations.NewService(provider, logger, recorder)
	playerSvc := appplayers.NewService(provider)
	teamSvc := appteams.NewService(memoryStore, provider)

	plr := poller.New(limitedDir, memoryStore, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, simsSvc, playerSvc, teamSvc, logger, recorder, plr)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		simsService:    simsSvc,
		teamsService:   teamSvc,
		playersService: playerSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		poller:         plr,
		metricsStop:    metricsShutdown,
		limitedDir:     limitedDir,
		pgPool:         pgPool,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

// buildCache selects the stats cache backend: Postgres when DATABASE_URL is
// configured and reachable, the in-memory store otherwise.
func buildCache(cfg config.Config, logger *slog.Logger, memoryStore *store.MemoryStore) (store.StatsCache, *postgres.Pool) {
	if cfg.DatabaseURL == "" {
		return memoryStore, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Warn(logger, "postgres cache unavailable, using in-memory cache", "error", err)
		return memoryStore, nil
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		logging.Warn(logger, "postgres migrations failed, using in-memory cache", "error", err)
		pool.Close()
		return memoryStore, nil
	}

	return postgres.NewStatsStore(pool, cfg.CacheTTL), pool
}

func buildHTTPServer(cfg config.Config, simsSvc *simulations.Service, playerSvc *appplayers.Service, teamSvc *appteams.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(simsSvc, playerSvc, teamSvc, logger, statusFn)
	router := httpserver.NewRouter(handler)

	// Optionally mount admin refresh endpoint if token is set.
	if cfg.AdminToken != "" {
		admin := handlers.NewAdminHandler(teamSvc, cfg.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/teams/refresh", admin.RefreshTeams)
		}
	}

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop the rate-limited directory ticker and release the DB pool.
	if s.limitedDir != nil {
		s.limitedDir.Close()
	}
	if s.pgPool != nil {
		s.pgPool.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
