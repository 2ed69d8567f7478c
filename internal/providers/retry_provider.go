package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
	"nba-fit-service/internal/logging"
	"nba-fit-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior and
// records attempt metrics. Not-found results are returned immediately;
// retrying cannot make a missing row appear.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) PlayerAdvancedStats(ctx context.Context, playerID int) (players.AdvancedStats, error) {
	return retry(ctx, r, "player stats", func() (players.AdvancedStats, error) {
		return r.inner.PlayerAdvancedStats(ctx, playerID)
	})
}

func (r *retryingProvider) TeamStats(ctx context.Context, teamID int) (teams.Stats, error) {
	return retry(ctx, r, "team stats", func() (teams.Stats, error) {
		return r.inner.TeamStats(ctx, teamID)
	})
}

func (r *retryingProvider) SearchPlayers(ctx context.Context, name string) ([]players.SearchResult, error) {
	return retry(ctx, r, "player search", func() ([]players.SearchResult, error) {
		return r.inner.SearchPlayers(ctx, name)
	})
}

func (r *retryingProvider) Teams(ctx context.Context) ([]teams.Team, error) {
	return retry(ctx, r, "team directory", func() ([]teams.Team, error) {
		return r.inner.Teams(ctx)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		result, err := fn()
		r.recordAttempt(time.Since(start), err)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrNotFound) {
			return zero, err
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.recordRateLimit(rl.RetryAfter)
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider call failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) recordAttempt(duration time.Duration, err error) {
	if r.metrics != nil {
		r.metrics.RecordProviderAttempt(r.name, duration, err)
	}
}

func (r *retryingProvider) recordRateLimit(retryAfter time.Duration) {
	if r.metrics != nil {
		r.metrics.RecordRateLimit(r.name, retryAfter)
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
