package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound reports that the upstream source has no row for the requested
// player or team. Callers recover from it; it never means the upstream is
// unhealthy.
var ErrNotFound = errors.New("provider: not found")

// ErrProviderUnavailable reports a provider that is not configured or wired.
var ErrProviderUnavailable = errors.New("provider: unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
