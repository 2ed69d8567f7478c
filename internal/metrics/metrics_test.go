package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nbastats", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("nbastats", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("nbastats"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("nbastats"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("nbastats"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("nbastats")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("nbastats", 5*time.Second)
	rec.RecordRateLimit("nbastats", 0)

	if got := rec.RateLimitHits("nbastats"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("nbastats"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksSimulationsByLabel(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSimulation("Perfect Fit", 4*time.Millisecond, nil)
	rec.RecordSimulation("Perfect Fit", 6*time.Millisecond, nil)
	rec.RecordSimulation("Bad Fit", 3*time.Millisecond, errors.New("boom"))

	if got := rec.SimulationCount("Perfect Fit"); got != 2 {
		t.Fatalf("expected 2 perfect fit simulations, got %d", got)
	}
	if got := rec.SimulationCount("Bad Fit"); got != 1 {
		t.Fatalf("expected 1 bad fit simulation, got %d", got)
	}
	if got := rec.SimulationCount("Starter"); got != 0 {
		t.Fatalf("expected no starter simulations, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("nbastats", time.Millisecond, nil)
	rec.RecordRateLimit("nbastats", time.Second)
	rec.RecordSimulation("Starter", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)

	if got := rec.ProviderCalls("nbastats"); got != 0 {
		t.Fatalf("expected zero calls from nil recorder, got %d", got)
	}
}
