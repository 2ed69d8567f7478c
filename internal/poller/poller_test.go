package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/domain/teams"
)

type stubDirectoryProvider struct {
	mu     sync.Mutex
	teams  []teams.Team
	err    error
	calls  atomic.Int64
	notify chan struct{}
}

func (s *stubDirectoryProvider) SearchPlayers(context.Context, string) ([]players.SearchResult, error) {
	return nil, nil
}

func (s *stubDirectoryProvider) Teams(context.Context) ([]teams.Team, error) {
	s.calls.Add(1)
	if s.notify != nil {
		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teams, s.err
}

func (s *stubDirectoryProvider) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

type stubDirectory struct {
	mu    sync.Mutex
	teams []teams.Team
	sets  int
}

func (d *stubDirectory) Teams() []teams.Team {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.teams
}

func (d *stubDirectory) SetTeams(items []teams.Team) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.teams = items
	d.sets++
}

func (d *stubDirectory) setCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sets
}

func TestPollerWarmsDirectory(t *testing.T) {
	provider := &stubDirectoryProvider{
		teams:  []teams.Team{{ID: 1, FullName: "Riverton Pikes", Abbreviation: "RIV"}},
		notify: make(chan struct{}, 1),
	}
	directory := &stubDirectory{}

	p := New(provider, directory, nil, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	if directory.setCount() < 1 {
		t.Fatalf("expected directory warmed at least once")
	}
	got := directory.Teams()
	if len(got) != 1 || got[0].FullName != "Riverton Pikes" {
		t.Fatalf("unexpected directory contents: %v", got)
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	provider := &stubDirectoryProvider{notify: make(chan struct{}, 1)}
	p := New(provider, &stubDirectory{}, nil, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	cancel()
	_ = p.Stop(context.Background())

	callsAfterStop := provider.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if provider.calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional fetches after stop; before=%d after=%d", callsAfterStop, provider.calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&stubDirectoryProvider{}, &stubDirectory{}, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&stubDirectoryProvider{}, &stubDirectory{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&stubDirectoryProvider{}, &stubDirectory{}, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	provider := &stubDirectoryProvider{}
	provider.setErr(errors.New("boom"))

	p := New(provider, &stubDirectory{}, nil, nil, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.fetchOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if status.LastSuccess != (time.Time{}) {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	provider.setErr(nil)
	p.fetchOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if status.LastSuccess.IsZero() {
		t.Fatalf("expected success timestamp")
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestPollerLogsOnErrorAndSuccess(t *testing.T) {
	provider := &stubDirectoryProvider{}
	provider.setErr(errors.New("fail"))
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	p := New(provider, &stubDirectory{}, logger, nil, time.Second)
	p.fetchOnce(context.Background()) // should log error

	provider.setErr(nil)
	p.fetchOnce(context.Background()) // should log info
}
