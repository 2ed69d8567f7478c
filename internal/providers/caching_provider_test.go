package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-fit-service/internal/domain/players"
	"nba-fit-service/internal/store"
)

func TestCachingProviderServesFromCacheOnSecondCall(t *testing.T) {
	inner := &scriptedProvider{player: players.AdvancedStats{PlayerID: 5, PlayerName: "Fresh"}}
	cache := store.NewMemoryStore(time.Minute)
	p := NewCachingProvider(inner, cache, nil)
	ctx := context.Background()

	first, err := p.PlayerAdvancedStats(ctx, 5)
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	second, err := p.PlayerAdvancedStats(ctx, 5)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	if inner.playerCalls != 1 {
		t.Fatalf("expected single upstream call, got %d", inner.playerCalls)
	}
	if first.PlayerName != second.PlayerName {
		t.Fatalf("cache changed the payload: %+v vs %+v", first, second)
	}
}

func TestCachingProviderPropagatesNotFound(t *testing.T) {
	inner := &scriptedProvider{teamErr: ErrNotFound}
	p := NewCachingProvider(inner, store.NewMemoryStore(time.Minute), nil)

	_, err := p.TeamStats(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCachingProviderNilCacheIsPassthrough(t *testing.T) {
	inner := &scriptedProvider{}
	if got := NewCachingProvider(inner, nil, nil); got != DataProvider(inner) {
		t.Fatalf("nil cache must return the inner provider")
	}
}
