package destination

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rawal21/stayfinder/internal/hotelbeds"
	"github.com/rawal21/stayfinder/internal/storage/memory"
)

type fakeDirectory struct {
	dests []hotelbeds.Destination
	err   error
	calls int
}

func (f *fakeDirectory) Destinations(ctx context.Context) ([]hotelbeds.Destination, error) {
	f.calls++
	return f.dests, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolver_EmptyInput(t *testing.T) {
	dir := &fakeDirectory{}
	r := NewResolver(dir, memory.New(), testLogger())

	code, tier := r.Resolve(context.Background(), "   ")
	if code != DefaultCode || tier != TierDefault {
		t.Errorf("expected %s via default tier, got %s via %s", DefaultCode, code, tier)
	}
	if dir.calls != 0 {
		t.Errorf("expected no remote calls, got %d", dir.calls)
	}
}

func TestResolver_DictionaryTier(t *testing.T) {
	dir := &fakeDirectory{}
	r := NewResolver(dir, memory.New(), testLogger())

	code, tier := r.Resolve(context.Background(), "London")
	if code != "LON" || tier != TierDictionary {
		t.Errorf("expected LON via dictionary tier, got %s via %s", code, tier)
	}

	// Dictionary lookups normalize case and whitespace.
	code, _ = r.Resolve(context.Background(), "  NEW YORK ")
	if code != "NYC" {
		t.Errorf("expected NYC, got %s", code)
	}

	if dir.calls != 0 {
		t.Errorf("dictionary hits must not touch the network, got %d calls", dir.calls)
	}
}

func TestResolver_CacheTier(t *testing.T) {
	ctx := context.Background()
	cache := memory.New()
	if err := cache.Set(ctx, "hb_dest_lisbon", "LIS"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir := &fakeDirectory{}
	r := NewResolver(dir, cache, testLogger())

	code, tier := r.Resolve(ctx, "Lisbon")
	if code != "LIS" || tier != TierCache {
		t.Errorf("expected LIS via cache tier, got %s via %s", code, tier)
	}
	if dir.calls != 0 {
		t.Errorf("cache hits must not touch the network, got %d calls", dir.calls)
	}
}

func TestResolver_RemoteTierPopulatesCache(t *testing.T) {
	ctx := context.Background()
	dir := &fakeDirectory{dests: []hotelbeds.Destination{
		{Code: "OPO", Name: "Porto"},
		{Code: "LIS", Name: "Lisbon Area"},
	}}
	r := NewResolver(dir, memory.New(), testLogger())

	code, tier := r.Resolve(ctx, "Lisbon")
	if code != "LIS" || tier != TierRemote {
		t.Errorf("expected LIS via remote tier, got %s via %s", code, tier)
	}
	if dir.calls != 1 {
		t.Fatalf("expected 1 remote call, got %d", dir.calls)
	}

	// Second resolution must be answered by the cache, not the network.
	code, tier = r.Resolve(ctx, "Lisbon")
	if code != "LIS" || tier != TierCache {
		t.Errorf("expected LIS via cache tier, got %s via %s", code, tier)
	}
	if dir.calls != 1 {
		t.Errorf("expected no second remote call, got %d", dir.calls)
	}
}

func TestResolver_SubstringBothDirections(t *testing.T) {
	dir := &fakeDirectory{dests: []hotelbeds.Destination{
		{Code: "OPO", Name: "Porto"},
	}}
	r := NewResolver(dir, memory.New(), testLogger())

	// The query contains the directory name.
	code, tier := r.Resolve(context.Background(), "greater porto")
	if code != "OPO" || tier != TierRemote {
		t.Errorf("expected OPO via remote tier, got %s via %s", code, tier)
	}
}

func TestResolver_HeuristicOnNoMatch(t *testing.T) {
	ctx := context.Background()
	cache := memory.New()
	dir := &fakeDirectory{dests: []hotelbeds.Destination{
		{Code: "OPO", Name: "Porto"},
	}}
	r := NewResolver(dir, cache, testLogger())

	code, tier := r.Resolve(ctx, "Lisbon")
	if code != "LIS" || tier != TierHeuristic {
		t.Errorf("expected heuristic LIS, got %s via %s", code, tier)
	}

	// Heuristic answers are approximations and must not be cached.
	if _, ok, _ := cache.Get(ctx, "hb_dest_lisbon"); ok {
		t.Error("heuristic result must not be written to the cache")
	}
}

func TestResolver_HeuristicOnRemoteFailure(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("connection reset")}
	r := NewResolver(dir, memory.New(), testLogger())

	code, tier := r.Resolve(context.Background(), "Lisbon")
	if code != "LIS" || tier != TierHeuristic {
		t.Errorf("expected heuristic LIS, got %s via %s", code, tier)
	}
}

func TestResolver_HeuristicShortInput(t *testing.T) {
	dir := &fakeDirectory{}
	r := NewResolver(dir, memory.New(), testLogger())

	code, tier := r.Resolve(context.Background(), "fo")
	if code != "FO" || tier != TierHeuristic {
		t.Errorf("expected FO via heuristic, got %s via %s", code, tier)
	}
}

func TestResolver_NilCache(t *testing.T) {
	dir := &fakeDirectory{dests: []hotelbeds.Destination{
		{Code: "LIS", Name: "Lisbon"},
	}}
	r := NewResolver(dir, nil, testLogger())

	code, tier := r.Resolve(context.Background(), "Lisbon")
	if code != "LIS" || tier != TierRemote {
		t.Errorf("expected LIS via remote tier, got %s via %s", code, tier)
	}
}
