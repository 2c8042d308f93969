package riot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/big21ray/soloqtracker-discord/internal/cache"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

func newTestStore(t *testing.T) *cache.Store {
	t.Helper()
	return cache.Open(filepath.Join(t.TempDir(), "cache.json"), zerolog.Nop())
}

func TestResolveCacheHitSkipsNetwork(t *testing.T) {
	store := newTestStore(t)
	store.Put("europe", "Name#TAG", cache.Identity{GameName: "Name", TagLine: "TAG", PUUID: "puuid-1"})

	tr := &scriptedTransport{}
	r := NewResolver(newTestClient(tr, 3), store, zerolog.Nop())

	for i := 0; i < 2; i++ {
		id, err := r.Resolve(context.Background(), "Name#TAG", RegionEurope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.PUUID != "puuid-1" {
			t.Errorf("unexpected puuid %q", id.PUUID)
		}
	}
	if tr.calls != 0 {
		t.Errorf("expected zero network calls on cache hit, got %d", tr.calls)
	}
}

func TestResolveMissFetchesAndCaches(t *testing.T) {
	store := newTestStore(t)
	tr := &scriptedTransport{responses: []scriptedResponse{
		{status: fasthttp.StatusOK, body: accountBody},
	}}
	r := NewResolver(newTestClient(tr, 3), store, zerolog.Nop())

	id, err := r.Resolve(context.Background(), "Name#TAG", RegionEurope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.PUUID != "puuid-1" || id.GameName != "Name" || id.TagLine != "TAG" {
		t.Errorf("unexpected identity: %+v", id)
	}

	if _, err := r.Resolve(context.Background(), "Name#TAG", RegionEurope); err != nil {
		t.Fatalf("unexpected error on second resolve: %v", err)
	}
	if tr.calls != 1 {
		t.Errorf("expected a single network call, got %d", tr.calls)
	}
	if _, ok := store.Get("europe", "Name#TAG"); !ok {
		t.Error("expected the resolved identity to be cached")
	}
}

func TestResolveTreatsEmptyPuuidAsMiss(t *testing.T) {
	store := newTestStore(t)
	store.Put("europe", "Name#TAG", cache.Identity{GameName: "Name", TagLine: "TAG"})

	tr := &scriptedTransport{responses: []scriptedResponse{
		{status: fasthttp.StatusOK, body: accountBody},
	}}
	r := NewResolver(newTestClient(tr, 3), store, zerolog.Nop())

	id, err := r.Resolve(context.Background(), "Name#TAG", RegionEurope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.PUUID != "puuid-1" {
		t.Errorf("expected a refreshed identity, got %+v", id)
	}
	if tr.calls != 1 {
		t.Errorf("expected the stale entry to trigger a network call, got %d", tr.calls)
	}
}

func TestResolveRequiresTag(t *testing.T) {
	store := newTestStore(t)
	tr := &scriptedTransport{}
	r := NewResolver(newTestClient(tr, 3), store, zerolog.Nop())

	_, err := r.Resolve(context.Background(), "NoTagHere", RegionEurope)
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResolutionError, got %T: %v", err, err)
	}
	if tr.calls != 0 {
		t.Errorf("expected no network call for an unresolvable label, got %d", tr.calls)
	}
}

func TestSplitRiotID(t *testing.T) {
	tests := []struct {
		label    string
		name     string
		tag      string
		ok       bool
	}{
		{"Name#TAG", "Name", "TAG", true},
		{"DX Alex Isley#21Ray", "DX Alex Isley", "21Ray", true},
		{"A#B#C", "A", "B#C", true},
		{"NoTag", "NoTag", "", false},
		{"Trailing#", "Trailing", "", false},
	}
	for _, tt := range tests {
		name, tag, ok := SplitRiotID(tt.label)
		if name != tt.name || tag != tt.tag || ok != tt.ok {
			t.Errorf("SplitRiotID(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.label, name, tag, ok, tt.name, tt.tag, tt.ok)
		}
	}
}

func TestParseRegion(t *testing.T) {
	for _, valid := range []string{"europe", "americas", "asia", "sea"} {
		if _, err := ParseRegion(valid); err != nil {
			t.Errorf("ParseRegion(%q) unexpectedly failed: %v", valid, err)
		}
	}
	if _, err := ParseRegion("emea"); err == nil {
		t.Error("expected an error for an unknown region")
	}
}
