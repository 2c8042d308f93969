package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "cache.json"), zerolog.Nop())
	if s.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", s.Len())
	}
}

func TestFlushRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "cache.json")

	s := Open(path, zerolog.Nop())
	s.Put("europe", "Name#TAG", Identity{GameName: "Name", TagLine: "TAG", PUUID: "puuid-1"})
	if err := s.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	reopened := Open(path, zerolog.Nop())
	id, ok := reopened.Get("europe", "Name#TAG")
	if !ok {
		t.Fatal("expected a cache hit after reopen")
	}
	if id.PUUID != "puuid-1" || id.GameName != "Name" || id.TagLine != "TAG" {
		t.Errorf("unexpected identity after round trip: %+v", id)
	}
}

func TestGetRequiresPuuid(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "cache.json"), zerolog.Nop())
	s.Put("europe", "Name#TAG", Identity{GameName: "Name", TagLine: "TAG"})

	if _, ok := s.Get("europe", "Name#TAG"); ok {
		t.Error("expected an entry without a puuid to count as a miss")
	}
}

func TestKeysAreRegionScoped(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "cache.json"), zerolog.Nop())
	s.Put("europe", "Name#TAG", Identity{PUUID: "puuid-eu"})
	s.Put("americas", "Name#TAG", Identity{PUUID: "puuid-na"})

	eu, _ := s.Get("europe", "Name#TAG")
	na, _ := s.Get("americas", "Name#TAG")
	if eu.PUUID != "puuid-eu" || na.PUUID != "puuid-na" {
		t.Errorf("expected region-scoped entries, got eu=%q na=%q", eu.PUUID, na.PUUID)
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Open(path, zerolog.Nop())
	if s.Len() != 0 {
		t.Errorf("expected empty cache for a corrupt file, got %d entries", s.Len())
	}
}

func TestFlushSkipsWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	s := Open(path, zerolog.Nop())
	if err := s.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file to be written when nothing changed")
	}
}
