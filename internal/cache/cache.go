package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Identity is one resolved riot id, stored under "<region>:<label>".
// The cache key includes the region because account routing is
// region-scoped: the same label may resolve differently per region.
type Identity struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	PUUID    string `json:"puuid"`
}

// Store is the persistent identity cache. It is loaded once at startup,
// mutated in memory during a run and rewritten in full by Flush (last
// writer wins). The api key is never written here.
type Store struct {
	path   string
	logger zerolog.Logger

	mu      sync.Mutex
	entries map[string]Identity
	dirty   bool
}

// Open loads the cache file at path. A missing or unreadable file
// yields an empty cache rather than an error; the file is recreated on
// the next flush.
func Open(path string, logger zerolog.Logger) *Store {
	s := &Store{
		path:    path,
		logger:  logger,
		entries: make(map[string]Identity),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("identity cache unreadable, starting empty")
		}
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("identity cache corrupt, starting empty")
		s.entries = make(map[string]Identity)
		return s
	}

	logger.Debug().Int("entries", len(s.entries)).Str("path", path).Msg("identity cache loaded")
	return s
}

func Key(region, label string) string {
	return region + ":" + label
}

// Get returns a hit only when the entry carries a puuid. Stale entries
// without one count as misses so the caller refreshes them.
func (s *Store) Get(region, label string) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.entries[Key(region, label)]
	if !ok || id.PUUID == "" {
		return Identity{}, false
	}
	return id, true
}

func (s *Store) Put(region, label string, id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[Key(region, label)] = id
	s.dirty = true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Flush rewrites the whole cache file if anything changed since the
// last flush.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding identity cache: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing identity cache: %w", err)
	}

	s.dirty = false
	s.logger.Debug().Int("entries", len(s.entries)).Str("path", s.path).Msg("identity cache flushed")
	return nil
}
