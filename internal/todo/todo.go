// Package todo is a small flat-file todo list surfaced through the
// chat commands.
package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

const idLength = 8

// Item is one todo entry.
type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// List persists items in a single JSON file, rewritten in full on
// every mutation.
type List struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

func NewList(path string, logger zerolog.Logger) *List {
	return &List{path: path, logger: logger}
}

func (l *List) Add(text string) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := gonanoid.New(idLength)
	if err != nil {
		return Item{}, err
	}
	item := Item{ID: id, Text: text, CreatedAt: time.Now()}

	items, err := l.load()
	if err != nil {
		return Item{}, err
	}
	items = append(items, item)
	if err := l.save(items); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (l *List) Items() ([]Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *List) Done(id string) error {
	return l.update(id, func(item *Item) { item.Done = true })
}

func (l *List) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fmt.Errorf("no todo with id %q", id)
	}
	return l.save(kept)
}

func (l *List) update(id string, apply func(*Item)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			apply(&items[i])
			return l.save(items)
		}
	}
	return fmt.Errorf("no todo with id %q", id)
}

func (l *List) load() ([]Item, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading todo file: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding todo file: %w", err)
	}
	return items, nil
}

func (l *List) save(items []Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating todo directory: %w", err)
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("writing todo file: %w", err)
	}
	return nil
}
