package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pfrederiksen/labs-events/internal/event"
	"github.com/pfrederiksen/labs-events/internal/logger"
)

// Store handles persistence of the events snapshot file
type Store struct{}

// New creates a new Store instance
func New() *Store {
	return &Store{}
}

// Load reads the snapshot at path into a lookup keyed by event ID.
// A missing file yields an empty lookup. An unreadable or malformed
// file also yields an empty lookup, with a logged warning, so a
// corrupt snapshot degrades to a full re-fetch rather than an abort.
// Records without an ID are skipped.
func (s *Store) Load(path string) map[string]*event.Event {
	existing := make(map[string]*event.Event)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read existing snapshot", logger.Fields{"path": path}, err)
		}
		return existing
	}

	var events []*event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		logger.Warn("could not parse existing snapshot", logger.Fields{"path": path}, err)
		return existing
	}

	for _, evt := range events {
		if evt == nil || evt.ID == "" {
			continue
		}
		existing[evt.ID] = evt
	}
	return existing
}

// Save writes events to path as a pretty-printed JSON array,
// overwriting any previous snapshot. HTML escaping is disabled so
// non-ASCII event names survive verbatim.
func (s *Store) Save(path string, events []*event.Event) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
