// Package ledger persists the set of already processed feed items.
// The store is a single flat JSON document mapping the item's canonical
// link to the Unix time it was last seen. It is read once at the start
// of a run and written back once at the end.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Ledger maps item identifier (canonical link) to Unix seconds of last sighting
type Ledger map[string]int64

// Load reads the ledger from path. A missing file yields an empty ledger,
// a present but unreadable or malformed file is an error - it indicates a
// broken deployment rather than a fresh one.
func Load(path string) (Ledger, error) {
	data, err := os.ReadFile(path) //nolint:gosec // ledger path comes from config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Ledger{}, nil
		}
		return nil, fmt.Errorf("read ledger %s: %w", path, err)
	}

	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", path, err)
	}
	if l == nil {
		l = Ledger{}
	}
	return l, nil
}

// Save writes the whole ledger to path, replacing any prior content.
// The write goes through a temp file in the same directory followed by
// a rename, so a crashed run never leaves a truncated ledger behind.
func (l Ledger) Save(path string) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace ledger %s: %w", path, err)
	}
	return nil
}

// Contains reports whether the identifier was already seen
func (l Ledger) Contains(id string) bool {
	_, ok := l[id]
	return ok
}

// MarkSeen records the identifier with the given time, overwriting any
// earlier sighting. Timestamps only move forward - callers always pass
// the current time.
func (l Ledger) MarkSeen(id string, now time.Time) {
	l[id] = now.Unix()
}

// Prune returns a new ledger containing only entries last seen within the
// retention window. An entry exactly at the boundary is kept. Pure function
// of the receiver and the given time; the receiver is not modified.
func (l Ledger) Prune(now time.Time, retention time.Duration) Ledger {
	threshold := now.Add(-retention).Unix()
	pruned := make(Ledger, len(l))
	for id, seen := range l {
		if seen >= threshold {
			pruned[id] = seen
		}
	}
	return pruned
}
