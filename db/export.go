// ABOUTME: Whole-dataset snapshot export and import
// ABOUTME: Import only touches recognized keys; unknown payload keys are ignored
package db

import (
	"encoding/json"
	"time"

	"github.com/harperreed/refit/store"
)

// SnapshotVersion is written into every export and checked nowhere; it
// exists so future format changes can tell snapshots apart.
const SnapshotVersion = "1.0"

// Snapshot is the full dataset as one JSON document, keyed by storage key.
type Snapshot struct {
	ExportDate time.Time                  `json:"exportDate"`
	Version    string                     `json:"version"`
	Data       map[string]json.RawMessage `json:"data"`
}

// ExportSnapshot captures every recognized key's raw payload. Keys with no
// data yet are skipped rather than exported as empty arrays.
func ExportSnapshot(s *store.Store, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{
		ExportDate: now,
		Version:    SnapshotVersion,
		Data:       make(map[string]json.RawMessage),
	}
	for _, key := range store.RecognizedKeys() {
		raw, err := s.Get(key)
		if err == store.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		snap.Data[key] = json.RawMessage(raw)
	}
	return snap, nil
}

// ImportSnapshot writes a snapshot's payloads back into the store,
// overwriting the corresponding keys. Keys the dashboard does not recognize
// are skipped; returns how many keys were written.
func ImportSnapshot(s *store.Store, snap *Snapshot) (int, error) {
	recognized := make(map[string]bool)
	for _, key := range store.RecognizedKeys() {
		recognized[key] = true
	}

	written := 0
	for key, raw := range snap.Data {
		if !recognized[key] {
			continue
		}
		if !json.Valid(raw) {
			continue
		}
		if err := s.Set(key, raw); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
