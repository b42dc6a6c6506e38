// ABOUTME: Generic whole-array collection adapter over the key-value store
// ABOUTME: Storage failures are logged and surfaced as false/empty, never as errors
package store

import (
	"encoding/json"
	"errors"
	"log"
	"time"
)

// Record is implemented by every entity via the embedded models.Meta.
type Record interface {
	RecordID() string
	EnsureID()
	Touch(now time.Time)
}

// Collection reads and writes one named JSON array. Every operation is a
// synchronous whole-array read-modify-write; the last writer wins.
type Collection[T Record] struct {
	store *Store
	key   string
}

// NewCollection binds a record type to its storage key.
func NewCollection[T Record](s *Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

// Key returns the storage key this collection is bound to.
func (c *Collection[T]) Key() string {
	return c.key
}

// All returns every record in the collection. A missing key, storage error,
// or corrupt payload all yield an empty slice; callers cannot distinguish
// "empty" from "failed read".
func (c *Collection[T]) All() []T {
	data, err := c.store.Get(c.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: read %s: %v", c.key, err)
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("store: decode %s: %v", c.key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Replace overwrites the entire collection.
func (c *Collection[T]) Replace(items []T) bool {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("store: encode %s: %v", c.key, err)
		return false
	}
	if err := c.store.Set(c.key, data); err != nil {
		log.Printf("store: write %s: %v", c.key, err)
		return false
	}
	return true
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, item := range c.All() {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a record, assigning an id and stamping timestamps when unset.
func (c *Collection[T]) Append(item T) bool {
	item.EnsureID()
	item.Touch(time.Now().UTC())

	items := c.All()
	items = append(items, item)
	return c.Replace(items)
}

// Update applies a partial update to the record with the given id and stamps
// UpdatedAt. Returns false when the record does not exist or the write fails.
func (c *Collection[T]) Update(id string, mutate func(T)) bool {
	items := c.All()
	for i, item := range items {
		if item.RecordID() != id {
			continue
		}
		mutate(item)
		item.Touch(time.Now().UTC())
		items[i] = item
		return c.Replace(items)
	}
	return false
}

// Delete filters the record out of the array and rewrites it. Returns false
// when the record was not present.
func (c *Collection[T]) Delete(id string) bool {
	items := c.All()
	kept := make([]T, 0, len(items))
	found := false
	for _, item := range items {
		if item.RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return false
	}
	return c.Replace(kept)
}

// Filter returns the records matching the predicate.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	var out []T
	for _, item := range c.All() {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// GetObject reads a single JSON object stored under its own key.
func GetObject[T any](s *Store, key string) (T, bool) {
	var v T
	data, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: read %s: %v", key, err)
		}
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("store: decode %s: %v", key, err)
		return v, false
	}
	return v, true
}

// SetObject writes a single JSON object under its own key.
func SetObject[T any](s *Store, key string, v T) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: encode %s: %v", key, err)
		return false
	}
	if err := s.Set(key, data); err != nil {
		log.Printf("store: write %s: %v", key, err)
		return false
	}
	return true
}
