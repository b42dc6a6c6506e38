// ABOUTME: Shared test setup for the repository package
// ABOUTME: Every test runs against a fresh in-memory store
package db

import (
	"testing"

	"github.com/harperreed/refit/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
