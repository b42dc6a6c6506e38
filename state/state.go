// ABOUTME: Persisted UI state, restored when the dashboard reopens
// ABOUTME: Only the allow-listed fields survive a restart; everything else is session-local
package state

import (
	"github.com/harperreed/refit/store"
)

// AppState is the slice of UI state worth restoring across sessions. Scroll
// positions, open dialogs, and in-progress form input deliberately stay out.
type AppState struct {
	CurrentView       string            `json:"currentView,omitempty"`
	SelectedProjectID string            `json:"selectedProjectId,omitempty"`
	Filters           map[string]string `json:"filters,omitempty"`
}

// Load returns the saved state, or a zero state when none was saved yet.
func Load(s *store.Store) AppState {
	st, ok := store.GetObject[AppState](s, store.KeyAppState)
	if !ok {
		return AppState{}
	}
	return st
}

// Save persists the state, replacing whatever was there.
func Save(s *store.Store, st AppState) bool {
	return store.SetObject(s, store.KeyAppState, st)
}

// SetFilter records one filter value, creating the map as needed. An empty
// value clears the filter.
func SetFilter(s *store.Store, key, value string) bool {
	st := Load(s)
	if value == "" {
		delete(st.Filters, key)
	} else {
		if st.Filters == nil {
			st.Filters = make(map[string]string)
		}
		st.Filters[key] = value
	}
	return Save(s, st)
}
