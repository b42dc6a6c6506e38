// ABOUTME: Tests for persisted UI state
// ABOUTME: Missing state loads as a zero value, never an error
package state

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

func TestLoadWithoutSave(t *testing.T) {
	s := setupTestStore(t)

	st := Load(s)
	if st.CurrentView != "" || st.SelectedProjectID != "" || st.Filters != nil {
		t.Errorf("Expected zero state, got %+v", st)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	Save(s, AppState{CurrentView: "board", SelectedProjectID: "p1"})
	st := Load(s)
	if st.CurrentView != "board" || st.SelectedProjectID != "p1" {
		t.Errorf("Unexpected state %+v", st)
	}
}

func TestSetFilterAndClear(t *testing.T) {
	s := setupTestStore(t)

	SetFilter(s, "status", "in_progress")
	if Load(s).Filters["status"] != "in_progress" {
		t.Error("Expected filter saved")
	}

	SetFilter(s, "status", "")
	if _, ok := Load(s).Filters["status"]; ok {
		t.Error("Expected filter cleared")
	}
}
