// ABOUTME: Tests for the activity log repository
// ABOUTME: Covers ULID ids, feed ordering, hiding, and age pruning
package db

import (
	"testing"
	"time"

	"github.com/harperreed/refit/feed"
	"github.com/harperreed/refit/models"
)

func TestLogActivityAssignsULID(t *testing.T) {
	s := setupTestStore(t)

	e := &models.TeamActivity{Type: models.ActivityTaskCreated, Action: "created task"}
	if !LogActivity(s, e) {
		t.Fatal("LogActivity failed")
	}
	if len(e.ID) != 26 {
		t.Errorf("Expected a 26-char ULID, got %q", e.ID)
	}
	if !e.Visible {
		t.Error("Expected new entries visible")
	}
}

func TestActivityFeedNewestFirst(t *testing.T) {
	s := setupTestStore(t)

	LogActivity(s, &models.TeamActivity{Type: models.ActivityTaskCreated, Action: "first"})
	LogActivity(s, &models.TeamActivity{Type: models.ActivityTaskCompleted, Action: "second"})
	LogActivity(s, &models.TeamActivity{Type: models.ActivityPaymentRecorded, Action: "third"})

	entries := ActivityFeed(s, feed.Filter{})
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Action != "third" || entries[2].Action != "first" {
		t.Errorf("Expected newest first, got %s .. %s", entries[0].Action, entries[2].Action)
	}
}

func TestActivityFeedFiltersByType(t *testing.T) {
	s := setupTestStore(t)

	LogActivity(s, &models.TeamActivity{Type: models.ActivityTaskCreated, Action: "task"})
	LogActivity(s, &models.TeamActivity{Type: models.ActivityPaymentRecorded, Action: "payment"})

	entries := ActivityFeed(s, feed.Filter{Types: []string{models.ActivityPaymentRecorded}})
	if len(entries) != 1 || entries[0].Action != "payment" {
		t.Errorf("Expected only the payment entry, got %d entries", len(entries))
	}
}

func TestHideActivityKeepsEntry(t *testing.T) {
	s := setupTestStore(t)

	e := &models.TeamActivity{Type: models.ActivityTaskCreated, Action: "oops"}
	LogActivity(s, e)
	if !HideActivity(s, e.ID) {
		t.Fatal("HideActivity failed")
	}

	visible := ActivityFeed(s, feed.Filter{VisibleOnly: true})
	if len(visible) != 0 {
		t.Errorf("Expected hidden entry excluded, got %d", len(visible))
	}
	all := ActivityFeed(s, feed.Filter{})
	if len(all) != 1 {
		t.Errorf("Expected hidden entry retained, got %d", len(all))
	}
}

func TestClearOldActivities(t *testing.T) {
	s := setupTestStore(t)

	old := &models.TeamActivity{Type: models.ActivityTaskCreated, Action: "old"}
	LogActivity(s, old)
	recent := &models.TeamActivity{Type: models.ActivityTaskCreated, Action: "recent"}
	LogActivity(s, recent)

	// Backdate the first entry past the cutoff.
	cutoff := time.Now().AddDate(0, 0, -30)
	activities(s).Update(old.ID, func(e *models.TeamActivity) {
		e.CreatedAt = cutoff.AddDate(0, 0, -1)
	})

	removed := ClearOldActivities(s, cutoff)
	if removed != 1 {
		t.Fatalf("Expected 1 entry pruned, got %d", removed)
	}
	entries := ActivityFeed(s, feed.Filter{})
	if len(entries) != 1 || entries[0].Action != "recent" {
		t.Errorf("Expected only the recent entry left, got %d", len(entries))
	}
}
