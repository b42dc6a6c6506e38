// ABOUTME: Tests for activity feed filtering and grouping
// ABOUTME: Includes the bucket-union property over date grouping
package feed

import (
	"testing"
	"time"

	"github.com/harperreed/refit/models"
)

func entry(typ, userID, action string, createdAt time.Time) *models.TeamActivity {
	e := &models.TeamActivity{Type: typ, UserID: userID, Action: action, Visible: true}
	e.ID = action + createdAt.String()
	e.CreatedAt = createdAt
	return e
}

func TestApplyFilters(t *testing.T) {
	base := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	entries := []*models.TeamActivity{
		entry(models.ActivityTaskCreated, "u1", "created task Paint hallway", base),
		entry(models.ActivityTaskCompleted, "u2", "completed task Demo kitchen", base.AddDate(0, 0, 1)),
		entry(models.ActivityPaymentRecorded, "u1", "recorded payment", base.AddDate(0, 0, 2)),
	}

	byType := Apply(entries, Filter{Types: []string{models.ActivityTaskCreated, models.ActivityTaskCompleted}})
	if len(byType) != 2 {
		t.Errorf("Type filter: expected 2, got %d", len(byType))
	}

	byUser := Apply(entries, Filter{UserIDs: []string{"u1"}})
	if len(byUser) != 2 {
		t.Errorf("User filter: expected 2, got %d", len(byUser))
	}

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 1)
	byDate := Apply(entries, Filter{From: &from, To: &to})
	if len(byDate) != 1 || byDate[0].UserID != "u2" {
		t.Errorf("Inclusive date range: expected the day-2 entry, got %d", len(byDate))
	}

	bySearch := Apply(entries, Filter{Search: "KITCHEN"})
	if len(bySearch) != 1 {
		t.Errorf("Case-insensitive search: expected 1, got %d", len(bySearch))
	}
}

func TestApplyVisibleOnly(t *testing.T) {
	base := time.Now().UTC()
	hidden := entry(models.ActivityProjectUpdated, "u1", "edited", base)
	hidden.Visible = false
	entries := []*models.TeamActivity{hidden, entry(models.ActivityProjectCreated, "u1", "created", base)}

	got := Apply(entries, Filter{VisibleOnly: true})
	if len(got) != 1 || got[0].Action != "created" {
		t.Errorf("Expected only the visible entry, got %d", len(got))
	}
}

func TestGroupByDateUnionProperty(t *testing.T) {
	base := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	var entries []*models.TeamActivity
	for i := 0; i < 10; i++ {
		entries = append(entries, entry(models.ActivityTaskCreated, "u1", "a", base.Add(time.Duration(i)*time.Hour)))
	}

	buckets := GroupByDate(entries)

	seen := make(map[string]bool)
	total := 0
	for _, bucket := range buckets {
		for _, e := range bucket {
			if seen[e.ID] {
				t.Errorf("Entry %s appears in more than one bucket", e.ID)
			}
			seen[e.ID] = true
			total++
		}
	}
	if total != len(entries) {
		t.Errorf("Buckets hold %d entries, input had %d", total, len(entries))
	}

	// 23:30 UTC plus a few hours crosses midnight; expect two buckets.
	if len(buckets) != 2 {
		t.Errorf("Expected entries split across 2 UTC dates, got %d buckets", len(buckets))
	}
}

func TestOlderThanIsStrict(t *testing.T) {
	cutoff := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	at := entry(models.ActivityTaskCreated, "u1", "at cutoff", cutoff)
	before := entry(models.ActivityTaskCreated, "u1", "before", cutoff.Add(-time.Second))

	old := OlderThan([]*models.TeamActivity{at, before}, cutoff)
	if len(old) != 1 || old[0].Action != "before" {
		t.Errorf("Expected strictly-older entries only, got %d", len(old))
	}
}
