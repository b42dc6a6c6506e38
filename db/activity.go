// ABOUTME: Append-only team activity log with feed queries and age pruning
// ABOUTME: Entries get ULID ids so the raw log sorts chronologically
package db

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/harperreed/refit/feed"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func activities(s *store.Store) *store.Collection[*models.TeamActivity] {
	return store.NewCollection[*models.TeamActivity](s, store.KeyActivityLog)
}

// LogActivity appends an entry to the activity log. Entries default to
// visible and get a ULID id, which keeps the raw log lexicographically
// ordered by creation time.
func LogActivity(s *store.Store, entry *models.TeamActivity) bool {
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	entry.Visible = true
	return activities(s).Append(entry)
}

// ActivityFeed returns log entries matching the filter, newest first.
func ActivityFeed(s *store.Store, f feed.Filter) []*models.TeamActivity {
	matched := feed.Apply(activities(s).All(), f)
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}

// ActivityByDate groups visible log entries by UTC calendar day.
func ActivityByDate(s *store.Store) map[string][]*models.TeamActivity {
	visible := feed.Apply(activities(s).All(), feed.Filter{VisibleOnly: true})
	return feed.GroupByDate(visible)
}

// HideActivity flips an entry to hidden without removing it from the log.
func HideActivity(s *store.Store, id string) bool {
	return activities(s).Update(id, func(e *models.TeamActivity) {
		e.Visible = false
	})
}

// ClearOldActivities prunes entries created strictly before the cutoff and
// returns how many were removed.
func ClearOldActivities(s *store.Store, cutoff time.Time) int {
	all := activities(s).All()
	old := feed.OlderThan(all, cutoff)
	if len(old) == 0 {
		return 0
	}
	kept := make([]*models.TeamActivity, 0, len(all)-len(old))
	for _, e := range all {
		if !e.CreatedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	if !activities(s).Replace(kept) {
		return 0
	}
	return len(old)
}
