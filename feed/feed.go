// ABOUTME: Activity feed filtering and date-bucket grouping
// ABOUTME: Pure transformations over the append-only activity log
package feed

import (
	"strings"
	"time"

	"github.com/harperreed/refit/models"
)

// Filter narrows an activity list. Zero-value fields are ignored; date
// bounds are inclusive.
type Filter struct {
	Types       []string
	UserIDs     []string
	TargetType  string
	From        *time.Time
	To          *time.Time
	VisibleOnly bool
	Search      string
}

// Apply returns the entries matching every set criterion, preserving order.
func Apply(entries []*models.TeamActivity, f Filter) []*models.TeamActivity {
	types := toSet(f.Types)
	users := toSet(f.UserIDs)
	search := strings.ToLower(f.Search)

	var out []*models.TeamActivity
	for _, e := range entries {
		if f.VisibleOnly && !e.Visible {
			continue
		}
		if len(types) > 0 && !types[e.Type] {
			continue
		}
		if len(users) > 0 && !users[e.UserID] {
			continue
		}
		if f.TargetType != "" && e.TargetType != f.TargetType {
			continue
		}
		if f.From != nil && e.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && e.CreatedAt.After(*f.To) {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func matchesSearch(e *models.TeamActivity, search string) bool {
	for _, field := range []string{e.Action, e.Description, e.TargetName, e.UserName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// GroupByDate buckets entries by the UTC calendar date of their timestamp.
// The union of all buckets is exactly the input.
func GroupByDate(entries []*models.TeamActivity) map[string][]*models.TeamActivity {
	buckets := make(map[string][]*models.TeamActivity)
	for _, e := range entries {
		day := e.CreatedAt.UTC().Format("2006-01-02")
		buckets[day] = append(buckets[day], e)
	}
	return buckets
}

// OlderThan returns the entries created strictly before the cutoff. The
// repository's retention pass deletes exactly these.
func OlderThan(entries []*models.TeamActivity, cutoff time.Time) []*models.TeamActivity {
	var out []*models.TeamActivity
	for _, e := range entries {
		if e.CreatedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
