// ABOUTME: Notification grouping engine keyed by type plus related entity
// ABOUTME: Groups carry the member list and a pointer to the newest notification
package notify

import (
	"fmt"
	"sort"

	"github.com/harperreed/refit/models"
)

// Group is a set of notifications sharing a grouping key. A group of size 1
// renders as a plain notification; that choice belongs to the view.
type Group struct {
	Key           string                 `json:"key"`
	Notifications []*models.Notification `json:"notifications"`
	Latest        *models.Notification   `json:"latest"`
}

// Count returns the group size.
func (g *Group) Count() int {
	return len(g.Notifications)
}

// GroupKey builds the grouping key: type + related entity kind + id, or
// type + "_general" when the notification has no related entity.
func GroupKey(n *models.Notification) string {
	if kind, id, ok := n.RelatedEntity(); ok {
		return fmt.Sprintf("%s_%s_%s", n.Type, kind, id)
	}
	return n.Type + "_general"
}

// GroupNotifications buckets the flat list. Groups are ordered by their
// latest notification, newest first; members keep input order.
func GroupNotifications(list []*models.Notification) []*Group {
	byKey := make(map[string]*Group)
	var order []string

	for _, n := range list {
		key := GroupKey(n)
		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key}
			byKey[key] = g
			order = append(order, key)
		}
		g.Notifications = append(g.Notifications, n)
		if g.Latest == nil || n.CreatedAt.After(g.Latest.CreatedAt) {
			g.Latest = n
		}
	}

	groups := make([]*Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, byKey[key])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Latest.CreatedAt.After(groups[j].Latest.CreatedAt)
	})
	return groups
}

// ShouldGroup advises whether a list is worth collapsing: at least threshold
// notifications sharing some key. Advisory only; GroupNotifications itself
// never consults it.
func ShouldGroup(list []*models.Notification, threshold int) bool {
	if threshold <= 1 {
		return len(list) > 0
	}
	counts := make(map[string]int)
	for _, n := range list {
		counts[GroupKey(n)]++
		if counts[GroupKey(n)] >= threshold {
			return true
		}
	}
	return false
}
