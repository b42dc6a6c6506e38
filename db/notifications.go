// ABOUTME: Repository for notifications and per-user preferences
// ABOUTME: Muted types are dropped at write time, not filtered on read
package db

import (
	"time"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func notifications(s *store.Store) *store.Collection[*models.Notification] {
	return store.NewCollection[*models.Notification](s, store.KeyNotifications)
}

func notificationPrefs(s *store.Store) *store.Collection[*models.NotificationPreferences] {
	return store.NewCollection[*models.NotificationPreferences](s, store.KeyNotificationPrefs)
}

// AddNotification persists a notification unless the targeted user has muted
// its type. Priority defaults to medium. Returns true when the notification
// was stored or deliberately muted.
func AddNotification(s *store.Store, n *models.Notification) bool {
	if n.Priority == "" {
		n.Priority = models.NotifyPriorityMedium
	}
	if n.Metadata != nil && n.Metadata.UserID != "" {
		if prefs, ok := PreferencesForUser(s, n.Metadata.UserID); ok {
			for _, muted := range prefs.MutedTypes {
				if muted == n.Type {
					return true
				}
			}
		}
	}
	return notifications(s).Append(n)
}

// AllNotifications returns every notification.
func AllNotifications(s *store.Store) []*models.Notification {
	return notifications(s).All()
}

// UnreadNotifications returns notifications not yet marked read.
func UnreadNotifications(s *store.Store) []*models.Notification {
	return notifications(s).Filter(func(n *models.Notification) bool {
		return !n.Read
	})
}

// NotificationsByType returns all notifications of the given type.
func NotificationsByType(s *store.Store, typ string) []*models.Notification {
	return notifications(s).Filter(func(n *models.Notification) bool {
		return n.Type == typ
	})
}

// MarkNotificationRead marks one notification read, stamping ReadAt.
func MarkNotificationRead(s *store.Store, id string, now time.Time) bool {
	return notifications(s).Update(id, func(n *models.Notification) {
		if n.Read {
			return
		}
		n.Read = true
		at := now
		n.ReadAt = &at
	})
}

// MarkAllNotificationsRead marks every unread notification read and returns
// how many were flipped.
func MarkAllNotificationsRead(s *store.Store, now time.Time) int {
	count := 0
	all := notifications(s).All()
	for _, n := range all {
		if n.Read {
			continue
		}
		n.Read = true
		at := now
		n.ReadAt = &at
		n.Touch(now)
		count++
	}
	if count > 0 && !notifications(s).Replace(all) {
		return 0
	}
	return count
}

// DeleteNotification removes a notification.
func DeleteNotification(s *store.Store, id string) bool {
	return notifications(s).Delete(id)
}

// PreferencesForUser returns the user's notification preferences.
func PreferencesForUser(s *store.Store, userID string) (*models.NotificationPreferences, bool) {
	matches := notificationPrefs(s).Filter(func(p *models.NotificationPreferences) bool {
		return p.UserID == userID
	})
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// SetPreferencesForUser writes the user's notification preferences,
// replacing any existing record.
func SetPreferencesForUser(s *store.Store, prefs *models.NotificationPreferences) bool {
	if existing, ok := PreferencesForUser(s, prefs.UserID); ok {
		return notificationPrefs(s).Update(existing.ID, func(p *models.NotificationPreferences) {
			p.MutedTypes = prefs.MutedTypes
			p.GroupSimilar = prefs.GroupSimilar
		})
	}
	return notificationPrefs(s).Append(prefs)
}
