// ABOUTME: Tests for notification grouping
// ABOUTME: Covers key construction, latest pointers, ordering, and the advisor
package notify

import (
	"testing"
	"time"

	"github.com/harperreed/refit/models"
)

func notification(typ string, meta *models.NotificationMeta, createdAt time.Time) *models.Notification {
	n := &models.Notification{Type: typ, Metadata: meta}
	n.CreatedAt = createdAt
	return n
}

func TestGroupNotificationsByTypeAndEntity(t *testing.T) {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	list := []*models.Notification{
		notification(models.NotifyTaskAssigned, &models.NotificationMeta{ProjectID: "P1"}, base),
		notification(models.NotifyTaskAssigned, &models.NotificationMeta{ProjectID: "P1"}, base.Add(time.Hour)),
		notification(models.NotifySystem, nil, base.Add(30*time.Minute)),
	}

	groups := GroupNotifications(list)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}

	// Newest latest first: the task_assigned group was updated at base+1h.
	first := groups[0]
	if first.Key != "task_assigned_project_P1" {
		t.Errorf("Expected key task_assigned_project_P1, got %s", first.Key)
	}
	if first.Count() != 2 {
		t.Errorf("Expected count 2, got %d", first.Count())
	}
	if !first.Latest.CreatedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("Latest pointer wrong: %v", first.Latest.CreatedAt)
	}

	second := groups[1]
	if second.Key != "system_general" {
		t.Errorf("Expected key system_general, got %s", second.Key)
	}
	if second.Count() != 1 {
		t.Errorf("Expected singleton group, got %d", second.Count())
	}
}

func TestGroupKeyPrecedence(t *testing.T) {
	n := notification(models.NotifyCommentMention, &models.NotificationMeta{TaskID: "T9"}, time.Now())
	if got := GroupKey(n); got != "comment_mention_task_T9" {
		t.Errorf("Expected comment_mention_task_T9, got %s", got)
	}

	plain := notification("custom_event", nil, time.Now())
	if got := GroupKey(plain); got != "custom_event_general" {
		t.Errorf("Expected custom_event_general, got %s", got)
	}
}

func TestGroupingLosesNothing(t *testing.T) {
	base := time.Now().UTC()
	var list []*models.Notification
	for i := 0; i < 7; i++ {
		meta := &models.NotificationMeta{ProjectID: "P1"}
		if i%3 == 0 {
			meta = nil
		}
		list = append(list, notification(models.NotifyPaymentDue, meta, base.Add(time.Duration(i)*time.Minute)))
	}

	total := 0
	for _, g := range GroupNotifications(list) {
		total += g.Count()
	}
	if total != len(list) {
		t.Errorf("Grouping dropped notifications: %d of %d", total, len(list))
	}
}

func TestShouldGroupIsAdvisoryOnly(t *testing.T) {
	base := time.Now().UTC()
	list := []*models.Notification{
		notification(models.NotifySystem, nil, base),
		notification(models.NotifySystem, nil, base.Add(time.Minute)),
	}

	if !ShouldGroup(list, 2) {
		t.Error("Two same-key notifications meet a threshold of 2")
	}
	if ShouldGroup(list, 3) {
		t.Error("Threshold of 3 is not met by two notifications")
	}

	// The grouping function groups regardless of the advisor's answer.
	if len(GroupNotifications(list)) != 1 {
		t.Error("GroupNotifications must group independently of ShouldGroup")
	}
}
