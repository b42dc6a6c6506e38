// ABOUTME: Notification entity with priority and related-entity metadata
// ABOUTME: Metadata drives grouping by type plus related entity
package models

import "time"

// Common notification types. The field is free-form; these are the ones the
// dashboard itself emits.
const (
	NotifyTaskAssigned        = "task_assigned"
	NotifyTaskCompleted       = "task_completed"
	NotifyPaymentDue          = "payment_due"
	NotifyPaymentOverdue      = "payment_overdue"
	NotifyQuoteReceived       = "quote_received"
	NotifyAppointmentReminder = "appointment_reminder"
	NotifyCommentMention      = "comment_mention"
	NotifySystem              = "system"
)

// Notification priorities.
const (
	NotifyPriorityLow    = "low"
	NotifyPriorityMedium = "medium"
	NotifyPriorityHigh   = "high"
	NotifyPriorityUrgent = "urgent"
)

// NotificationMeta links a notification to the entity it is about. At most
// one of the ids is expected to be set.
type NotificationMeta struct {
	ProjectID  string `json:"projectId,omitempty"`
	TaskID     string `json:"taskId,omitempty"`
	UserID     string `json:"userId,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
}

type Notification struct {
	Meta
	Type     string            `json:"type"`
	Priority string            `json:"priority,omitempty"`
	Title    string            `json:"title,omitempty"`
	Message  string            `json:"message"`
	Read     bool              `json:"read"`
	ReadAt   *time.Time        `json:"readAt,omitempty"`
	Metadata *NotificationMeta `json:"metadata,omitempty"`
}

// RelatedEntity returns the kind and id of the entity this notification is
// about, in the fixed project > task > user > document precedence.
func (n *Notification) RelatedEntity() (kind, id string, ok bool) {
	if n.Metadata == nil {
		return "", "", false
	}
	switch {
	case n.Metadata.ProjectID != "":
		return "project", n.Metadata.ProjectID, true
	case n.Metadata.TaskID != "":
		return "task", n.Metadata.TaskID, true
	case n.Metadata.UserID != "":
		return "user", n.Metadata.UserID, true
	case n.Metadata.DocumentID != "":
		return "document", n.Metadata.DocumentID, true
	}
	return "", "", false
}

// NotificationPreferences is a per-user settings record.
type NotificationPreferences struct {
	Meta
	UserID       string   `json:"userId"`
	MutedTypes   []string `json:"mutedTypes,omitempty"`
	GroupSimilar bool     `json:"groupSimilar"`
}
