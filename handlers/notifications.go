// ABOUTME: Notification and activity MCP tool handlers
// ABOUTME: Implements list_notifications, mark_notifications_read, and recent_activity tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/feed"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/notify"
	"github.com/harperreed/refit/store"
)

type NotificationHandlers struct {
	store *store.Store
}

func NewNotificationHandlers(s *store.Store) *NotificationHandlers {
	return &NotificationHandlers{store: s}
}

type ListNotificationsInput struct {
	UnreadOnly bool `json:"unread_only,omitempty" jsonschema:"Only return unread notifications"`
	Grouped    bool `json:"grouped,omitempty" jsonschema:"Collapse similar notifications into groups"`
}

type NotificationOutput struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Priority string `json:"priority,omitempty"`
	Message  string `json:"message"`
	Read     bool   `json:"read"`
}

type NotificationGroupOutput struct {
	Key    string `json:"key"`
	Count  int    `json:"count"`
	Latest string `json:"latest_message"`
}

type ListNotificationsOutput struct {
	Notifications []NotificationOutput      `json:"notifications,omitempty"`
	Groups        []NotificationGroupOutput `json:"groups,omitempty"`
}

func (h *NotificationHandlers) ListNotifications(_ context.Context, request *mcp.CallToolRequest, input ListNotificationsInput) (*mcp.CallToolResult, ListNotificationsOutput, error) {
	var list []*models.Notification
	if input.UnreadOnly {
		list = db.UnreadNotifications(h.store)
	} else {
		list = db.AllNotifications(h.store)
	}

	var out ListNotificationsOutput
	if input.Grouped {
		for _, g := range notify.GroupNotifications(list) {
			out.Groups = append(out.Groups, NotificationGroupOutput{
				Key:    g.Key,
				Count:  len(g.Notifications),
				Latest: g.Latest.Message,
			})
		}
		return nil, out, nil
	}

	for _, n := range list {
		out.Notifications = append(out.Notifications, NotificationOutput{
			ID:       n.ID,
			Type:     n.Type,
			Priority: n.Priority,
			Message:  n.Message,
			Read:     n.Read,
		})
	}
	return nil, out, nil
}

type MarkNotificationsReadInput struct {
	NotificationID string `json:"notification_id,omitempty" jsonschema:"One notification to mark read; omit to mark all"`
}

type MarkNotificationsReadOutput struct {
	Marked int `json:"marked"`
}

func (h *NotificationHandlers) MarkNotificationsRead(_ context.Context, request *mcp.CallToolRequest, input MarkNotificationsReadInput) (*mcp.CallToolResult, MarkNotificationsReadOutput, error) {
	now := time.Now()
	if input.NotificationID != "" {
		if !db.MarkNotificationRead(h.store, input.NotificationID, now) {
			return nil, MarkNotificationsReadOutput{}, fmt.Errorf("notification not found")
		}
		return nil, MarkNotificationsReadOutput{Marked: 1}, nil
	}
	return nil, MarkNotificationsReadOutput{Marked: db.MarkAllNotificationsRead(h.store, now)}, nil
}

type RecentActivityInput struct {
	Types  []string `json:"types,omitempty" jsonschema:"Filter by activity types"`
	UserID string   `json:"user_id,omitempty" jsonschema:"Filter by acting team member"`
	Days   int      `json:"days,omitempty" jsonschema:"How many days back to look (default 7)"`
	Search string   `json:"search,omitempty" jsonschema:"Substring search over descriptions"`
}

type ActivityOutput struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Action     string `json:"action"`
	TargetType string `json:"target_type,omitempty"`
	TargetName string `json:"target_name,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type RecentActivityOutput struct {
	Entries []ActivityOutput `json:"entries"`
}

func (h *NotificationHandlers) RecentActivity(_ context.Context, request *mcp.CallToolRequest, input RecentActivityInput) (*mcp.CallToolResult, RecentActivityOutput, error) {
	days := input.Days
	if days == 0 {
		days = 7
	}
	from := time.Now().AddDate(0, 0, -days)

	f := feed.Filter{
		Types:       input.Types,
		From:        &from,
		Search:      input.Search,
		VisibleOnly: true,
	}
	if input.UserID != "" {
		f.UserIDs = []string{input.UserID}
	}

	var out RecentActivityOutput
	for _, e := range db.ActivityFeed(h.store, f) {
		out.Entries = append(out.Entries, ActivityOutput{
			ID:         e.ID,
			Type:       e.Type,
			Action:     e.Action,
			TargetType: e.TargetType,
			TargetName: e.TargetName,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		})
	}
	return nil, out, nil
}
