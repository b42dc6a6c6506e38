// ABOUTME: Task entity with checklist, dependencies, and derived progress
// ABOUTME: Progress comes from the checklist when one exists, else the stored percentage
package models

import "time"

// Task statuses.
const (
	TaskPending     = "pending"
	TaskInProgress  = "in_progress"
	TaskUnderReview = "under_review"
	TaskOnHold      = "on_hold"
	TaskBlocked     = "blocked"
	TaskCompleted   = "completed"
	TaskCancelled   = "cancelled"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ChecklistItem is a single sub-item on a task.
type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Task dependencies are id lists with no cycle detection.
type Task struct {
	Meta
	ProjectID      string          `json:"projectId"`
	PhaseID        string          `json:"phaseId,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority,omitempty"`
	AssigneeID     string          `json:"assigneeId,omitempty"`
	RequiredSkills []string        `json:"requiredSkills,omitempty"`
	EstimatedHours float64         `json:"estimatedHours,omitempty"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	DependsOn      []string        `json:"dependsOn,omitempty"`
	BlockedBy      []string        `json:"blockedBy,omitempty"`
	Checklist      []ChecklistItem `json:"checklist,omitempty"`
	Progress       int             `json:"progress"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
}

// ProgressPercent returns checklist-derived progress when the task has a
// checklist, otherwise the stored percentage.
func (t *Task) ProgressPercent() int {
	if len(t.Checklist) == 0 {
		return t.Progress
	}
	done := 0
	for _, item := range t.Checklist {
		if item.Done {
			done++
		}
	}
	return done * 100 / len(t.Checklist)
}

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskUnderReview, TaskOnHold, TaskBlocked, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// ValidPriority reports whether s is a known priority.
func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
