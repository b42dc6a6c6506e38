// ABOUTME: Append-only team activity log entry
// ABOUTME: Entries are only ever appended or pruned by age, never mutated
package models

// Activity types emitted by the repositories.
const (
	ActivityProjectCreated   = "project_created"
	ActivityProjectUpdated   = "project_updated"
	ActivityPhaseCompleted   = "phase_completed"
	ActivityQuoteReceived    = "quote_received"
	ActivityPaymentRecorded  = "payment_recorded"
	ActivityTaskCreated      = "task_created"
	ActivityTaskCompleted    = "task_completed"
	ActivityCommentAdded     = "comment_added"
	ActivityContractorReview = "contractor_reviewed"
)

type TeamActivity struct {
	Meta
	Type        string         `json:"type"`
	UserID      string         `json:"userId,omitempty"`
	UserName    string         `json:"userName,omitempty"`
	Action      string         `json:"action"`
	Description string         `json:"description,omitempty"`
	TargetType  string         `json:"targetType,omitempty"`
	TargetID    string         `json:"targetId,omitempty"`
	TargetName  string         `json:"targetName,omitempty"`
	Visible     bool           `json:"visible"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
