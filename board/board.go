// ABOUTME: Task board engine grouping tasks into status columns
// ABOUTME: Column order matches the dashboard's lane layout
package board

import "github.com/harperreed/refit/models"

// ColumnOrder is the fixed lane layout of the board.
var ColumnOrder = []string{
	models.TaskPending,
	models.TaskInProgress,
	models.TaskUnderReview,
	models.TaskOnHold,
	models.TaskBlocked,
	models.TaskCompleted,
	models.TaskCancelled,
}

// Column is one lane of the board.
type Column struct {
	Status string         `json:"status"`
	Tasks  []*models.Task `json:"tasks"`
}

// GroupByStatus buckets tasks into the fixed lanes, empty lanes included.
// Tasks with an unknown status are appended to a trailing extra lane rather
// than dropped.
func GroupByStatus(tasks []*models.Task) []Column {
	byStatus := make(map[string][]*models.Task)
	for _, task := range tasks {
		byStatus[task.Status] = append(byStatus[task.Status], task)
	}

	columns := make([]Column, 0, len(ColumnOrder))
	for _, status := range ColumnOrder {
		columns = append(columns, Column{Status: status, Tasks: byStatus[status]})
		delete(byStatus, status)
	}
	for status, rest := range byStatus {
		columns = append(columns, Column{Status: status, Tasks: rest})
	}
	return columns
}
