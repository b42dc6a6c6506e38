// ABOUTME: Tests for task board grouping
// ABOUTME: Ensures lanes stay ordered and no task is dropped
package board

import (
	"testing"

	"github.com/harperreed/refit/models"
)

func TestGroupByStatus(t *testing.T) {
	tasks := []*models.Task{
		{Title: "a", Status: models.TaskPending},
		{Title: "b", Status: models.TaskInProgress},
		{Title: "c", Status: models.TaskPending},
		{Title: "d", Status: models.TaskCompleted},
	}

	columns := GroupByStatus(tasks)
	if len(columns) != len(ColumnOrder) {
		t.Fatalf("Expected %d columns, got %d", len(ColumnOrder), len(columns))
	}

	byStatus := make(map[string]int)
	total := 0
	for i, col := range columns {
		if col.Status != ColumnOrder[i] {
			t.Errorf("Column %d: expected %s, got %s", i, ColumnOrder[i], col.Status)
		}
		byStatus[col.Status] = len(col.Tasks)
		total += len(col.Tasks)
	}

	if byStatus[models.TaskPending] != 2 {
		t.Errorf("Expected 2 pending tasks, got %d", byStatus[models.TaskPending])
	}
	if total != len(tasks) {
		t.Errorf("Expected all %d tasks placed, got %d", len(tasks), total)
	}
}

func TestGroupByStatusUnknownStatusKept(t *testing.T) {
	tasks := []*models.Task{{Title: "odd", Status: "archived"}}
	columns := GroupByStatus(tasks)

	if len(columns) != len(ColumnOrder)+1 {
		t.Fatalf("Expected an extra lane for the unknown status, got %d columns", len(columns))
	}
	last := columns[len(columns)-1]
	if last.Status != "archived" || len(last.Tasks) != 1 {
		t.Errorf("Unknown-status task was dropped: %+v", last)
	}
}
