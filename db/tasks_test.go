// ABOUTME: Tests for the task repository
// ABOUTME: Covers status moves, completion stamps, and checklist edits
package db

import (
	"testing"
	"time"

	"github.com/harperreed/refit/models"
)

func TestCreateTaskDefaults(t *testing.T) {
	s := setupTestStore(t)

	task := &models.Task{ProjectID: "p1", Title: "Demo walls"}
	if !CreateTask(s, task) {
		t.Fatal("CreateTask failed")
	}
	if task.Status != models.TaskPending {
		t.Errorf("Expected default status pending, got %q", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("Expected default priority medium, got %q", task.Priority)
	}
}

func TestSetTaskStatusCompletionStamp(t *testing.T) {
	s := setupTestStore(t)

	task := &models.Task{ProjectID: "p1", Title: "Install flooring", Progress: 40}
	CreateTask(s, task)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if !SetTaskStatus(s, task.ID, models.TaskCompleted, now) {
		t.Fatal("SetTaskStatus to completed failed")
	}
	got, _ := GetTask(s, task.ID)
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Errorf("Expected CompletedAt %v, got %v", now, got.CompletedAt)
	}
	if got.Progress != 100 {
		t.Errorf("Expected progress 100 on completion, got %d", got.Progress)
	}

	// Reopening clears the stamp
	if !SetTaskStatus(s, task.ID, models.TaskInProgress, now.Add(time.Hour)) {
		t.Fatal("SetTaskStatus back to in_progress failed")
	}
	got, _ = GetTask(s, task.ID)
	if got.CompletedAt != nil {
		t.Errorf("Expected CompletedAt cleared on reopen, got %v", got.CompletedAt)
	}
}

func TestSetTaskStatusRejectsUnknownStatus(t *testing.T) {
	s := setupTestStore(t)

	task := &models.Task{ProjectID: "p1", Title: "Paint"}
	CreateTask(s, task)

	if SetTaskStatus(s, task.ID, "done-ish", time.Now()) {
		t.Error("Expected unknown status to be rejected")
	}
}

func TestChecklistLifecycle(t *testing.T) {
	s := setupTestStore(t)

	task := &models.Task{ProjectID: "p1", Title: "Electrical rough-in"}
	CreateTask(s, task)

	id1, ok := AddChecklistItem(s, task.ID, "Run conduit")
	if !ok {
		t.Fatal("AddChecklistItem failed")
	}
	id2, _ := AddChecklistItem(s, task.ID, "Pull wire")

	if !ToggleChecklistItem(s, task.ID, id1) {
		t.Fatal("ToggleChecklistItem failed")
	}
	got, _ := GetTask(s, task.ID)
	if got.ProgressPercent() != 50 {
		t.Errorf("Expected checklist-derived progress 50, got %d", got.ProgressPercent())
	}

	if !RemoveChecklistItem(s, task.ID, id2) {
		t.Fatal("RemoveChecklistItem failed")
	}
	got, _ = GetTask(s, task.ID)
	if len(got.Checklist) != 1 {
		t.Errorf("Expected 1 checklist item after removal, got %d", len(got.Checklist))
	}

	if ToggleChecklistItem(s, task.ID, "missing") {
		t.Error("Expected toggle of unknown item to return false")
	}
}

func TestTasksByAssignee(t *testing.T) {
	s := setupTestStore(t)

	a := &models.Task{ProjectID: "p1", Title: "A"}
	b := &models.Task{ProjectID: "p1", Title: "B"}
	CreateTask(s, a)
	CreateTask(s, b)

	if !AssignTask(s, a.ID, "member-1") {
		t.Fatal("AssignTask failed")
	}

	mine := TasksByAssignee(s, "member-1")
	if len(mine) != 1 || mine[0].ID != a.ID {
		t.Errorf("Expected only task A for member-1, got %d tasks", len(mine))
	}

	// Unassign
	AssignTask(s, a.ID, "")
	if got := TasksByAssignee(s, "member-1"); len(got) != 0 {
		t.Errorf("Expected no tasks after unassign, got %d", len(got))
	}
}
