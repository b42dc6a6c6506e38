// ABOUTME: Repository for tasks, their checklists, and status moves
// ABOUTME: Completing a task stamps CompletedAt; reopening clears it
package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func tasks(s *store.Store) *store.Collection[*models.Task] {
	return store.NewCollection[*models.Task](s, store.KeyTasks)
}

// CreateTask persists a new task. Status defaults to pending and priority to
// medium.
func CreateTask(s *store.Store, t *models.Task) bool {
	if t.Status == "" {
		t.Status = models.TaskPending
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	for i := range t.Checklist {
		if t.Checklist[i].ID == "" {
			t.Checklist[i].ID = uuid.New().String()
		}
	}
	return tasks(s).Append(t)
}

// GetTask returns the task with the given id.
func GetTask(s *store.Store, id string) (*models.Task, bool) {
	return tasks(s).Find(id)
}

// AllTasks returns every task.
func AllTasks(s *store.Store) []*models.Task {
	return tasks(s).All()
}

// UpdateTask applies a partial update to a task.
func UpdateTask(s *store.Store, id string, mutate func(*models.Task)) bool {
	return tasks(s).Update(id, mutate)
}

// DeleteTask removes a task. Other tasks' dependsOn references to it are
// left alone.
func DeleteTask(s *store.Store, id string) bool {
	return tasks(s).Delete(id)
}

// TasksByProject returns all tasks in a project.
func TasksByProject(s *store.Store, projectID string) []*models.Task {
	return tasks(s).Filter(func(t *models.Task) bool {
		return t.ProjectID == projectID
	})
}

// TasksByPhase returns all tasks attached to a project phase.
func TasksByPhase(s *store.Store, phaseID string) []*models.Task {
	return tasks(s).Filter(func(t *models.Task) bool {
		return t.PhaseID == phaseID
	})
}

// TasksByAssignee returns all tasks assigned to a team member.
func TasksByAssignee(s *store.Store, assigneeID string) []*models.Task {
	return tasks(s).Filter(func(t *models.Task) bool {
		return t.AssigneeID == assigneeID
	})
}

// TasksByStatus returns all tasks in the given status.
func TasksByStatus(s *store.Store, status string) []*models.Task {
	return tasks(s).Filter(func(t *models.Task) bool {
		return t.Status == status
	})
}

// SetTaskStatus moves a task between board lanes. Moving into completed
// stamps CompletedAt and sets progress to 100; moving back out clears the
// completion stamp.
func SetTaskStatus(s *store.Store, id, status string, now time.Time) bool {
	if !models.ValidTaskStatus(status) {
		return false
	}
	return tasks(s).Update(id, func(t *models.Task) {
		t.Status = status
		if status == models.TaskCompleted {
			at := now
			t.CompletedAt = &at
			t.Progress = 100
		} else {
			t.CompletedAt = nil
		}
	})
}

// AssignTask sets the task's assignee. An empty id unassigns it.
func AssignTask(s *store.Store, taskID, assigneeID string) bool {
	return tasks(s).Update(taskID, func(t *models.Task) {
		t.AssigneeID = assigneeID
	})
}

// AddChecklistItem appends an item to a task's checklist and returns the new
// item's id.
func AddChecklistItem(s *store.Store, taskID, text string) (string, bool) {
	id := uuid.New().String()
	ok := tasks(s).Update(taskID, func(t *models.Task) {
		t.Checklist = append(t.Checklist, models.ChecklistItem{ID: id, Text: text})
	})
	if !ok {
		return "", false
	}
	return id, true
}

// ToggleChecklistItem flips an item's done state. Returns false when either
// the task or the item does not exist.
func ToggleChecklistItem(s *store.Store, taskID, itemID string) bool {
	found := false
	ok := tasks(s).Update(taskID, func(t *models.Task) {
		for i := range t.Checklist {
			if t.Checklist[i].ID == itemID {
				t.Checklist[i].Done = !t.Checklist[i].Done
				found = true
				return
			}
		}
	})
	return ok && found
}

// RemoveChecklistItem deletes an item from a task's checklist.
func RemoveChecklistItem(s *store.Store, taskID, itemID string) bool {
	found := false
	ok := tasks(s).Update(taskID, func(t *models.Task) {
		for i := range t.Checklist {
			if t.Checklist[i].ID == itemID {
				t.Checklist = append(t.Checklist[:i], t.Checklist[i+1:]...)
				found = true
				return
			}
		}
	})
	return ok && found
}
