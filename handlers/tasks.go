// ABOUTME: Task MCP tool handlers
// ABOUTME: Implements add_task, task_board, set_task_status, and suggest_assignees tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/board"
	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type TaskHandlers struct {
	store *store.Store
}

func NewTaskHandlers(s *store.Store) *TaskHandlers {
	return &TaskHandlers{store: s}
}

type AddTaskInput struct {
	ProjectID      string   `json:"project_id" jsonschema:"Project ID (required)"`
	PhaseID        string   `json:"phase_id,omitempty" jsonschema:"Phase within the project"`
	Title          string   `json:"title" jsonschema:"Task title (required)"`
	Description    string   `json:"description,omitempty" jsonschema:"Longer task description"`
	Priority       string   `json:"priority,omitempty" jsonschema:"Priority (low, medium, high, urgent)"`
	AssigneeID     string   `json:"assignee_id,omitempty" jsonschema:"Team member to assign"`
	RequiredSkills []string `json:"required_skills,omitempty" jsonschema:"Skills the task needs"`
	EstimatedHours float64  `json:"estimated_hours,omitempty" jsonschema:"Estimated effort in hours"`
	DueDate        string   `json:"due_date,omitempty" jsonschema:"Due date (YYYY-MM-DD)"`
}

type TaskOutput struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	PhaseID    string `json:"phase_id,omitempty"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Priority   string `json:"priority,omitempty"`
	AssigneeID string `json:"assignee_id,omitempty"`
	Progress   int    `json:"progress"`
}

func taskToOutput(t *models.Task) TaskOutput {
	return TaskOutput{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		PhaseID:    t.PhaseID,
		Title:      t.Title,
		Status:     t.Status,
		Priority:   t.Priority,
		AssigneeID: t.AssigneeID,
		Progress:   t.ProgressPercent(),
	}
}

func (h *TaskHandlers) AddTask(_ context.Context, request *mcp.CallToolRequest, input AddTaskInput) (*mcp.CallToolResult, TaskOutput, error) {
	if input.ProjectID == "" {
		return nil, TaskOutput{}, fmt.Errorf("project_id is required")
	}
	if input.Title == "" {
		return nil, TaskOutput{}, fmt.Errorf("title is required")
	}
	if input.Priority != "" && !models.ValidPriority(input.Priority) {
		return nil, TaskOutput{}, fmt.Errorf("invalid priority %q", input.Priority)
	}

	t := &models.Task{
		ProjectID:      input.ProjectID,
		PhaseID:        input.PhaseID,
		Title:          input.Title,
		Description:    input.Description,
		Priority:       input.Priority,
		AssigneeID:     input.AssigneeID,
		RequiredSkills: input.RequiredSkills,
		EstimatedHours: input.EstimatedHours,
	}
	if input.DueDate != "" {
		due, err := time.Parse("2006-01-02", input.DueDate)
		if err != nil {
			return nil, TaskOutput{}, fmt.Errorf("invalid due_date: %w", err)
		}
		t.DueDate = &due
	}
	if !db.CreateTask(h.store, t) {
		return nil, TaskOutput{}, fmt.Errorf("failed to create task")
	}

	db.LogActivity(h.store, &models.TeamActivity{
		Type:       models.ActivityTaskCreated,
		Action:     "created task",
		TargetType: "task",
		TargetID:   t.ID,
		TargetName: t.Title,
	})
	return nil, taskToOutput(t), nil
}

type TaskBoardInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"Limit the board to one project"`
}

type BoardColumnOutput struct {
	Status string       `json:"status"`
	Tasks  []TaskOutput `json:"tasks"`
}

type TaskBoardOutput struct {
	Columns []BoardColumnOutput `json:"columns"`
}

func (h *TaskHandlers) TaskBoard(_ context.Context, request *mcp.CallToolRequest, input TaskBoardInput) (*mcp.CallToolResult, TaskBoardOutput, error) {
	var tasks []*models.Task
	if input.ProjectID != "" {
		tasks = db.TasksByProject(h.store, input.ProjectID)
	} else {
		tasks = db.AllTasks(h.store)
	}

	var out TaskBoardOutput
	for _, col := range board.GroupByStatus(tasks) {
		outCol := BoardColumnOutput{Status: col.Status, Tasks: make([]TaskOutput, len(col.Tasks))}
		for i, t := range col.Tasks {
			outCol.Tasks[i] = taskToOutput(t)
		}
		out.Columns = append(out.Columns, outCol)
	}
	return nil, out, nil
}

type SetTaskStatusInput struct {
	TaskID string `json:"task_id" jsonschema:"Task ID (required)"`
	Status string `json:"status" jsonschema:"New task status (required)"`
}

func (h *TaskHandlers) SetTaskStatus(_ context.Context, request *mcp.CallToolRequest, input SetTaskStatusInput) (*mcp.CallToolResult, TaskOutput, error) {
	if input.TaskID == "" {
		return nil, TaskOutput{}, fmt.Errorf("task_id is required")
	}
	if !models.ValidTaskStatus(input.Status) {
		return nil, TaskOutput{}, fmt.Errorf("invalid status %q", input.Status)
	}

	if !db.SetTaskStatus(h.store, input.TaskID, input.Status, time.Now()) {
		return nil, TaskOutput{}, fmt.Errorf("task not found")
	}

	if input.Status == models.TaskCompleted {
		t, _ := db.GetTask(h.store, input.TaskID)
		db.LogActivity(h.store, &models.TeamActivity{
			Type:       models.ActivityTaskCompleted,
			Action:     "completed task",
			TargetType: "task",
			TargetID:   t.ID,
			TargetName: t.Title,
		})
	}

	t, _ := db.GetTask(h.store, input.TaskID)
	return nil, taskToOutput(t), nil
}

type SuggestAssigneesInput struct {
	TaskID string `json:"task_id" jsonschema:"Task to find assignees for (required)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of suggestions (default 5)"`
}

type CandidateOutput struct {
	MemberID             string  `json:"member_id"`
	Name                 string  `json:"name"`
	Score                float64 `json:"score"`
	SkillMatch           float64 `json:"skill_match"`
	ProjectedUtilization float64 `json:"projected_utilization"`
	WouldBeOverloaded    bool    `json:"would_be_overloaded"`
}

type SuggestAssigneesOutput struct {
	Candidates []CandidateOutput `json:"candidates"`
}

func (h *TaskHandlers) SuggestAssignees(_ context.Context, request *mcp.CallToolRequest, input SuggestAssigneesInput) (*mcp.CallToolResult, SuggestAssigneesOutput, error) {
	if input.TaskID == "" {
		return nil, SuggestAssigneesOutput{}, fmt.Errorf("task_id is required")
	}
	task, ok := db.GetTask(h.store, input.TaskID)
	if !ok {
		return nil, SuggestAssigneesOutput{}, fmt.Errorf("task not found")
	}

	limit := input.Limit
	if limit == 0 {
		limit = 5
	}

	candidates := board.Suggest(db.AvailableTeamMembers(h.store), board.Request{
		RequiredSkills: task.RequiredSkills,
		EstimatedHours: task.EstimatedHours,
		Priority:       task.Priority,
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	var out SuggestAssigneesOutput
	for _, c := range candidates {
		out.Candidates = append(out.Candidates, CandidateOutput{
			MemberID:             c.Member.ID,
			Name:                 c.Member.Name,
			Score:                c.Score,
			SkillMatch:           c.SkillMatch,
			ProjectedUtilization: c.ProjectedUtilization,
			WouldBeOverloaded:    c.WouldBeOverloaded,
		})
	}
	return nil, out, nil
}
