// ABOUTME: Task CLI commands
// ABOUTME: Task creation, board display, and assignment suggestions
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/harperreed/refit/board"
	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

// AddTaskCommand creates a task.
func AddTaskCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	project := fs.String("project", "", "Project ID (required)")
	phase := fs.String("phase", "", "Phase ID")
	title := fs.String("title", "", "Task title (required)")
	priority := fs.String("priority", "", "Priority (low, medium, high, urgent)")
	skills := fs.String("skills", "", "Comma-separated required skills")
	hours := fs.Float64("hours", 0, "Estimated hours")
	_ = fs.Parse(args)

	if *project == "" || *title == "" {
		return fmt.Errorf("--project and --title are required")
	}
	if *priority != "" && !models.ValidPriority(*priority) {
		return fmt.Errorf("invalid priority %q", *priority)
	}

	t := &models.Task{
		ProjectID:      *project,
		PhaseID:        *phase,
		Title:          *title,
		Priority:       *priority,
		EstimatedHours: *hours,
	}
	if *skills != "" {
		for _, skill := range strings.Split(*skills, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				t.RequiredSkills = append(t.RequiredSkills, skill)
			}
		}
	}
	if !db.CreateTask(s, t) {
		return fmt.Errorf("failed to create task")
	}

	db.LogActivity(s, &models.TeamActivity{
		Type:       models.ActivityTaskCreated,
		Action:     "created task",
		TargetType: "task",
		TargetID:   t.ID,
		TargetName: t.Title,
	})

	fmt.Printf("✓ Task created: %s (ID: %s)\n", t.Title, t.ID)
	return nil
}

// BoardCommand prints the task board, one lane per status.
func BoardCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("board", flag.ExitOnError)
	project := fs.String("project", "", "Limit the board to one project")
	_ = fs.Parse(args)

	var tasks []*models.Task
	if *project != "" {
		tasks = db.TasksByProject(s, *project)
	} else {
		tasks = db.AllTasks(s)
	}

	for _, col := range board.GroupByStatus(tasks) {
		fmt.Printf("%s (%d)\n", strings.ToUpper(col.Status), len(col.Tasks))
		for _, t := range col.Tasks {
			assignee := ""
			if t.AssigneeID != "" {
				if m, ok := db.GetTeamMember(s, t.AssigneeID); ok {
					assignee = " @" + m.Name
				}
			}
			fmt.Printf("  [%3d%%] %s%s\n", t.ProgressPercent(), t.Title, assignee)
		}
	}
	return nil
}

// MoveTaskCommand moves a task to a new status lane.
func MoveTaskCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("move-task", flag.ExitOnError)
	task := fs.String("task", "", "Task ID (required)")
	status := fs.String("status", "", "New status (required)")
	_ = fs.Parse(args)

	if *task == "" || *status == "" {
		return fmt.Errorf("--task and --status are required")
	}
	if !models.ValidTaskStatus(*status) {
		return fmt.Errorf("invalid status %q", *status)
	}

	if !db.SetTaskStatus(s, *task, *status, time.Now()) {
		return fmt.Errorf("task not found")
	}

	if *status == models.TaskCompleted {
		t, _ := db.GetTask(s, *task)
		db.LogActivity(s, &models.TeamActivity{
			Type:       models.ActivityTaskCompleted,
			Action:     "completed task",
			TargetType: "task",
			TargetID:   t.ID,
			TargetName: t.Title,
		})
	}

	fmt.Printf("✓ Task moved to %s\n", *status)
	return nil
}

// SuggestCommand ranks team members for a task.
func SuggestCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	task := fs.String("task", "", "Task ID (required)")
	_ = fs.Parse(args)

	if *task == "" {
		return fmt.Errorf("--task is required")
	}
	t, ok := db.GetTask(s, *task)
	if !ok {
		return fmt.Errorf("task not found")
	}

	candidates := board.Suggest(db.AvailableTeamMembers(s), board.Request{
		RequiredSkills: t.RequiredSkills,
		EstimatedHours: t.EstimatedHours,
		Priority:       t.Priority,
	})
	if len(candidates) == 0 {
		fmt.Println("No available team members")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSCORE\tSKILLS\tPROJECTED UTIL\tNOTE")
	_, _ = fmt.Fprintln(w, "----\t-----\t------\t--------------\t----")

	for _, c := range candidates {
		note := ""
		if c.WouldBeOverloaded {
			note = "would overload"
		}
		_, _ = fmt.Fprintf(w, "%s\t%.1f\t%.0f%%\t%.0f%%\t%s\n",
			c.Member.Name, c.Score, c.SkillMatch, c.ProjectedUtilization, note)
	}
	_ = w.Flush()
	return nil
}
