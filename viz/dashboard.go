// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII overview of projects, tasks, and payments
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/refit/board"
	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/schedule"
	"github.com/harperreed/refit/store"
)

type DashboardStats struct {
	// Board overview
	TasksByStatus map[string]int

	// Overall stats
	TotalLocations   int
	TotalProjects    int
	TotalContractors int
	TotalTasks       int

	// Money
	Payments schedule.Stats

	// Needs attention
	OverduePayments []OverdueItem
	StaleTasks      []StaleTask
}

type OverdueItem struct {
	Description string
	Amount      float64
	DaysLate    int
}

type StaleTask struct {
	Title     string
	DaysSince int
}

func GenerateDashboardStats(s *store.Store, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TasksByStatus: make(map[string]int),
	}

	stats.TotalLocations = len(db.AllLocations(s))
	stats.TotalProjects = len(db.AllProjects(s))
	stats.TotalContractors = len(db.AllContractors(s))

	tasks := db.AllTasks(s)
	stats.TotalTasks = len(tasks)
	for _, task := range tasks {
		stats.TasksByStatus[task.Status]++
	}

	// Find stale tasks (in progress, untouched for 14+ days)
	for _, task := range tasks {
		if task.Status != models.TaskInProgress {
			continue
		}
		daysSince := int(now.Sub(task.UpdatedAt).Hours() / 24)
		if daysSince > 14 {
			stats.StaleTasks = append(stats.StaleTasks, StaleTask{
				Title:     task.Title,
				DaysSince: daysSince,
			})
		}
	}

	stats.Payments = db.PaymentStats(s, now)
	for _, p := range db.OverduePayments(s, now) {
		stats.OverduePayments = append(stats.OverduePayments, OverdueItem{
			Description: p.Description,
			Amount:      p.Outstanding(),
			DaysLate:    int(now.Sub(p.DueDate).Hours() / 24),
		})
	}

	return stats
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  REFIT DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	// Task board overview
	out.WriteString("TASK BOARD\n")
	renderBoard(&out, stats.TasksByStatus)
	out.WriteString("\n")

	// Stats
	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  🏠 %d locations  🔨 %d projects  👷 %d contractors  ✅ %d tasks\n\n",
		stats.TotalLocations, stats.TotalProjects, stats.TotalContractors, stats.TotalTasks))

	// Money
	out.WriteString("PAYMENTS\n")
	out.WriteString(fmt.Sprintf("  planned %.2f  paid %.2f (%.0f%%)  pending %.2f\n\n",
		stats.Payments.TotalPlanned, stats.Payments.TotalPaid,
		stats.Payments.PaymentRate, stats.Payments.TotalPending))

	// Needs attention
	if len(stats.OverduePayments) > 0 || len(stats.StaleTasks) > 0 {
		out.WriteString("NEEDS ATTENTION\n")

		for _, item := range stats.OverduePayments {
			out.WriteString(fmt.Sprintf("  ⚠️  %.2f overdue by %d days - %s\n",
				item.Amount, item.DaysLate, item.Description))
		}

		if len(stats.StaleTasks) > 0 {
			out.WriteString(fmt.Sprintf("  ⚠️  %d tasks stale (no activity in 14+ days)\n", len(stats.StaleTasks)))
		}
	}

	return out.String()
}

func renderBoard(out *strings.Builder, counts map[string]int) {
	// Find max count for scaling
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, status := range board.ColumnOrder {
		n, exists := counts[status]
		if !exists {
			continue
		}

		barLength := (n * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-13s %s  %2d\n", status, bar, n))
	}
}
