// ABOUTME: Tabbed list view rendering with bubbles tables
// ABOUTME: One table per tab: projects, task board, payments
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/refit/db"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("REFIT"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	if m.statusMessage != "" {
		s.WriteString(m.statusMessage)
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("tab: switch  j/k: move  c: comment on task  q: quit"))

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Projects", "Tasks", "Payments"}
	var rendered []string

	for i, tab := range tabs {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.tab {
	case TabProjects:
		return m.renderProjectsTable()
	case TabTasks:
		return m.renderTasksTable()
	case TabPayments:
		return m.renderPaymentsTable()
	}
	return ""
}

func (m Model) tableHeight() int {
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) renderProjectsTable() string {
	projects := db.AllProjects(m.store)

	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Status", Width: 14},
		{Title: "Phases", Width: 8},
		{Title: "Remaining", Width: 12},
	}

	var rows []table.Row
	for _, p := range projects {
		rows = append(rows, table.Row{
			p.Name,
			p.Status,
			fmt.Sprintf("%d", len(p.Phases)),
			fmt.Sprintf("%.2f", p.Budget.Remaining),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}
	return t.View()
}

func (m Model) renderTasksTable() string {
	tasks := db.AllTasks(m.store)

	columns := []table.Column{
		{Title: "Title", Width: 30},
		{Title: "Status", Width: 14},
		{Title: "Priority", Width: 10},
		{Title: "Progress", Width: 10},
	}

	var rows []table.Row
	for _, t := range tasks {
		rows = append(rows, table.Row{
			t.Title,
			t.Status,
			t.Priority,
			fmt.Sprintf("%d%%", t.ProgressPercent()),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}
	return t.View()
}

func (m Model) renderPaymentsTable() string {
	payments := db.AllPayments(m.store)
	now := time.Now()

	columns := []table.Column{
		{Title: "Description", Width: 26},
		{Title: "Amount", Width: 10},
		{Title: "Paid", Width: 10},
		{Title: "Due", Width: 12},
		{Title: "Status", Width: 10},
	}

	var rows []table.Row
	for _, p := range payments {
		due := "-"
		if !p.DueDate.IsZero() {
			due = p.DueDate.Format("2006-01-02")
		}
		status := p.Status
		if p.OverdueAsOf(now) {
			status = "OVERDUE"
		}
		rows = append(rows, table.Row{
			p.Description,
			fmt.Sprintf("%.2f", p.Amount),
			fmt.Sprintf("%.2f", p.PaidAmount),
			due,
			status,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}
	return t.View()
}
