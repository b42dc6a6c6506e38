// ABOUTME: Comment composer with live @mention autocomplete
// ABOUTME: Suggestions track the cursor; tab inserts the highlighted member
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/mention"
	"github.com/harperreed/refit/models"
)

func (m Model) openCommentComposer() (tea.Model, tea.Cmd) {
	tasks := db.AllTasks(m.store)
	if m.selectedRow >= len(tasks) {
		return m, nil
	}
	m.commentTaskID = tasks[m.selectedRow].ID
	m.commentInput.SetValue("")
	m.commentInput.Focus()
	m.suggestionIdx = 0
	m.viewMode = ViewComment
	return m, nil
}

func (m Model) handleCommentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	suggestions := m.currentSuggestions()

	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.commentInput.Blur()
		return m, nil
	case "enter":
		return m.submitComment()
	case "down", "ctrl+n":
		if len(suggestions) > 0 {
			m.suggestionIdx = (m.suggestionIdx + 1) % len(suggestions)
			return m, nil
		}
	case "up", "ctrl+p":
		if len(suggestions) > 0 {
			m.suggestionIdx = (m.suggestionIdx + len(suggestions) - 1) % len(suggestions)
			return m, nil
		}
	case "tab":
		if len(suggestions) > 0 {
			text, cursor := mention.Insert(m.commentInput.Value(), m.commentInput.Position(), suggestions[m.suggestionIdx])
			m.commentInput.SetValue(text)
			m.commentInput.SetCursor(cursor)
			m.suggestionIdx = 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	m.suggestionIdx = 0
	return m, cmd
}

// currentSuggestions returns roster matches for the mention query under the
// cursor, or nil when no @ is active.
func (m Model) currentSuggestions() []*models.TeamMember {
	query, _, ok := mention.ActiveQuery(m.commentInput.Value(), m.commentInput.Position())
	if !ok {
		return nil
	}
	return mention.Suggest(db.AllTeamMembers(m.store), query)
}

func (m Model) submitComment() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.commentInput.Value())
	if content == "" {
		m.viewMode = ViewList
		m.commentInput.Blur()
		return m, nil
	}

	authorID := ""
	if user, ok := db.CurrentUser(m.store); ok {
		authorID = user.ID
	}

	c := &models.Comment{
		EntityType: "task",
		EntityID:   m.commentTaskID,
		AuthorID:   authorID,
		Content:    content,
	}
	if db.AddComment(m.store, c) {
		m.statusMessage = fmt.Sprintf("Comment added (%d mention(s))", len(c.Mentions))
	} else {
		m.statusMessage = "Failed to add comment"
	}

	m.viewMode = ViewList
	m.commentInput.Blur()
	return m, nil
}

func (m Model) renderCommentView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("COMMENT"))
	s.WriteString("\n\n")
	s.WriteString(m.commentInput.View())
	s.WriteString("\n\n")

	if suggestions := m.currentSuggestions(); len(suggestions) > 0 {
		for i, member := range suggestions {
			line := fmt.Sprintf("  %s (%s)", member.Name, member.Role)
			if i == m.suggestionIdx {
				line = suggestionStyle.Render("> " + member.Name + " (" + member.Role + ")")
			}
			s.WriteString(line)
			s.WriteString("\n")
		}
	}

	s.WriteString(helpStyle.Render("enter: post  tab: insert mention  esc: cancel"))
	return s.String()
}
