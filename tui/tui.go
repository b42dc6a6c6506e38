// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Tabbed dashboard over projects, tasks, and payments
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/refit/state"
	"github.com/harperreed/refit/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewComment
)

// Tab represents the entity tab being viewed
type Tab int

const (
	TabProjects Tab = iota
	TabTasks
	TabPayments
)

var tabNames = map[Tab]string{
	TabProjects: "projects",
	TabTasks:    "tasks",
	TabPayments: "payments",
}

// Model is the main bubbletea model
type Model struct {
	store    *store.Store
	viewMode ViewMode
	tab      Tab

	// List view state
	selectedRow int

	// Comment composer state
	commentInput   textinput.Model
	commentTaskID  string
	suggestionIdx  int
	statusMessage  string

	// UI state
	width  int
	height int
}

// NewModel creates a new TUI model, restoring the persisted tab.
func NewModel(s *store.Store) Model {
	input := textinput.New()
	input.Placeholder = "Write a comment, @ to mention"
	input.CharLimit = 500

	m := Model{
		store:        s,
		viewMode:     ViewList,
		tab:          TabProjects,
		commentInput: input,
		width:        80,
		height:       24,
	}

	saved := state.Load(s)
	for tab, name := range tabNames {
		if name == saved.CurrentView {
			m.tab = tab
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewComment:
		return m.renderCommentView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.viewMode == ViewComment {
		return m.handleCommentKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		st := state.Load(m.store)
		st.CurrentView = tabNames[m.tab]
		state.Save(m.store, st)
		return m, tea.Quit
	case "tab", "right":
		m.tab = (m.tab + 1) % 3
		m.selectedRow = 0
		return m, nil
	case "shift+tab", "left":
		m.tab = (m.tab + 2) % 3
		m.selectedRow = 0
		return m, nil
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil
	case "down", "j":
		m.selectedRow++
		return m, nil
	case "c":
		if m.tab == TabTasks {
			return m.openCommentComposer()
		}
		return m, nil
	}
	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))
)
