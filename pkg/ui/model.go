package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskflow/pkg/config"
	"taskflow/pkg/keymaps"
	"taskflow/pkg/tracker"
	"taskflow/pkg/view"
)

// InputMode represents the current input mode
type InputMode int

const (
	LoginMode InputMode = iota
	NormalMode
	AddMode
	EditMode
	DeleteConfirmMode
	SearchMode
)

// loginDoneMsg fires after the sign-in spinner delay. The delay is a
// presentation affectation only; the session manager itself is
// synchronous.
type loginDoneMsg struct{}

const loginDelay = time.Second

// Model represents the application state
type Model struct {
	store   *tracker.TaskStore
	session *tracker.SessionManager
	gateway *tracker.Gateway

	table   table.Model
	visible []tracker.Task
	counts  view.Counts

	user            tracker.User
	loggedIn        bool
	loggingIn       bool
	pendingUsername string

	searchTerm string
	filter     view.Filter

	darkMode bool
	styles   Styles
	keyMap   keymaps.KeyMap

	showCommands  bool
	width, height int
	err           error

	// Form state
	mode          InputMode
	usernameInput textinput.Model
	titleInput    textinput.Model
	descInput     textinput.Model
	categoryInput textinput.Model
	priorityInput textinput.Model
	dueDateInput  textinput.Model
	searchInput   textinput.Model
	activeInput   int

	// Edit/delete state
	editingTask *tracker.Task
}

// NewModel creates a new UI model wired to the core stores
func NewModel(store *tracker.TaskStore, session *tracker.SessionManager, gateway *tracker.Gateway, cfg config.Config) Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Pri", Width: 4},
		{Title: "Task", Width: 42},
		{Title: "Category", Width: 12},
		{Title: "Due", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	usernameInput := textinput.New()
	usernameInput.Placeholder = "Enter your username"
	usernameInput.Focus()
	usernameInput.Width = 30

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Description"
	descInput.Width = 40

	categoryInput := textinput.New()
	categoryInput.Placeholder = "Category (Work, Personal, ... or anything)"
	categoryInput.Width = 40

	priorityInput := textinput.New()
	priorityInput.Placeholder = "Priority (low, medium, high, urgent)"
	priorityInput.Width = 40

	dueDateInput := textinput.New()
	dueDateInput.Placeholder = "Due Date (YYYY-MM-DD, optional)"
	dueDateInput.Width = 40

	searchInput := textinput.New()
	searchInput.Placeholder = "Search by title, description or category"
	searchInput.Width = 40

	m := Model{
		store:         store,
		session:       session,
		gateway:       gateway,
		table:         t,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		mode:          LoginMode,
		filter:        view.FilterAll,
		usernameInput: usernameInput,
		titleInput:    titleInput,
		descInput:     descInput,
		categoryInput: categoryInput,
		priorityInput: priorityInput,
		dueDateInput:  dueDateInput,
		searchInput:   searchInput,
	}

	m.darkMode = gateway.LoadDarkMode()
	m.styles = stylesFor(m.darkMode)
	m.applyTableStyles()

	// Restore a persisted session so a reload lands back in the task view
	if user, ok := session.Current(); ok {
		m.user = user
		m.loggedIn = true
		m.mode = NormalMode
		m.refresh()
	}

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// applyTableStyles re-renders the table chrome for the active theme
func (m *Model) applyTableStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.SelectedBgColor)).
		Bold(true)
	m.table.SetStyles(s)
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.categoryInput.Reset()
	m.priorityInput.Reset()
	m.dueDateInput.Reset()

	m.activeInput = 0
	m.titleInput.Focus()
	m.descInput.Blur()
	m.categoryInput.Blur()
	m.priorityInput.Blur()
	m.dueDateInput.Blur()
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	inputs := []*textinput.Model{
		&m.titleInput, &m.descInput, &m.categoryInput, &m.priorityInput, &m.dueDateInput,
	}
	m.activeInput = (m.activeInput + 1) % len(inputs)
	for i, input := range inputs {
		if i == m.activeInput {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}
