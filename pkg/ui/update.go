package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskflow/pkg/tracker"
	"taskflow/pkg/view"
)

// Update handles all incoming messages (required by Bubble Tea Model interface)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case loginDoneMsg:
		m.user = m.session.Login(m.pendingUsername)
		m.loggedIn = true
		m.loggingIn = false
		m.pendingUsername = ""
		m.usernameInput.Reset()
		m.mode = NormalMode
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case LoginMode:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				if m.loggingIn {
					break
				}
				username := m.usernameInput.Value()
				if err := tracker.ValidateUsername(username); err != nil {
					m.err = err
					break
				}
				m.err = nil
				m.pendingUsername = username
				m.loggingIn = true
				// Brief delay so the sign-in state is visible
				return m, tea.Tick(loginDelay, func(time.Time) tea.Msg {
					return loginDoneMsg{}
				})
			default:
				m.usernameInput, cmd = m.usernameInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.showCommands = !m.showCommands

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ToggleStatus):
				if task := m.selectedTask(); task != nil {
					task.Completed = !task.Completed
					m.store.Update(*task)
					m.refresh()
				}

			case key.Matches(msg, m.keyMap.AddTask):
				m.mode = AddMode
				m.err = nil
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditTask):
				if task := m.selectedTask(); task != nil {
					m.mode = EditMode
					m.err = nil
					m.editingTask = task
					m.populateForm(*task)
				}

			case key.Matches(msg, m.keyMap.DeleteTask):
				if task := m.selectedTask(); task != nil {
					m.mode = DeleteConfirmMode
					m.editingTask = task
				}

			case key.Matches(msg, m.keyMap.SearchTasks):
				m.mode = SearchMode
				m.searchInput.SetValue(m.searchTerm)
				m.searchInput.Focus()

			case key.Matches(msg, m.keyMap.ClearSearch):
				if m.searchTerm != "" {
					m.searchTerm = ""
					m.refresh()
				}

			case key.Matches(msg, m.keyMap.CycleFilter):
				m.filter = nextFilter(m.filter)
				m.refresh()

			case key.Matches(msg, m.keyMap.ToggleTheme):
				m.darkMode = !m.darkMode
				m.gateway.SaveDarkMode(m.darkMode)
				m.styles = stylesFor(m.darkMode)
				m.applyTableStyles()

			case key.Matches(msg, m.keyMap.Logout):
				m.session.Logout()
				m.user = tracker.User{}
				m.loggedIn = false
				m.searchTerm = ""
				m.filter = view.FilterAll
				m.visible = nil
				m.err = nil
				m.mode = LoginMode
				m.usernameInput.Reset()
				m.usernameInput.Focus()
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.err = nil
				m.resetInputs()
				m.editingTask = nil

			case "tab", "shift+tab":
				m.focusNextInput()

			case "enter":
				if m.activeInput == 4 { // Submit on enter from the last field (due date)
					m.submitForm()
				} else {
					m.focusNextInput()
				}
			}

			switch m.activeInput {
			case 0:
				m.titleInput, cmd = m.titleInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.descInput, cmd = m.descInput.Update(msg)
				cmds = append(cmds, cmd)
			case 2:
				m.categoryInput, cmd = m.categoryInput.Update(msg)
				cmds = append(cmds, cmd)
			case 3:
				m.priorityInput, cmd = m.priorityInput.Update(msg)
				cmds = append(cmds, cmd)
			case 4:
				m.dueDateInput, cmd = m.dueDateInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingTask != nil {
					m.store.Remove(m.editingTask.ID)
					m.refresh()
				}
				m.mode = NormalMode
				m.editingTask = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingTask = nil
			}

		case SearchMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.searchInput.Reset()

			case "enter":
				m.searchTerm = m.searchInput.Value()
				m.mode = NormalMode
				m.searchInput.Reset()
				m.refresh()

			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)

		if m.mode == NormalMode && !m.showCommands {
			m.table.SetHeight(msg.Height - 10)
		} else {
			m.table.SetHeight(msg.Height - 14)
		}
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func nextFilter(f view.Filter) view.Filter {
	for i, candidate := range view.Filters {
		if candidate == f {
			return view.Filters[(i+1)%len(view.Filters)]
		}
	}
	return view.FilterAll
}
