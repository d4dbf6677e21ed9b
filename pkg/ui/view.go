package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskflow/pkg/view"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case LoginMode:
		sb.WriteString(m.renderLogin())

	case NormalMode:
		titleBar := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Padding(0, 1).
			Render(fmt.Sprintf(" TaskFlow — %s ", m.user.Username))
		sb.WriteString(titleBar)
		sb.WriteString("\n\n")

		sb.WriteString(m.renderStats())
		sb.WriteString("\n")
		sb.WriteString(m.renderFilterBar())
		sb.WriteString("\n\n")

		sb.WriteString(m.table.View())
		sb.WriteString("\n")

		info := fmt.Sprintf("Showing %d of %d task(s)", len(m.visible), m.counts.All)
		if m.searchTerm != "" {
			info += fmt.Sprintf(" (search: %q)", m.searchTerm)
		}
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render(info))
		sb.WriteString("\n")

		if m.showCommands {
			commands := []string{
				m.keyMap.QuitApp.Help().Key + ": quit",
				m.keyMap.ToggleStatus.Help().Key + ": toggle completed",
				m.keyMap.AddTask.Help().Key + ": add",
				m.keyMap.EditTask.Help().Key + ": edit",
				m.keyMap.DeleteTask.Help().Key + ": delete",
				m.keyMap.SearchTasks.Help().Key + ": search",
				m.keyMap.CycleFilter.Help().Key + ": filter",
				m.keyMap.ToggleTheme.Help().Key + ": theme",
				m.keyMap.Logout.Help().Key + ": log out",
			}
			sb.WriteString(m.statusBarStyle().Render(strings.Join(commands, " | ")))
		} else {
			sb.WriteString(m.statusBarStyle().Render(
				m.keyMap.ShowHelp.Help().Key + ": show commands"))
		}

	case AddMode:
		sb.WriteString(m.renderFormTitle(" Add New Task ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Tab: next field • Enter: submit • Esc: cancel"))

	case EditMode:
		sb.WriteString(m.renderFormTitle(" Edit Task ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Tab: next field • Enter: submit • Esc: cancel"))

	case DeleteConfirmMode:
		sb.WriteString(m.renderFormTitle(" Delete Task ", m.styles.ErrorColor))
		sb.WriteString("\n\n")
		if m.editingTask != nil {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.editingTask.Title))
			sb.WriteString(fmt.Sprintf("Category: %s\n", m.editingTask.Category))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case SearchMode:
		sb.WriteString(m.renderFormTitle(" Search Tasks ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Enter: apply • Esc: cancel"))
	}

	if m.err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return sb.String()
}

func (m Model) renderLogin() string {
	var sb strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Render("TaskFlow")
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.MutedTextColor)).
		Render("Professional Task Management"))
	sb.WriteString("\n\n")

	sb.WriteString("Username:\n")
	sb.WriteString(m.usernameInput.View())
	sb.WriteString("\n\n")

	if m.loggingIn {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Render("Signing in..."))
	} else {
		sb.WriteString(m.statusBarStyle().Render("Enter: sign in • Ctrl+C: quit"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.MutedTextColor)).
		Render("No registration required. Tasks are saved locally and persist across sessions."))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		Padding(1, 3)
	return card.Render(sb.String())
}

func (m Model) renderStats() string {
	stats := fmt.Sprintf("Total %d • Completed %d • Pending %d • Overdue %d • %d%% done",
		m.counts.All, m.counts.Completed, m.counts.Pending, m.counts.Overdue,
		m.counts.CompletionRate())
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render(stats)
}

// renderFilterBar draws one badge per status filter with its count,
// highlighting the active one. Counts always cover the user's full
// task set, not the current search.
func (m Model) renderFilterBar() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.SelectedBgColor)).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BadgeTextColor)).
		Background(lipgloss.Color(m.styles.BadgeBgColor)).
		Padding(0, 1)

	var badges []string
	for _, f := range view.Filters {
		label := fmt.Sprintf("%s (%d)", filterLabel(f), m.filterCount(f))
		if f == m.filter {
			badges = append(badges, active.Render(label))
		} else {
			badges = append(badges, inactive.Render(label))
		}
	}
	return strings.Join(badges, " ")
}

// renderForm renders the input form for adding/editing tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		Padding(1, 2)

	sb.WriteString("Title:\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Description:\n")
	sb.WriteString(m.descInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Category:\n")
	sb.WriteString(m.categoryInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Priority:\n")
	sb.WriteString(m.priorityInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Due Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dueDateInput.View())

	return formStyle.Render(sb.String())
}

func (m Model) renderFormTitle(title, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(title)
}

func (m Model) statusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BadgeTextColor)).
		Background(lipgloss.Color(m.styles.BadgeBgColor)).
		Padding(0, 1)
}
