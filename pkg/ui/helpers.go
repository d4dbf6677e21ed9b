package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"taskflow/pkg/tracker"
	"taskflow/pkg/view"
)

// refresh re-derives the visible task list and counts from the full
// collection. Called after every mutation and every filter or search
// change.
func (m *Model) refresh() {
	result := view.Apply(m.store.All(), m.user.ID, m.searchTerm, m.filter, time.Now())
	m.visible = result.Tasks
	m.counts = result.Counts

	now := time.Now()
	tableRows := []table.Row{}
	for _, task := range m.visible {
		status := "[ ]"
		if task.Completed {
			status = "[x]"
		}

		due := ""
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
			if task.Overdue(now) {
				due += " !"
			}
		}

		tableRows = append(tableRows, table.Row{
			status,
			priorityIcon(task.Priority),
			task.Title,
			task.Category,
			due,
		})
	}
	m.table.SetRows(tableRows)

	if cursor := m.table.Cursor(); cursor >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

// selectedTask returns the task under the cursor, nil when the list is
// empty.
func (m *Model) selectedTask() *tracker.Task {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return nil
	}
	task := m.visible[cursor]
	return &task
}

// submitForm processes the form data based on the current mode
func (m *Model) submitForm() {
	title := strings.TrimSpace(m.titleInput.Value())
	if err := tracker.ValidateTitle(title); err != nil {
		m.err = err
		return
	}

	desc := strings.TrimSpace(m.descInput.Value())

	category := strings.TrimSpace(m.categoryInput.Value())
	if category == "" {
		category = "General"
	}

	priority, err := parsePriorityInput(m.priorityInput.Value())
	if err != nil {
		m.err = err
		return
	}

	var dueDate *time.Time
	if raw := strings.TrimSpace(m.dueDateInput.Value()); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			m.err = fmt.Errorf("invalid date format: use YYYY-MM-DD")
			return
		}
		dueDate = &parsed
	}

	switch m.mode {
	case AddMode:
		m.store.Add(tracker.Task{
			ID:          tracker.NewTaskID(),
			Title:       title,
			Description: desc,
			Completed:   false,
			CreatedAt:   time.Now(),
			DueDate:     dueDate,
			Priority:    priority,
			Category:    category,
			UserID:      m.user.ID,
		})

	case EditMode:
		if m.editingTask != nil {
			updated := *m.editingTask
			updated.Title = title
			updated.Description = desc
			updated.Priority = priority
			updated.Category = category
			updated.DueDate = dueDate
			m.store.Update(updated)
		}
	}

	m.err = nil
	m.mode = NormalMode
	m.resetInputs()
	m.editingTask = nil
	m.refresh()
}

// populateForm fills the form with an existing task's values for editing
func (m *Model) populateForm(task tracker.Task) {
	m.resetInputs()
	m.titleInput.SetValue(task.Title)
	m.descInput.SetValue(task.Description)
	m.categoryInput.SetValue(task.Category)
	m.priorityInput.SetValue(string(task.Priority))
	if task.DueDate != nil {
		m.dueDateInput.SetValue(task.DueDate.Format("2006-01-02"))
	}
}

func parsePriorityInput(raw string) (tracker.Priority, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return tracker.PriorityMedium, nil
	}
	for _, p := range tracker.Priorities {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q: use low, medium, high or urgent", raw)
}

func priorityIcon(p tracker.Priority) string {
	switch p {
	case tracker.PriorityUrgent:
		return "!!!"
	case tracker.PriorityHigh:
		return "●●●"
	case tracker.PriorityMedium:
		return "●●"
	default:
		return "●"
	}
}

func filterLabel(f view.Filter) string {
	switch f {
	case view.FilterCompleted:
		return "Completed"
	case view.FilterPending:
		return "Pending"
	case view.FilterOverdue:
		return "Overdue"
	}
	return "All"
}

func (m *Model) filterCount(f view.Filter) int {
	switch f {
	case view.FilterCompleted:
		return m.counts.Completed
	case view.FilterPending:
		return m.counts.Pending
	case view.FilterOverdue:
		return m.counts.Overdue
	}
	return m.counts.All
}
