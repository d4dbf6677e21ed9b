package tracker

import (
	"errors"
	"strings"
	"time"
)

// Priority of a task. The zero value is not valid; new tasks default
// to PriorityMedium in the form layer.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists all priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Weight returns the sort weight of a priority. Higher means more urgent.
func (p Priority) Weight() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Task is a single tracked task. ID, UserID and CreatedAt are assigned
// at creation and never change afterwards. The JSON tags define the
// persisted layout of the task-list slot.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	UserID      string     `json:"userId"`
}

// Overdue reports whether the task has a due date strictly before now
// and is not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.Completed
}

// User is the currently signed-in user. The ID is derived from the
// username (see UserIDFor), so the same username always reattaches to
// the same task set.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
}

// DefaultCategories are offered as suggestions when creating a task.
// Any free-form category text is accepted as well.
var DefaultCategories = []string{
	"Work", "Personal", "Health", "Learning",
	"Finance", "Shopping", "General", "Custom",
}

var (
	ErrEmptyTitle    = errors.New("task title must not be empty")
	ErrEmptyUsername = errors.New("username must not be empty")
)

// ValidateTitle rejects empty or whitespace-only titles. Callers must
// run this before constructing a task; the store itself does not
// re-validate.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateUsername rejects empty or whitespace-only usernames before
// login.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	return nil
}
