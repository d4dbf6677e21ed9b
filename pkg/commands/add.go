package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"taskflow/pkg/tracker"
)

// HandleAddTask processes the -add command
func HandleAddTask(store *tracker.TaskStore, username, taskText, dateStr, priorityStr, categoryStr string) {
	if err := tracker.ValidateUsername(username); err != nil {
		fmt.Printf("Error: %v (use -user)\n", err)
		os.Exit(1)
	}
	if err := tracker.ValidateTitle(taskText); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var dueDate *time.Time
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		dueDate = &parsed
	}

	priority := tracker.PriorityMedium
	if priorityStr != "" {
		priority = parsePriority(priorityStr)
	}

	category := categoryStr
	if category == "" {
		category = "General"
	}

	task := tracker.Task{
		ID:        tracker.NewTaskID(),
		Title:     strings.TrimSpace(taskText),
		Completed: false,
		CreatedAt: time.Now(),
		DueDate:   dueDate,
		Priority:  priority,
		Category:  category,
		UserID:    tracker.UserIDFor(username),
	}

	store.Add(task)
	fmt.Printf("Task added for %s: %s\n", username, task.Title)
}

func parsePriority(s string) tracker.Priority {
	for _, p := range tracker.Priorities {
		if string(p) == strings.ToLower(strings.TrimSpace(s)) {
			return p
		}
	}
	fmt.Printf("Unknown priority %q (use low, medium, high or urgent)\n", s)
	os.Exit(1)
	return ""
}
