package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"taskflow/pkg/tracker"
)

// HandleImportCommand processes -import commands. The file must hold a
// JSON array of tasks (the -export json format). Imported tasks get
// fresh identifiers and are assigned to the given user regardless of
// the userId recorded in the file.
func HandleImportCommand(store *tracker.TaskStore, username, filename string) {
	if err := tracker.ValidateUsername(username); err != nil {
		fmt.Printf("Error: %v (use -user)\n", err)
		os.Exit(1)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	var tasks []tracker.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	userID := tracker.UserIDFor(username)
	var tasksAdded int

	for _, task := range tasks {
		if err := tracker.ValidateTitle(task.Title); err != nil {
			fmt.Printf("Skipping task without title\n")
			continue
		}

		task.ID = tracker.NewTaskID()
		task.UserID = userID
		if task.CreatedAt.IsZero() {
			task.CreatedAt = time.Now()
		}
		if task.Priority.Weight() == 0 {
			task.Priority = tracker.PriorityMedium
		}
		if task.Category == "" {
			task.Category = "General"
		}

		store.Add(task)
		tasksAdded++
	}

	fmt.Printf("Successfully imported %d task(s) from %s\n", tasksAdded, filename)
}
