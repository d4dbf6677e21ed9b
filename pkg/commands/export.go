package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskflow/pkg/tracker"
	"taskflow/pkg/view"
)

// HandleExportCommand processes -export commands. The exported set is
// the user's scoped task list in pipeline order.
func HandleExportCommand(store *tracker.TaskStore, username, filename, exportType string) {
	if err := tracker.ValidateUsername(username); err != nil {
		fmt.Printf("Error: %v (use -user)\n", err)
		os.Exit(1)
	}

	result := view.Apply(store.All(), tracker.UserIDFor(username), "", view.FilterAll, time.Now())
	tasks := result.Tasks

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling tasks to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		for _, task := range tasks {
			status := " "
			if task.Completed {
				status = "x"
			}
			line := fmt.Sprintf("- [%s] %s (%s, %s)", status, task.Title, task.Category, task.Priority)
			if task.DueDate != nil {
				line += fmt.Sprintf(" due %s", task.DueDate.Format("2006-01-02"))
			}
			lines = append(lines, line)
		}
		content = []byte(strings.Join(lines, "\n"))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d task(s) to %s\n", len(tasks), filename)
}
