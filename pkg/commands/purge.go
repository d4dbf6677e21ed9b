package commands

import (
	"fmt"
	"strings"

	"taskflow/pkg/tracker"
)

// HandlePurgeCommand processes the -purge command, deleting the user's
// tasks that match the done/undone flags (or all of them when neither
// flag is set).
func HandlePurgeCommand(store *tracker.TaskStore, username string, doneOnly, undoneOnly, skipConfirm bool) {
	if err := tracker.ValidateUsername(username); err != nil {
		fmt.Printf("Error: %v (use -user)\n", err)
		return
	}

	userID := tracker.UserIDFor(username)
	var victims []string
	for _, task := range store.All() {
		if task.UserID != userID {
			continue
		}
		if doneOnly && !task.Completed {
			continue
		}
		if undoneOnly && task.Completed {
			continue
		}
		victims = append(victims, task.ID)
	}

	if len(victims) == 0 {
		fmt.Println("No matching tasks.")
		return
	}

	if !skipConfirm {
		fmt.Printf("Are you sure you want to delete %d task(s)? (y/N): ", len(victims))
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	for _, id := range victims {
		store.Remove(id)
	}

	fmt.Printf("Successfully deleted %d task(s)\n", len(victims))
}
