package cli

import (
	"flag"

	"taskflow/pkg/commands"
	"taskflow/pkg/tracker"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// User scope for one-shot commands
	User string

	// Task operations
	AddTask      string
	DateFlag     string
	PriorityFlag string
	CategoryFlag string

	// Purge operations
	PurgeFlag  bool
	YesFlag    bool
	DoneFlag   bool
	UndoneFlag bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// User scope
	flag.StringVar(&args.User, "user", "", "Username owning the tasks for one-shot commands")

	// Task operations
	flag.StringVar(&args.AddTask, "add", "", "Add a new task")
	flag.StringVar(&args.DateFlag, "date", "", "Due date for task (YYYY-MM-DD format)")
	flag.StringVar(&args.PriorityFlag, "priority", "", "Priority for task (low, medium, high, urgent)")
	flag.StringVar(&args.CategoryFlag, "category", "", "Category for task")

	// Purge operations
	flag.BoolVar(&args.PurgeFlag, "purge", false, "Delete the user's tasks")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")
	flag.BoolVar(&args.DoneFlag, "done", false, "Restrict purge to completed tasks")
	flag.BoolVar(&args.UndoneFlag, "undone", false, "Restrict purge to pending tasks")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import tasks from file")
	flag.StringVar(&args.ExportFile, "export", "", "Export tasks to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(store *tracker.TaskStore, args *Args) bool {
	if args.AddTask != "" {
		commands.HandleAddTask(store, args.User, args.AddTask, args.DateFlag, args.PriorityFlag, args.CategoryFlag)
		return true
	}

	if args.PurgeFlag {
		commands.HandlePurgeCommand(store, args.User, args.DoneFlag, args.UndoneFlag, args.YesFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(store, args.User, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(store, args.User, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
