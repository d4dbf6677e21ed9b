package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskflow/pkg/cli"
	"taskflow/pkg/config"
	"taskflow/pkg/storage"
	"taskflow/pkg/tracker"
	"taskflow/pkg/ui"
	"taskflow/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Printf("Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	gateway := tracker.NewGateway(store)
	tasks := tracker.NewTaskStore(gateway)
	session := tracker.NewSessionManager(gateway)

	// One-shot CLI commands skip the TUI entirely
	if cli.HandleCommands(tasks, args) {
		return
	}

	p := tea.NewProgram(ui.NewModel(tasks, session, gateway, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (storage.Store, error) {
	if cfg.PostgresDSN != "" {
		return storage.OpenPostgres(cfg.PostgresDSN)
	}
	return storage.OpenSQLite(cfg.Database)
}
