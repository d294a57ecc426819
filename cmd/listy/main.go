package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andreseduardop/listy/internal/cli"
	"github.com/andreseduardop/listy/internal/db"
	"github.com/andreseduardop/listy/internal/repository"
	"github.com/andreseduardop/listy/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.listy/listy.db
	dbPath := os.Getenv("LISTY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".listy", "listy.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	listRepo := repository.NewSQLiteListRepo(database)
	itemRepo := repository.NewSQLiteItemRepo(database)

	app := &cli.App{
		Lists:     service.NewListService(listRepo, itemRepo),
		Schedules: service.NewScheduleService(listRepo, itemRepo),
	}

	// Bare invocation opens the board only on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
