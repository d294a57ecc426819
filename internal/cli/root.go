package cli

import (
	"github.com/andreseduardop/listy/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Lists     service.ListService
	Schedules service.ScheduleService

	// IsInteractive reports whether stdin is a terminal; bare invocation
	// opens the TUI board only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "listy" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "listy",
		Short: "Reorderable lists, checklists and day schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBoard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newListCmd(app),
		newItemCmd(app),
		newScheduleCmd(app),
		newBoardCmd(app),
	)

	return root
}
