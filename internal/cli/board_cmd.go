package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(app)
		},
	}
}

// runBoard starts the TUI with mouse reporting enabled; cell motion is
// what lets hover updates drive the insertion guide while dragging.
func runBoard(app *App) error {
	p := tea.NewProgram(newBoardModel(app),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
