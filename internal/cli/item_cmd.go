package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage list items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemDoneCmd(app),
		newItemMoveCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <list-id> <text>",
		Short: "Append an item to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			it, err := app.Lists.AddItem(context.Background(), args[0], text)
			if err != nil {
				return err
			}
			fmt.Printf("Added item %q (%s)\n", it.Text, it.ID)
			return nil
		},
	}
}

func newItemDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <item-id>",
		Short: "Toggle an item's done mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Lists.ToggleDone(context.Background(), args[0])
		},
	}
}

func newItemMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <list-id> <item-id> <index>",
		Short: "Move an item to an insertion slot (0 = start)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			toIndex, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("parsing index %q: %w", args[2], err)
			}
			return app.Lists.MoveItem(context.Background(), args[0], args[1], toIndex)
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Lists.RemoveItem(context.Background(), args[0])
		},
	}
}
