package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage lists",
	}

	cmd.AddCommand(
		newListAddCmd(app),
		newListShowCmd(app),
		newListLsCmd(app),
		newListRemoveCmd(app),
	)

	return cmd
}

func newListAddCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			l, err := app.Lists.CreateList(context.Background(), domain.ListKind(kind), title)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s list %q (%s)\n", l.Kind, l.Title, l.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "checklist", "List kind (checklist, resources, steps, schedule, timeline)")

	return cmd
}

func newListShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a list and its items in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			l, err := app.Lists.GetList(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", l.Title, l.Kind)

			if l.Kind.Timed() {
				items, err := app.Schedules.TimedItems(ctx, l.ID)
				if err != nil {
					return err
				}
				for _, it := range items {
					fmt.Printf("  %s  %s\n", it.Time, it.Text)
				}
				fmt.Printf("  %s  END\n", displayEndTime(l, items))
				return nil
			}

			items, err := app.Lists.Items(ctx, l.ID)
			if err != nil {
				return err
			}
			for i, it := range items {
				mark := " "
				if it.Done {
					mark = "x"
				}
				fmt.Printf("  %2d. [%s] %s\n", i+1, mark, it.Text)
			}
			return nil
		},
	}
}

func newListLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := app.Lists.Lists(context.Background())
			if err != nil {
				return err
			}
			for _, l := range lists {
				fmt.Printf("%-10s %-24s %s\n", l.Kind, l.Title, l.ID)
			}
			return nil
		},
	}
}

func newListRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <list-id>",
		Short: "Delete a list and all its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Lists.DeleteList(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted list %s\n", args[0])
			return nil
		},
	}
}
