package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/schedule"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// clockValue adapts domain.Clock to the pflag.Value interface so commands
// can take --at 08:30 style flags.
type clockValue struct {
	c *domain.Clock
}

var _ pflag.Value = (*clockValue)(nil)

func (v *clockValue) String() string { return v.c.String() }
func (v *clockValue) Type() string   { return "HH:MM" }

func (v *clockValue) Set(s string) error {
	c, err := domain.ParseClock(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage timed lists",
	}

	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleShowCmd(app),
		newScheduleMoveCmd(app),
		newScheduleEndCmd(app),
	)

	return cmd
}

func newScheduleAddCmd(app *App) *cobra.Command {
	at := domain.NewClock(9, 0)

	cmd := &cobra.Command{
		Use:   "add <list-id> <text>",
		Short: "Append a timed item to a schedule",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			it, err := app.Schedules.AddTimedItem(context.Background(), args[0], text, at)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s %q (%s)\n", it.Time, it.Text, it.ID)
			return nil
		},
	}

	cmd.Flags().Var(&clockValue{c: &at}, "at", "Start time of day")

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a schedule's slots and terminal time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			l, err := app.Lists.GetList(ctx, args[0])
			if err != nil {
				return err
			}
			if !l.Kind.Timed() {
				return fmt.Errorf("list %s is not a timed list", l.ID)
			}
			items, err := app.Schedules.TimedItems(ctx, l.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", l.Title, l.Kind)
			for _, it := range items {
				fmt.Printf("  %s  %s\n", it.Time, it.Text)
			}
			fmt.Printf("  %s  END\n", displayEndTime(l, items))
			return nil
		},
	}
}

// displayEndTime is the terminal time shown for a schedule: the stored one,
// or a synthesized one when none has ever been set.
func displayEndTime(l *domain.List, items []*domain.ScheduleItem) domain.Clock {
	if l.EndSet {
		return l.EndTime
	}
	entries := make([]schedule.Entry, len(items))
	for i, it := range items {
		entries[i] = schedule.Entry{ID: it.ID, Time: it.Time}
	}
	return schedule.SynthesizeEnd(entries)
}

func newScheduleMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <list-id> <item-id> <index>",
		Short: "Move a timed item; later start times are reflowed to keep durations",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			toIndex, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("parsing index %q: %w", args[2], err)
			}
			return app.Schedules.MoveTimedItem(context.Background(), args[0], args[1], toIndex)
		},
	}
}

func newScheduleEndCmd(app *App) *cobra.Command {
	end := domain.NewClock(17, 0)

	cmd := &cobra.Command{
		Use:   "end <list-id>",
		Short: "Set the terminal time that closes the last slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Schedules.SetEndTime(context.Background(), args[0], end)
		},
	}

	cmd.Flags().Var(&clockValue{c: &end}, "at", "Terminal time of day")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
