package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitdash/internal/habit"
	"habitdash/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
	}
	cmd.AddCommand(
		newHabitListCmd(),
		newHabitAddCmd(),
		newHabitDoneCmd(),
		newHabitIncCmd(),
		newHabitDecCmd(),
		newHabitRmCmd(),
	)
	return cmd
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List today's habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconLoop, "Habits"))
			for _, h := range svc.Habits().List() {
				if h.Kind == habit.KindCounter {
					fmt.Fprintf(out, "%s %s %s %s\n", ui.Checkbox(h.Done()), h.Name, ui.ProgressBar(h.Current, h.Target, 8), ui.Muted.Render(fmt.Sprintf("%d/%d · id %s", h.Current, h.Target, h.ID)))
					continue
				}
				meta := "id " + h.ID
				if h.Duration != "" {
					meta = h.Duration + " · " + meta
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.Checkbox(h.Done()), h.Name, ui.Muted.Render("("+meta+")"))
			}

			done, total := svc.Habits().Counts()
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d/%d complete", done, total)))
			return nil
		},
	}
}

func newHabitAddCmd() *cobra.Command {
	var duration string
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			h := svc.Habits().Add(args[0], duration, icon)
			snap := svc.Refresh()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added habit %s %s\n", ui.Good.Render(ui.IconDone), h.Name, ui.Muted.Render("(id "+h.ID+")"))
			printUnlocks(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().StringVarP(&duration, "duration", "d", "", "Display duration (e.g. \"20 min\")")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon name")
	return cmd
}

func newHabitDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <habit>",
		Short: "Toggle a habit's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := resolveHabit(svc.Habits().List(), args[0])
			if err != nil {
				return err
			}
			if err := svc.Habits().Toggle(h.ID); err != nil {
				return err
			}
			snap := svc.Refresh()

			updated, _ := svc.Habits().Get(h.ID)
			state := "pending"
			if updated.Done() {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", ui.Good.Render(ui.IconDone), h.Name, state)
			printSummary(cmd.OutOrStdout(), snap)
			printUnlocks(cmd.OutOrStdout(), snap)
			return nil
		},
	}
}

func newHabitIncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inc <habit>",
		Short: "Increment a counter habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return adjustCounter(cmd, args[0], +1)
		},
	}
}

func newHabitDecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dec <habit>",
		Short: "Decrement a counter habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return adjustCounter(cmd, args[0], -1)
		},
	}
}

func adjustCounter(cmd *cobra.Command, arg string, delta int) error {
	svc, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	h, err := resolveHabit(svc.Habits().List(), arg)
	if err != nil {
		return err
	}
	if delta > 0 {
		err = svc.Habits().Increment(h.ID)
	} else {
		err = svc.Habits().Decrement(h.ID)
	}
	if err != nil {
		return err
	}
	snap := svc.Refresh()

	updated, _ := svc.Habits().Get(h.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone), updated.Name, ui.ProgressBar(updated.Current, updated.Target, 8))
	printUnlocks(cmd.OutOrStdout(), snap)
	return nil
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <habit>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := resolveHabit(svc.Habits().List(), args[0])
			if err != nil {
				return err
			}
			if err := svc.Habits().Delete(h.ID); err != nil {
				return err
			}
			svc.Refresh()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed habit %s\n", ui.Warn.Render(ui.IconWarn), h.Name)
			return nil
		},
	}
}
