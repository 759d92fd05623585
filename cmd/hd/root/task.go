package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitdash/internal/task"
	"habitdash/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskListCmd(),
		newTaskAddCmd(),
		newTaskDoneCmd(),
		newTaskEditCmd(),
		newTaskRmCmd(),
		newTaskClearCmd(),
	)
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			filter := task.CategoryAll
			if category != "" && category != string(task.CategoryAll) {
				filter = task.ParseCategory(category)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			tasks := svc.Tasks().List(filter)
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for i, t := range tasks {
				fmt.Fprintf(out, "%2d. %s %s %s\n", i+1, ui.Checkbox(t.Completed), t.Text, ui.Muted.Render("("+string(t.Category)+")"))
			}
			done, total := svc.Tasks().Counts()
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d/%d complete", done, total)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "Filter by category (work|personal|shopping|all)")
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.Tasks().Add(args[0], task.ParseCategory(category))
			if err != nil {
				return err
			}
			snap := svc.Refresh()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added task %q %s\n", ui.Good.Render(ui.IconDone), t.Text, ui.Muted.Render("("+string(t.Category)+")"))
			printUnlocks(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "personal", "Category (work|personal|shopping)")
	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <task>",
		Short: "Toggle a task's completion (by list number or id prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := resolveTask(svc.Tasks().List(task.CategoryAll), args[0])
			if err != nil {
				return err
			}
			if err := svc.Tasks().Toggle(t.ID); err != nil {
				return err
			}
			snap := svc.Refresh()

			got, _ := svc.Tasks().Get(t.ID)
			state := "pending"
			if got.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q is now %s\n", ui.Good.Render(ui.IconDone), t.Text, state)
			printSummary(cmd.OutOrStdout(), snap)
			printUnlocks(cmd.OutOrStdout(), snap)
			return nil
		},
	}
}

func newTaskEditCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "edit <task> [new text]",
		Short: "Edit a task's text or category",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := resolveTask(svc.Tasks().List(task.CategoryAll), args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				if err := svc.Tasks().Edit(t.ID, args[1]); err != nil {
					return err
				}
			}
			if category != "" {
				if err := svc.Tasks().SetCategory(t.ID, task.ParseCategory(category)); err != nil {
					return err
				}
			}
			svc.Refresh()

			got, _ := svc.Tasks().Get(t.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated: %s %s\n", ui.Good.Render(ui.IconDone), got.Text, ui.Muted.Render("("+string(got.Category)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Move to category (work|personal|shopping)")
	return cmd
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := resolveTask(svc.Tasks().List(task.CategoryAll), args[0])
			if err != nil {
				return err
			}
			if err := svc.Tasks().Delete(t.ID); err != nil {
				return err
			}
			svc.Refresh()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed task %q\n", ui.Warn.Render(ui.IconWarn), t.Text)
			return nil
		},
	}
}

func newTaskClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			removed := svc.Tasks().ClearCompleted()
			svc.Refresh()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Cleared %d completed task(s)\n", ui.Good.Render(ui.IconDone), removed)
			return nil
		},
	}
}
