package root

import (
	"fmt"
	"io"
	"strings"

	"habitdash/internal/engine"
	"habitdash/internal/habit"
	"habitdash/internal/task"
	"habitdash/internal/ui"
)

// printUnlocks surfaces freshly unlocked achievements after a mutating
// command. The unlock itself is already persisted; this is the transient
// notification.
func printUnlocks(out io.Writer, snap engine.Snapshot) {
	for _, a := range snap.NewUnlocks {
		fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s Achievement unlocked: %s", a.Icon, a.Name))+" "+ui.Muted.Render(a.Description))
	}
}

func printSummary(out io.Writer, snap engine.Snapshot) {
	fmt.Fprintf(out, "%s %s  %s  %s\n",
		ui.IconFire,
		ui.LabelValue("Streak", fmt.Sprintf("%d day(s)", snap.CurrentStreak)),
		ui.LabelValue("Points", snap.TotalPoints),
		ui.LabelValue("Level", snap.Level),
	)
}

// resolveHabit matches a CLI argument against habit id, then name
// (case-insensitive).
func resolveHabit(habits []habit.Habit, arg string) (habit.Habit, error) {
	for _, h := range habits {
		if h.ID == arg {
			return h, nil
		}
	}
	lower := strings.ToLower(arg)
	for _, h := range habits {
		if strings.ToLower(h.Name) == lower {
			return h, nil
		}
	}
	return habit.Habit{}, fmt.Errorf("no habit matching %q", arg)
}

// resolveTask matches a CLI argument against the 1-based position shown by
// `hd task list`, then against an id prefix.
func resolveTask(tasks []task.Task, arg string) (task.Task, error) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err == nil {
		if n < 1 || n > len(tasks) {
			return task.Task{}, fmt.Errorf("task number %d out of range (1-%d)", n, len(tasks))
		}
		return tasks[n-1], nil
	}
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, arg) {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("no task matching %q", arg)
}
