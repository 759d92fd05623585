package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitdash/internal/engine"
	"habitdash/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show streaks, points, level and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Refresh()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Dashboard Status"))
			fmt.Fprintf(out, "%s %s\n", ui.IconFire, ui.LabelValue("Current streak", fmt.Sprintf("%d day(s)", snap.CurrentStreak)))
			fmt.Fprintf(out, "%s %s\n", ui.IconTrophy, ui.LabelValue("Best streak", fmt.Sprintf("%d day(s)", snap.BestStreak)))
			fmt.Fprintln(out, "")

			p := snap.Progress
			fmt.Fprintln(out, ui.LabelValue("Level", snap.Level))
			fmt.Fprintln(out, ui.LabelValue("Total points", snap.TotalPoints))
			fmt.Fprintf(out, "%s %s\n",
				ui.ProgressBar(p.Progress, p.Needed, 20),
				ui.Muted.Render(fmt.Sprintf("%d/%d to level %d (%.0f%%)", p.Progress, p.Needed, snap.Level+1, p.Percentage)),
			)
			fmt.Fprintln(out, "")

			fmt.Fprintf(out, "%s %s\n", ui.IconLoop, ui.LabelValue("Habits today", fmt.Sprintf("%d/%d", snap.CompletedHabits, snap.TotalHabits)))
			fmt.Fprintf(out, "%s %s\n", ui.IconTask, ui.LabelValue("Tasks", fmt.Sprintf("%d/%d", snap.CompletedTasks, snap.TotalTasks)))
			if cur, ok := svc.Mood().Current(); ok {
				fmt.Fprintf(out, "%s %s\n", cur.Icon(), ui.LabelValue("Mood", string(cur)))
			}

			unlockedCount := len(svc.State().Unlocked)
			fmt.Fprintln(out, "")
			fmt.Fprintf(out, "%s %s\n", ui.IconTrophy, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d unlocked", unlockedCount, len(engine.Catalog()))))

			printUnlocks(out, snap)
			return nil
		},
	}
}
