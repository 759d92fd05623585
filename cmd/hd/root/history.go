package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitdash/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent-history chart and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			if days <= 0 {
				days = cfg.HistoryDays
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, fmt.Sprintf("Last %d day(s)", days)))

			series := svc.RecentSeries(days)
			if len(series) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No history yet — complete a habit to start the ledger."))
				return nil
			}

			mark := "#"
			if cfg.ChartStyle == "dots" {
				mark = "•"
			}
			for _, p := range series {
				habitsBar := ui.Good.Render(strings.Repeat(mark, p.Habits))
				tasksBar := ui.H2.Render(strings.Repeat(mark, p.Tasks))
				fmt.Fprintf(out, "%s %s  %s%s %s\n",
					p.Date, ui.Muted.Render(p.Day),
					habitsBar, tasksBar,
					ui.Muted.Render(fmt.Sprintf("(habits %d, tasks %d)", p.Habits, p.Tasks)),
				)
			}

			stats := svc.Stats(days)
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Days tracked", stats.Days))
			fmt.Fprintln(out, ui.LabelValue("Avg habits/day", fmt.Sprintf("%.1f", stats.AvgHabits)))
			fmt.Fprintln(out, ui.LabelValue("Avg tasks/day", fmt.Sprintf("%.1f", stats.AvgTasks)))
			fmt.Fprintln(out, ui.LabelValue("Best day", string(stats.BestDay)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 0, "Days to include (default from config)")
	return cmd
}
