package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitdash/internal/mood"
	"habitdash/internal/ui"
)

func newMoodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mood [happy|neutral|sad]",
		Short: "Show or set today's mood",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if cur, ok := svc.Mood().Current(); ok {
					fmt.Fprintf(out, "%s %s\n", cur.Icon(), ui.LabelValue("Mood", string(cur)))
				} else {
					fmt.Fprintln(out, ui.Muted.Render("No mood set today."))
				}
				return nil
			}

			m, err := mood.ParseMood(args[0])
			if err != nil {
				return err
			}
			if err := svc.Mood().Set(m); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Mood set to %s\n", m.Icon(), string(m))
			return nil
		},
	}
}
