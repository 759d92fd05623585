package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitdash/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all dashboard data (habits, tasks, history, progress)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes all data; re-run with --yes to confirm")
			}

			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetAll(); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" All dashboard data wiped."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")
	return cmd
}
