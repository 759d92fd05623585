package root

import (
	"github.com/spf13/cobra"

	"habitdash/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunDashboard(svc, cmd.OutOrStdout())
		},
	}
}
