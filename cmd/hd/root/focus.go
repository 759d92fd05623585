package root

import (
	"github.com/spf13/cobra"

	"habitdash/internal/tui"
)

func newFocusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "focus",
		Short: "Run a pomodoro focus timer (25/5)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunFocus(cmd.OutOrStdout())
		},
	}
}
