package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"habitdash/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hd",
	Short:         "habitdash — local-first productivity dashboard",
	Long:          "habitdash is a local-first CLI/TUI dashboard for daily habits, tasks, mood and gamified streaks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newHabitCmd(),
		newTaskCmd(),
		newMoodCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newHistoryCmd(),
		newBoardCmd(),
		newFocusCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
