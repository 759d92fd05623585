package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitdash/internal/engine"
	"habitdash/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show the achievement grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			svc.Refresh()
			state := svc.State()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range engine.Catalog() {
				if state.HasUnlocked(a.ID) {
					fmt.Fprintf(out, "%s %s %s\n", a.Icon, ui.Gold.Render(a.Name), ui.Muted.Render(a.Description))
					continue
				}
				fmt.Fprintf(out, "🔒 %s %s\n", ui.Muted.Render(a.Name), ui.Muted.Render(a.Description))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d/%d unlocked", len(state.Unlocked), len(engine.Catalog()))))
			return nil
		},
	}
}
