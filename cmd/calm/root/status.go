package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/engine"
	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

func newStatusCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			a, err := svc.GetAnalytics(ctx, u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCompass, "Hi, "+u.DisplayName()))
			fmt.Fprintln(out, ui.LabelValue("Check-ins", a.TotalCheckins))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d %s", ui.IconFire, a.StreakDays, ui.Muted.Render(engine.StreakMessage(a.StreakDays)))))
			fmt.Fprintln(out, ui.LabelValue("Per day", fmt.Sprintf("%.1f", a.AverageDaily)))
			fmt.Fprintln(out, ui.LabelValue("Days using", engine.DaysSinceStart(u.CreatedAt, svc.Now())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Zones"))
			for _, z := range engine.Zones() {
				fmt.Fprintf(out, "- %s %d\n", ui.ZoneLabel(string(z)), a.ZoneStats[z])
			}
			fmt.Fprintln(out, "")

			if len(a.TopTools) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconTool+" Top tools"))
				for i, tc := range a.TopTools {
					fmt.Fprintf(out, "%d. %s %s\n", i+1, tc.Tool, ui.Muted.Render(fmt.Sprintf("(%d)", tc.Count)))
				}
				fmt.Fprintln(out, "")
			}

			checker := engine.NewAchievementChecker(u)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, ach := range checker.GetAchievements() {
				if ach.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", ach.Icon, ui.Gold.Render(ach.Name), ui.Muted.Render(ach.Description))
				} else {
					fmt.Fprintf(out, "- %s %s\n", ui.Dim.Render("🔒 "+ach.Name), ui.Muted.Render(ach.Description))
				}
			}
			return nil
		},
	}
	return cmd
}

func newWeekCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show check-ins for the last seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "This week"))
			for _, d := range engine.GetWeeklyProgress(u.Checkins, svc.Now()) {
				var blocks strings.Builder
				for _, z := range d.Zones {
					blocks.WriteString(ui.ZoneBlock(string(z)))
				}
				fmt.Fprintf(out, "%s %s %2d %s\n", d.ShortDate, ui.Muted.Render(d.Date), d.Count, blocks.String())
			}
			return nil
		},
	}
	return cmd
}
