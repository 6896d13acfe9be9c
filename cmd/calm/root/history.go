package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

func newHistoryCmd(app *appState) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent check-ins, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCompass, "Check-in history"))
			if len(u.Checkins) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no check-ins yet)"))
				return nil
			}
			shown := 0
			for i := len(u.Checkins) - 1; i >= 0; i-- {
				if limit > 0 && shown >= limit {
					break
				}
				c := u.Checkins[i]
				var tools []string
				for _, t := range c.ToolsUsed {
					tools = append(tools, t.Tool)
				}
				line := fmt.Sprintf("- %s %s", c.Timestamp.Local().Format("2006-01-02 15:04"), ui.ZoneLabel(string(c.Zone)))
				if len(tools) > 0 {
					line += " " + ui.Muted.Render("tools: "+strings.Join(tools, ", "))
				}
				line += " " + ui.Dim.Render("#"+c.ID)
				fmt.Fprintln(out, line)
				shown++
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "How many check-ins to show (0 = all)")
	return cmd
}
