package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/engine"
	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

func newSetupCmd(app *appState) *cobra.Command {
	var in engine.SetupInput
	var age int
	descriptions := map[engine.Zone]*string{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "First-run setup: your name and what each zone feels like",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("age") {
				in.Age = &age
			}
			in.Descriptions = map[engine.Zone]string{}
			for z, d := range descriptions {
				in.Descriptions[z] = *d
			}

			ctx := cmd.Context()
			svc, u, cleanup, err := loadUser(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err = svc.CompleteSetup(ctx, in, u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Welcome, "+u.DisplayName()+"!"))
			for _, z := range engine.Zones() {
				fmt.Fprintf(out, "- %s %s\n", ui.ZoneLabel(string(z)), ui.Muted.Render(u.ZoneDescriptions[z]))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in.UserName, "name", "", "Your name")
	cmd.Flags().StringVar(&in.PreferredName, "preferred", "", "What the app should call you (default: your name)")
	cmd.Flags().IntVar(&age, "age", 0, "Your age")
	for _, z := range engine.Zones() {
		d := new(string)
		descriptions[z] = d
		cmd.Flags().StringVar(d, string(z), "", fmt.Sprintf("How the %s zone feels for you", z))
	}
	return cmd
}
