package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RACSolutions/calm-compass-autism-support/internal/ui"
)

func newResetCmd(app *appState) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all check-ins, settings and tool stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes everything; re-run with --yes to confirm")
			}
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, app)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ClearAllData(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" All data cleared"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting all data")
	return cmd
}
